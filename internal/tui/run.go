package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/muurk/weighguide/internal/content"
)

// Options configures Run.
type Options struct {
	// Mouse enables clicks, which is how the backdrop dismisses the popup.
	Mouse bool
}

// Run starts the terminal browser and blocks until the user quits or ctx
// is cancelled. An open popup is closed on the way out.
func Run(ctx context.Context, store *content.Store, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse needs an interactive terminal")
	}

	model := NewBrowseModel(store)
	defer model.Modal().Close()

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal browser failed: %w", err)
	}
	return nil
}
