package content

import (
	"fmt"
	"sort"
)

// SupportedVersion is the only content file version this build understands.
const SupportedVersion = 1

// Validate checks the structural invariants of a content document.
//
// Step ordinals must run 1..N without gaps or repeats, and every step must
// have exactly one detail record (and no detail may exist without a step).
// All problems are collected and returned in a single *ValidationError.
func Validate(doc Document) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if doc.Version != SupportedVersion {
		add("unsupported version %d (expected %d)", doc.Version, SupportedVersion)
	}

	if len(doc.Steps) == 0 {
		add("no flow steps defined")
	}

	seen := make(map[int]bool, len(doc.Steps))
	for i, s := range doc.Steps {
		want := i + 1
		if s.Step != want {
			add("step at position %d has ordinal %d (expected %d)", want, s.Step, want)
		}
		if seen[s.Step] {
			add("duplicate step ordinal %d", s.Step)
		}
		seen[s.Step] = true
		if s.Title == "" {
			add("step %d has no title", s.Step)
		}
		if _, ok := doc.Details[s.Step]; !ok {
			add("step %d has no detail", s.Step)
		}
	}

	orphans := make([]int, 0)
	for n := range doc.Details {
		if !seen[n] {
			orphans = append(orphans, n)
		}
	}
	sort.Ints(orphans)
	for _, n := range orphans {
		add("detail %d has no matching step", n)
	}

	ids := make(map[string]bool, len(doc.Destinations))
	for i, d := range doc.Destinations {
		if d.ID == "" {
			add("destination %d has no id", i+1)
			continue
		}
		if ids[d.ID] {
			add("duplicate destination id %q", d.ID)
		}
		ids[d.ID] = true
		for j, pm := range d.PaymentModes {
			if pm.Label == "" {
				add("destination %q payment mode %d has no label", d.ID, j+1)
			}
		}
	}

	for i, img := range doc.Images {
		if img.Src == "" {
			add("image %d has no source", i+1)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
