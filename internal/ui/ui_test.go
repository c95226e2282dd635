package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestChecklist(t *testing.T) {
	c := NewChecklist("checks").SetWidth(80)
	if c.OK() {
		t.Error("empty checklist should not be OK")
	}

	c.Pass("Parse", "")
	c.Pass("Steps", "8 steps")
	if !c.OK() || c.Percent() != 1 {
		t.Errorf("OK() = %v, Percent() = %v, want true, 1", c.OK(), c.Percent())
	}

	c.Fail("Images", "1 problem")
	c.Skip("Fields")
	if c.OK() {
		t.Error("checklist with a failure should not be OK")
	}
	if c.Passed() != 2 || c.Percent() != 0.5 {
		t.Errorf("Passed() = %d, Percent() = %v, want 2, 0.5", c.Passed(), c.Percent())
	}

	out := c.Render()
	for _, want := range []string{"[2/4]", "(8 steps)", "Images", PassMarker, FailureMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestPrinter_Boxes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintHeader("Content Check", "weighguide validate", Detail{Key: "Content", Value: "embedded"})
	p.PrintSuccess("Content is valid", Detail{Key: "Steps", Value: "8"}, Detail{Key: "Fields", Value: "16"})

	r := NewFailureResult("Content rejected", errors.New("boom"), []string{"check the file"})
	r.Problems = []string{"step 3 has no detail"}
	p.PrintResult(r)

	out := buf.String()
	for _, want := range []string{
		"CONTENT CHECK", "weighguide validate", "Content:", "embedded",
		"SUCCESS", "Content is valid",
		"FAILED", "Error: boom", "step 3 has no detail", "check the file",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Index(out, "Steps:") > strings.Index(out, "Fields:") {
		t.Error("details should print in the order given")
	}
}

func TestPrinter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		p := NewPrinter(&buf).SetWidth(80)
		got := p.Confirm(strings.NewReader(tt.input), "Overwrite", []string{"file exists"}, "Overwrite it?")
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(buf.String(), "Overwrite it? [y/N]") {
			t.Errorf("Confirm(%q) did not print the question", tt.input)
		}
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTable([]string{"Name", "URL"}, [][]string{{"Gate PC", "http://10.0.0.5:8080/"}})

	out := buf.String()
	if !strings.Contains(out, "Gate PC") || !strings.Contains(out, "http://10.0.0.5:8080/") {
		t.Errorf("table output = %q", out)
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{10, MinTerminalWidth},
		{80, 80},
		{300, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
