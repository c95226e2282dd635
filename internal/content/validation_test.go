package content

import (
	"errors"
	"strings"
	"testing"
)

func validDoc() Document {
	return Document{
		Version: 1,
		Steps: []FlowStep{
			{Step: 1, Title: "Arrive"},
			{Step: 2, Title: "Weigh"},
		},
		Details: map[int]StepDetail{
			1: {Details: []string{"a"}},
			2: {Details: []string{"b"}},
		},
		Destinations: []Destination{
			{ID: "odoo"},
			{ID: "server", PaymentModes: []PaymentMode{{Label: "Cash"}}},
		},
		Images: []ScreenImage{{Src: "/pitcher/0.jpg"}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Document)
		wantErr string
	}{
		{
			name:   "valid document",
			mutate: func(d *Document) {},
		},
		{
			name:    "wrong version",
			mutate:  func(d *Document) { d.Version = 2 },
			wantErr: "unsupported version 2",
		},
		{
			name:    "no steps",
			mutate:  func(d *Document) { d.Steps = nil; d.Details = nil },
			wantErr: "no flow steps defined",
		},
		{
			name:    "gap in ordinals",
			mutate:  func(d *Document) { d.Steps[1].Step = 3; d.Details[3] = StepDetail{} },
			wantErr: "has ordinal 3 (expected 2)",
		},
		{
			name: "duplicate ordinal",
			mutate: func(d *Document) {
				d.Steps = append(d.Steps, FlowStep{Step: 2, Title: "Again"})
			},
			wantErr: "duplicate step ordinal 2",
		},
		{
			name:    "missing detail",
			mutate:  func(d *Document) { delete(d.Details, 2) },
			wantErr: "step 2 has no detail",
		},
		{
			name:    "orphan detail",
			mutate:  func(d *Document) { d.Details[7] = StepDetail{} },
			wantErr: "detail 7 has no matching step",
		},
		{
			name:    "untitled step",
			mutate:  func(d *Document) { d.Steps[0].Title = "" },
			wantErr: "step 1 has no title",
		},
		{
			name:    "duplicate destination",
			mutate:  func(d *Document) { d.Destinations[1].ID = "odoo" },
			wantErr: `duplicate destination id "odoo"`,
		},
		{
			name:    "unlabelled payment mode",
			mutate:  func(d *Document) { d.Destinations[1].PaymentModes[0].Label = "" },
			wantErr: "payment mode 1 has no label",
		},
		{
			name:    "image without source",
			mutate:  func(d *Document) { d.Images[0].Src = "" },
			wantErr: "image 1 has no source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(&doc)

			err := Validate(doc)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidContent) {
				t.Errorf("Validate() error should wrap ErrInvalidContent")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidationError_CollectsAllProblems(t *testing.T) {
	doc := validDoc()
	doc.Version = 0
	delete(doc.Details, 1)
	doc.Images[0].Src = ""

	err := Validate(doc)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error type = %T, want *ValidationError", err)
	}
	if len(verr.Problems) != 3 {
		t.Errorf("len(Problems) = %d, want 3: %v", len(verr.Problems), verr.Problems)
	}
	if !strings.Contains(verr.Error(), "3 problems") {
		t.Errorf("Error() = %q, want problem count", verr.Error())
	}
}

func TestNew_CopiesInput(t *testing.T) {
	doc := validDoc()
	store, err := New(doc)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc.Steps[0].Title = "mutated"
	doc.Details[1].Details[0] = "mutated"

	if s, _ := store.Step(1); s.Title != "Arrive" {
		t.Errorf("store step title = %q, want Arrive", s.Title)
	}
	if d, _ := store.Detail(1); d.Details[0] != "a" {
		t.Errorf("store detail = %q, want a", d.Details[0])
	}
}
