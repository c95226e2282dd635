package content

import (
	_ "embed"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

//go:embed weighing.yaml
var defaultYAML []byte

var (
	defaultStore     *Store
	defaultStoreOnce sync.Once
	defaultStoreErr  error
)

// Store is an immutable, validated view of the reference content.
// Every accessor returns a copy, so callers cannot change what other
// readers see.
type Store struct {
	doc Document
}

// New validates doc and returns a Store holding a private copy of it.
func New(doc Document) (*Store, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return &Store{doc: cloneDocument(doc)}, nil
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Store, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	return New(doc)
}

// Load reads a YAML content document from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Default returns the content compiled into the binary.
// The embedded document is parsed once; later calls share the same Store.
func Default() (*Store, error) {
	defaultStoreOnce.Do(func() {
		defaultStore, defaultStoreErr = Parse(defaultYAML)
	})
	return defaultStore, defaultStoreErr
}

// Open returns the content at path, or the embedded content when path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Page returns the page-level texts.
func (s *Store) Page() Page {
	return s.doc.Page
}

// Steps returns the flow steps in ordinal order.
func (s *Store) Steps() []FlowStep {
	return append([]FlowStep(nil), s.doc.Steps...)
}

// Step looks up a flow step by ordinal.
func (s *Store) Step(n int) (FlowStep, bool) {
	if n < 1 || n > len(s.doc.Steps) {
		return FlowStep{}, false
	}
	return s.doc.Steps[n-1], true
}

// Detail looks up the detail record for a step ordinal.
func (s *Store) Detail(n int) (StepDetail, bool) {
	d, ok := s.doc.Details[n]
	if !ok {
		return StepDetail{}, false
	}
	return cloneDetail(d), true
}

// StepWithDetail returns a step and its detail, or ErrStepNotFound when
// either half is missing.
func (s *Store) StepWithDetail(n int) (FlowStep, StepDetail, error) {
	step, ok := s.Step(n)
	if !ok {
		return FlowStep{}, StepDetail{}, fmt.Errorf("step %d: %w", n, ErrStepNotFound)
	}
	detail, ok := s.Detail(n)
	if !ok {
		return FlowStep{}, StepDetail{}, fmt.Errorf("detail for step %d: %w", n, ErrStepNotFound)
	}
	return step, detail, nil
}

// Fields returns the data-field reference rows in display order.
func (s *Store) Fields() []DataField {
	return append([]DataField(nil), s.doc.Fields...)
}

// Destinations returns the systems that receive saved records.
func (s *Store) Destinations() []Destination {
	out := make([]Destination, len(s.doc.Destinations))
	for i, d := range s.doc.Destinations {
		out[i] = cloneDestination(d)
	}
	return out
}

// Images returns the screenshot gallery.
func (s *Store) Images() []ScreenImage {
	out := make([]ScreenImage, len(s.doc.Images))
	for i, img := range s.doc.Images {
		out[i] = cloneImage(img)
	}
	return out
}

// Document returns a full copy of the underlying document, for export.
func (s *Store) Document() Document {
	return cloneDocument(s.doc)
}

// Holder publishes the current Store to concurrent readers and lets a
// single reloader replace it.
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder returns a Holder serving s.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Store returns the Store currently being served.
func (h *Holder) Store() *Store {
	return h.current.Load()
}

// Replace swaps in a new Store and returns the previous one.
func (h *Holder) Replace(s *Store) *Store {
	return h.current.Swap(s)
}

func cloneDocument(doc Document) Document {
	out := doc
	out.Steps = append([]FlowStep(nil), doc.Steps...)
	out.Fields = append([]DataField(nil), doc.Fields...)

	out.Details = make(map[int]StepDetail, len(doc.Details))
	for n, d := range doc.Details {
		out.Details[n] = cloneDetail(d)
	}

	out.Destinations = make([]Destination, len(doc.Destinations))
	for i, d := range doc.Destinations {
		out.Destinations[i] = cloneDestination(d)
	}

	out.Images = make([]ScreenImage, len(doc.Images))
	for i, img := range doc.Images {
		out.Images[i] = cloneImage(img)
	}
	return out
}

func cloneDetail(d StepDetail) StepDetail {
	d.Details = append([]string(nil), d.Details...)
	return d
}

func cloneDestination(d Destination) Destination {
	d.Uses = append([]string(nil), d.Uses...)
	if d.PaymentModes != nil {
		d.PaymentModes = append([]PaymentMode(nil), d.PaymentModes...)
	}
	return d
}

func cloneImage(img ScreenImage) ScreenImage {
	if img.Data != nil {
		data := *img.Data
		img.Data = &data
	}
	return img
}
