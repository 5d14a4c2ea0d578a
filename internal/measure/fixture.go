// File: internal/measure/fixture.go
package measure

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	json "github.com/json-iterator/go"
	"github.com/mitchellh/go-homedir"

	"github.com/xkilldash9x/vantage/internal/geometry"
)

// fixtureFile is the on-disk representation of a recorded page.
//
//	{"viewport": {"width": 800, "height": 600},
//	 "elements": {"#logo": {"x": 0, "y": 0, "width": 120, "height": 80}}}
//
// A null element entry records an element that exists but is not rendered.
type fixtureFile struct {
	Viewport *geometry.Size            `json:"viewport"`
	Elements map[string]*geometry.Rect `json:"elements"`
}

// Fixture is a Measurer over recorded geometry. It does not implement
// Scroller: a recording cannot be scrolled.
type Fixture struct {
	mu       sync.RWMutex
	viewport *geometry.Size
	elements map[Element]*geometry.Rect
}

var _ Measurer = (*Fixture)(nil)

// NewFixture builds a fixture from in-memory geometry. A nil viewport
// records an unavailable viewport.
func NewFixture(viewport *geometry.Size, elements map[Element]geometry.Rect) *Fixture {
	f := &Fixture{elements: make(map[Element]*geometry.Rect, len(elements))}
	if viewport != nil {
		v := *viewport
		f.viewport = &v
	}
	for k, r := range elements {
		r := r
		f.elements[k] = &r
	}
	return f
}

// DecodeFixture reads a JSON fixture from r.
func DecodeFixture(r io.Reader) (*Fixture, error) {
	var raw fixtureFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	f := &Fixture{
		viewport: raw.Viewport,
		elements: make(map[Element]*geometry.Rect, len(raw.Elements)),
	}
	for k, rect := range raw.Elements {
		f.elements[Element(k)] = rect
	}
	return f, nil
}

// LoadFixture reads a JSON fixture from path. A leading ~ is expanded.
func LoadFixture(path string) (*Fixture, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding fixture path %q: %w", path, err)
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("opening fixture: %w", err)
	}
	defer file.Close()
	return DecodeFixture(file)
}

// Set records (or replaces) the rectangle for el.
func (f *Fixture) Set(el Element, r geometry.Rect) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.elements[el] = &r
}

// Remove forgets el, so later measurements report it as missing.
func (f *Fixture) Remove(el Element) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.elements, el)
}

// Rect implements Measurer.
func (f *Fixture) Rect(ctx context.Context, el Element) (RectResult, error) {
	if err := ctx.Err(); err != nil {
		return Missing(), err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	r, ok := f.elements[el]
	if !ok || r == nil {
		return Missing(), nil
	}
	return Found(*r), nil
}

// Viewport implements Measurer.
func (f *Fixture) Viewport(ctx context.Context) (ViewportResult, error) {
	if err := ctx.Err(); err != nil {
		return ViewportMissing(), err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.viewport == nil {
		return ViewportMissing(), nil
	}
	return ViewportFound(*f.viewport), nil
}
