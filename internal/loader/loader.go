// Package loader materializes source spreadsheets into the normalized table
// the engine consumes. The engine itself never opens files.
package loader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

// Loader converts one file format into a model.Table.
type Loader interface {
	Load(r io.Reader) (model.Table, error)
	Format() string
}

// Registry holds named loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register adds a loader. Panics on duplicate format.
func (r *Registry) Register(l Loader) {
	key := strings.ToLower(l.Format())
	if _, ok := r.loaders[key]; ok {
		panic("duplicate loader format: " + key)
	}
	r.loaders[key] = l
}

// Get returns the loader for format, or nil.
func (r *Registry) Get(format string) Loader {
	return r.loaders[strings.ToLower(format)]
}

// ForFile returns the loader matching the file's extension, or nil.
func (r *Registry) ForFile(path string) Loader {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return r.Get(ext)
}

// DefaultRegistry returns a registry with all built-in loaders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&XLSXLoader{})
	r.Register(&CSVLoader{})
	return r
}

// parseCell normalizes one raw string cell. Thousands separators are
// stripped before the numeric attempt; anything non-numeric stays text so
// the classifier can still see percent markers and annotations.
func parseCell(raw string) model.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return model.EmptyCell()
	}
	if d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "")); err == nil {
		return model.NumberCell(d)
	}
	return model.TextCell(s)
}
