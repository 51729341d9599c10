// Package parser reads shape catalog files into shape values.
//
// A catalog is plain text, one record per line, fields separated by
// whitespace. The first field is a one-character type tag selecting the
// variant; the remaining fields are its numeric attributes:
//
//	C <radius>
//	T <sideA> <sideB> <sideC>
//	R <length> <width>
//	S <side>
//
// Lines that cannot be understood are reported and skipped; only a file
// that cannot be opened is an error.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/erivers/shapesum/internal/shape"
)

// Entry describes how to construct one shape variant from a tagged record.
type Entry struct {
	// Kind is the variant this entry constructs.
	Kind shape.Kind

	// Arity is the number of numeric fields the record must carry.
	Arity int

	// Build constructs the shape from exactly Arity parsed fields.
	Build func(fields []float64) shape.Shape
}

// Registry maps type tags to construction entries.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds or replaces the entry for a tag.
func (r *Registry) Register(tag string, e Entry) {
	r.entries[tag] = e
}

// Lookup returns the entry for a tag.
func (r *Registry) Lookup(tag string) (Entry, bool) {
	e, ok := r.entries[tag]
	return e, ok
}

// DefaultRegistry returns a registry with all built-in shape variants.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("C", Entry{
		Kind:  shape.KindCircle,
		Arity: 1,
		Build: func(f []float64) shape.Shape { return shape.NewCircle(f[0]) },
	})
	r.Register("T", Entry{
		Kind:  shape.KindTriangle,
		Arity: 3,
		Build: func(f []float64) shape.Shape { return shape.NewTriangle(f[0], f[1], f[2]) },
	})
	r.Register("R", Entry{
		Kind:  shape.KindRectangle,
		Arity: 2,
		Build: func(f []float64) shape.Shape { return shape.NewRectangle(f[0], f[1]) },
	})
	r.Register("S", Entry{
		Kind:  shape.KindSquare,
		Arity: 1,
		Build: func(f []float64) shape.Shape { return shape.NewSquare(f[0]) },
	})
	return r
}

// Loader parses shape catalogs, emitting one diagnostic per skipped line.
type Loader struct {
	// Registry maps type tags to constructors.
	Registry *Registry

	// Diag receives one line per skipped record. Defaults to stderr.
	Diag io.Writer
}

// NewLoader creates a Loader with the built-in registry, reporting
// diagnostics to stderr.
func NewLoader() *Loader {
	return &Loader{
		Registry: DefaultRegistry(),
		Diag:     os.Stderr,
	}
}

// LoadFile opens path and parses it. An open failure is returned to the
// caller; parse irregularities are diagnostics, never errors.
func (l *Loader) LoadFile(path string) ([]shape.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return l.Parse(f), nil
}

// Parse reads records from r until end of input and returns the constructed
// shapes in input order. Blank lines are ignored. A line with an unknown
// tag, a wrong field count, or a non-numeric field produces one diagnostic
// and no shape; parsing continues with the next line.
func (l *Loader) Parse(r io.Reader) []shape.Shape {
	var shapes []shape.Shape

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		tag := fields[0]
		entry, ok := l.Registry.Lookup(tag)
		if !ok {
			fmt.Fprintf(l.Diag, "Unknown shape: %s\n", tag)
			continue
		}

		values, err := parseFields(fields[1:], entry.Arity)
		if err != nil {
			fmt.Fprintf(l.Diag, "Skipping %s record: %v\n", entry.Kind, err)
			continue
		}

		shapes = append(shapes, entry.Build(values))
	}

	return shapes
}

// parseFields converts the raw fields to floats, requiring exactly arity of
// them.
func parseFields(raw []string, arity int) ([]float64, error) {
	if len(raw) != arity {
		return nil, fmt.Errorf("want %d fields, got %d", arity, len(raw))
	}

	values := make([]float64, arity)
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not a number", i+1, s)
		}
		values[i] = v
	}
	return values, nil
}
