package parser

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erivers/shapesum/internal/shape"
)

// newTestLoader returns a Loader that collects diagnostics in a buffer.
func newTestLoader() (*Loader, *bytes.Buffer) {
	var diag bytes.Buffer
	l := NewLoader()
	l.Diag = &diag
	return l, &diag
}

func TestParseValidRecords(t *testing.T) {
	input := `C 2
R 3 4
T 3 4 5
S 5
`
	l, diag := newTestLoader()
	shapes := l.Parse(strings.NewReader(input))

	if len(shapes) != 4 {
		t.Fatalf("len(shapes) = %d, want 4", len(shapes))
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", diag.String())
	}

	wantKinds := []shape.Kind{
		shape.KindCircle,
		shape.KindRectangle,
		shape.KindTriangle,
		shape.KindSquare,
	}
	for i, want := range wantKinds {
		if got := shapes[i].Kind(); got != want {
			t.Errorf("shapes[%d].Kind() = %q, want %q", i, got, want)
		}
	}

	// Spot-check that the numeric fields reached the constructors.
	if got := shapes[0].Perimeter(); math.Abs(got-2*3.14159*2) > 1e-9 {
		t.Errorf("circle perimeter = %v, want %v", got, 2*3.14159*2)
	}
	if got := shapes[1].Area(); got != 12 {
		t.Errorf("rectangle area = %v, want 12", got)
	}
	if got := shapes[3].Area(); got != 25 {
		t.Errorf("square area = %v, want 25", got)
	}
}

func TestParseUnknownTag(t *testing.T) {
	input := `X 1 2
C 1
`
	l, diag := newTestLoader()
	shapes := l.Parse(strings.NewReader(input))

	if len(shapes) != 1 {
		t.Fatalf("len(shapes) = %d, want 1", len(shapes))
	}
	if shapes[0].Kind() != shape.KindCircle {
		t.Errorf("shapes[0].Kind() = %q, want Circle", shapes[0].Kind())
	}

	got := diag.String()
	if got != "Unknown shape: X\n" {
		t.Errorf("diagnostic = %q, want %q", got, "Unknown shape: X\n")
	}
}

func TestParseOneDiagnosticPerBadLine(t *testing.T) {
	input := `X 1
Y 2
C 1
Z
`
	l, diag := newTestLoader()
	shapes := l.Parse(strings.NewReader(input))

	if len(shapes) != 1 {
		t.Fatalf("len(shapes) = %d, want 1", len(shapes))
	}
	lines := strings.Count(diag.String(), "\n")
	if lines != 3 {
		t.Errorf("diagnostic lines = %d, want 3 (%q)", lines, diag.String())
	}
}

func TestParseMalformedFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric field", "C abc\n"},
		{"too few fields", "T 3 4\n"},
		{"too many fields", "R 1 2 3\n"},
		{"missing fields", "S\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, diag := newTestLoader()
			shapes := l.Parse(strings.NewReader(tt.input))

			if len(shapes) != 0 {
				t.Errorf("len(shapes) = %d, want 0", len(shapes))
			}
			if diag.Len() == 0 {
				t.Error("expected a diagnostic for the malformed record")
			}
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	input := "\nC 1\n\n\nS 2\n\n"
	l, diag := newTestLoader()
	shapes := l.Parse(strings.NewReader(input))

	if len(shapes) != 2 {
		t.Fatalf("len(shapes) = %d, want 2", len(shapes))
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", diag.String())
	}
}

func TestParsePreservesInputOrder(t *testing.T) {
	input := `S 1
S 2
S 3
`
	l, _ := newTestLoader()
	shapes := l.Parse(strings.NewReader(input))

	if len(shapes) != 3 {
		t.Fatalf("len(shapes) = %d, want 3", len(shapes))
	}
	for i, wantArea := range []float64{1, 4, 9} {
		if got := shapes[i].Area(); got != wantArea {
			t.Errorf("shapes[%d].Area() = %v, want %v", i, got, wantArea)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.txt")
	content := "C 2\nR 3 4\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	l, _ := newTestLoader()
	shapes, err := l.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(shapes) != 2 {
		t.Errorf("len(shapes) = %d, want 2", len(shapes))
	}
}

func TestLoadFileMissing(t *testing.T) {
	l, _ := newTestLoader()
	_, err := l.LoadFile(filepath.Join(t.TempDir(), "no-such-file.txt"))
	if err == nil {
		t.Fatal("LoadFile() on missing file: expected error, got nil")
	}
}

func TestRegistryCustomTag(t *testing.T) {
	l, diag := newTestLoader()
	l.Registry.Register("U", Entry{
		Kind:  shape.KindSquare,
		Arity: 1,
		Build: func(f []float64) shape.Shape { return shape.NewSquare(f[0] * 2) },
	})

	shapes := l.Parse(strings.NewReader("U 3\n"))
	if len(shapes) != 1 {
		t.Fatalf("len(shapes) = %d, want 1", len(shapes))
	}
	if got := shapes[0].Area(); got != 36 {
		t.Errorf("Area() = %v, want 36", got)
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", diag.String())
	}
}
