package mandelbrot

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/mandelbrot/palettes"
)

// PaletteSize is the number of entries a palette file must contain.
const PaletteSize = 16

// ErrMalformedPalette is returned when a palette file cannot be parsed.
var ErrMalformedPalette = errors.New("mandelbrot: malformed palette")

// LoadPalette reads a palette file: exactly PaletteSize lines of
// comma-separated "r,g,b" triples in 0..255. Blank lines and lines starting
// with '#' are skipped.
func LoadPalette(r io.Reader) (*Palette, error) {
	entries := make([]RGB8, 0, PaletteSize)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		c, err := parseTriple(s)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedPalette, line, err)
		}
		entries = append(entries, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	if len(entries) != PaletteSize {
		return nil, fmt.Errorf("%w: want %d entries, got %d", ErrMalformedPalette, PaletteSize, len(entries))
	}
	return NewPalette(entries)
}

// LoadPaletteFile opens path and parses it with LoadPalette.
func LoadPaletteFile(path string) (*Palette, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("open palette: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	p, err := LoadPalette(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

var (
	defaultPaletteOnce sync.Once
	defaultPalette     *Palette
)

// DefaultPalette returns the built-in palette. It panics if the embedded
// file is malformed, which is a build defect.
func DefaultPalette() *Palette {
	defaultPaletteOnce.Do(func() {
		p, err := LoadPalette(bytes.NewReader(palettes.Default))
		if err != nil {
			panic(fmt.Sprintf("mandelbrot: embedded palette: %v", err))
		}
		defaultPalette = p
	})
	return defaultPalette
}

func parseTriple(s string) (RGB8, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB8{}, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	var ch [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return RGB8{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		ch[i] = uint8(v)
	}
	return RGB8{R: ch[0], G: ch[1], B: ch[2]}, nil
}
