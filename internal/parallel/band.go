package parallel

import "errors"

// ErrClosed is returned by Run after the pool has been closed.
var ErrClosed = errors.New("parallel: pool closed")

// BandHeight is the default number of rows per band. A 64 row band of a
// 1920 pixel wide image is about 480KB of RGBA output.
const BandHeight = 64

// Band is a horizontal strip of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into strips of at most rows each. The last
// band may be shorter. A non-positive rows value means BandHeight.
func Bands(height, rows int) []Band {
	if height <= 0 {
		return nil
	}
	if rows <= 0 {
		rows = BandHeight
	}
	out := make([]Band, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		out = append(out, Band{Y0: y, Y1: min(y+rows, height)})
	}
	return out
}
