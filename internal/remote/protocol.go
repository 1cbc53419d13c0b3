// Package remote serves the explorer over a websocket. Clients send JSON
// input events; after every change the server replies with a JSON status
// message followed by the frame as a binary PNG message.
package remote

import (
	"fmt"
	"strings"

	"github.com/gogpu/gpucontext"
)

// Event types sent by clients.
const (
	EventResize = "resize"
	EventMove   = "move"
	EventDown   = "down"
	EventUp     = "up"
	EventScroll = "scroll"
	EventKey    = "key"
)

// Event is one input event from a client. Coordinates are pixels of the
// client's canvas.
type Event struct {
	Type   string  `json:"type"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Button int     `json:"button,omitempty"`
	Key    string  `json:"key,omitempty"`
}

// Status precedes every frame.
type Status struct {
	Type          string     `json:"type"` // always "frame"
	Version       uint64     `json:"version"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Magnification float64    `json:"magnification"`
	Center        [2]float64 `json:"center"`
	AutoCycle     bool       `json:"autoCycle"`
}

var keyNames = map[string]gpucontext.Key{
	"z":      gpucontext.KeyZ,
	"r":      gpucontext.KeyR,
	"c":      gpucontext.KeyC,
	"1":      gpucontext.Key1,
	"2":      gpucontext.Key2,
	"3":      gpucontext.Key3,
	"escape": gpucontext.KeyEscape,
}

// ParseKey maps a client key name to a key code. Names are case
// insensitive.
func ParseKey(name string) (gpucontext.Key, error) {
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("remote: unknown key %q", name)
	}
	return k, nil
}
