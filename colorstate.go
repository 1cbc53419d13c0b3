package mandelbrot

import "time"

const (
	// ColorStep is the amount one channel increment or one auto-cycle step
	// adds to the base color offset.
	ColorStep = 0.05

	// AutoCycleInterval is the period between auto-cycle steps.
	AutoCycleInterval = 100 * time.Millisecond
)

// Channel selects one color channel.
type Channel int

// Color channels.
const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// ColorState is the base color offset added to every palette color, plus
// the auto-cycle switch. The offset is kept in [0, 1) per channel.
type ColorState struct {
	base      RGBA
	autoCycle bool
	elapsed   time.Duration
}

// Base returns the current offset.
func (s *ColorState) Base() RGBA {
	return s.base
}

// AutoCycle reports whether auto-cycling is on.
func (s *ColorState) AutoCycle() bool {
	return s.autoCycle
}

// Increment steps one channel by ColorStep.
func (s *ColorState) Increment(ch Channel) bool {
	switch ch {
	case ChannelRed:
		s.base.R = wrapUnit(s.base.R + ColorStep)
	case ChannelGreen:
		s.base.G = wrapUnit(s.base.G + ColorStep)
	case ChannelBlue:
		s.base.B = wrapUnit(s.base.B + ColorStep)
	default:
		return false
	}
	return true
}

// Reset zeroes the offset and stops auto-cycling.
func (s *ColorState) Reset() {
	s.base = RGBA{}
	s.autoCycle = false
	s.elapsed = 0
}

// ToggleAutoCycle flips auto-cycling and returns the new setting.
func (s *ColorState) ToggleAutoCycle() bool {
	s.autoCycle = !s.autoCycle
	s.elapsed = 0
	return s.autoCycle
}

// Tick advances the auto-cycle clock by dt and applies one step for every
// full AutoCycleInterval elapsed. It reports whether the offset changed.
func (s *ColorState) Tick(dt time.Duration) bool {
	if !s.autoCycle || dt <= 0 {
		return false
	}
	s.elapsed += dt
	steps := s.elapsed / AutoCycleInterval
	if steps == 0 {
		return false
	}
	s.elapsed -= steps * AutoCycleInterval
	d := ColorStep * float64(steps)
	s.base = RGBA{
		R: wrapUnit(s.base.R + d),
		G: wrapUnit(s.base.G + d),
		B: wrapUnit(s.base.B + d),
	}
	return true
}

// Apply adds the offset to a palette color.
func (s *ColorState) Apply(c RGBA) RGBA {
	return c.AddWrapped(s.base)
}
