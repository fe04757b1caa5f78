package input

import "github.com/chewxy/math32"

// Script replays a fixed list of frames, then returns empty frames. Frames play in order, one per
// Poll. It drives the headless loop and tests.
type Script struct {
	Frames []Frame
	pos    int
}

// NewScript returns a script over frames.
func NewScript(frames ...Frame) *Script {
	return &Script{Frames: frames}
}

// Poll implements Mapper.
func (s *Script) Poll() Frame {
	if s.pos >= len(s.Frames) {
		return Frame{}
	}
	f := s.Frames[s.pos]
	s.pos++
	return f
}

// Done reports whether every frame has been played.
func (s *Script) Done() bool { return s.pos >= len(s.Frames) }

// Orbit returns n frames whose pointer traces a circle of the given radius around the center of a
// width x height screen, one full turn over n frames.
func Orbit(n int, width, height, radius, stall float32) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		x, y := circle(float32(i)/float32(n), radius)
		frames[i] = Frame{
			Direction:    PointerDirection(width/2+x, height/2+y, width, height, stall),
			HasDirection: true,
		}
	}
	return frames
}

func circle(turn, radius float32) (x, y float32) {
	s, c := math32.Sincos(2 * math32.Pi * turn)
	return c * radius, s * radius
}
