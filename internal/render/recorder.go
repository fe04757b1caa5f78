package render

import "voxel-lab/internal/voxel"

// Event is an Add or Remove seen by a Recorder.
type Event struct {
	Added  bool
	Handle voxel.Handle
	Coord  voxel.GridCoord
}

// Recorder is a Renderer that keeps what it was given instead of drawing it.
type Recorder struct {
	Events   []Event
	Frames   int
	Last     Submission
	entities map[voxel.Handle]voxel.GridCoord
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{entities: make(map[voxel.Handle]voxel.GridCoord)}
}

// Add implements Renderer.
func (r *Recorder) Add(h voxel.Handle, coord voxel.GridCoord) {
	r.Events = append(r.Events, Event{Added: true, Handle: h, Coord: coord})
	r.entities[h] = coord
}

// Remove implements Renderer.
func (r *Recorder) Remove(h voxel.Handle) {
	r.Events = append(r.Events, Event{Handle: h, Coord: r.entities[h]})
	delete(r.entities, h)
}

// Draw implements Renderer. The entity list is copied so later frames cannot change it.
func (r *Recorder) Draw(s Submission) {
	r.Frames++
	r.Last = s
	r.Last.Entities = append([]Entity(nil), s.Entities...)
}

// Live returns how many entities the recorder currently tracks.
func (r *Recorder) Live() int { return len(r.entities) }

// Tracks reports whether h has been added and not removed.
func (r *Recorder) Tracks(h voxel.Handle) bool {
	_, ok := r.entities[h]
	return ok
}
