// Package track models live media track handles announced by the assistant
// server. A present handle in the registry is what the UI treats as "the bot
// has audio"; the handle itself only carries recent level samples, never
// decoded audio.
package track

// Kind identifies the media type of a track.
type Kind string

// KindAudio is the only kind the client currently consumes.
const KindAudio Kind = "audio"

// Role identifies which participant a track belongs to.
type Role string

const (
	RoleBot  Role = "bot"
	RoleUser Role = "user"
)

// historySize bounds the level history kept per track. The visualizer reads
// at most BarCount samples; the rest is headroom for smoothing experiments.
const historySize = 64

// Track is a live media track handle. The connection layer pushes level
// samples in [0,1] as they arrive; the track keeps a bounded history.
// Tracks are confined to the UI goroutine.
type Track struct {
	kind   Kind
	role   Role
	levels [historySize]float64
	head   int
	count  int
}

// New creates a track handle for the given kind and role.
func New(kind Kind, role Role) *Track {
	return &Track{kind: kind, role: role}
}

// Kind returns the track's media kind.
func (t *Track) Kind() Kind {
	return t.kind
}

// Role returns the participant role the track belongs to.
func (t *Track) Role() Role {
	return t.role
}

// Push records a level sample, clamped to [0,1].
func (t *Track) Push(level float64) {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	t.levels[t.head] = level
	t.head = (t.head + 1) % historySize
	if t.count < historySize {
		t.count++
	}
}

// Level returns the most recent sample, or 0 when none has arrived yet.
func (t *Track) Level() float64 {
	if t.count == 0 {
		return 0
	}
	return t.levels[(t.head-1+historySize)%historySize]
}

// Bands returns the n most recent samples, oldest first, zero-padded on the
// left when fewer samples exist. One visualizer bar per sample.
func (t *Track) Bands(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	avail := min(n, t.count)
	for i := range avail {
		idx := (t.head - avail + i + historySize) % historySize
		out[n-avail+i] = t.levels[idx]
	}
	return out
}
