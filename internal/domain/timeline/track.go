package timeline

import "time"

// Track is the mutable output buffer: a silence-filled PCM track of the
// original recording's total duration onto which fitted clips are overlaid.
type Track struct {
	format Format
	pcm    []byte
}

// NewTrack allocates a silent track of the given total duration. PCM silence
// is all-zero for signed samples, so the zeroed allocation is the silence.
func NewTrack(total time.Duration, f Format) *Track {
	return &Track{format: f, pcm: make([]byte, f.ByteLen(total))}
}

// Overlay overwrites the window starting at the given offset with the clip's
// samples. Offsets outside the track are tolerated rather than rejected:
// negative offsets clamp to zero and samples past the end are dropped, so a
// mistimed segment degrades the output instead of crashing the run.
func (t *Track) Overlay(c Clip, at time.Duration) {
	start := t.format.ByteLen(at) // negative offsets clamp to 0
	if start >= len(t.pcm) {
		return
	}
	copy(t.pcm[start:], c.PCM)
}

func (t *Track) Duration() time.Duration {
	return t.format.DurationOf(len(t.pcm))
}

func (t *Track) Format() Format {
	return t.format
}

// PCM exposes the backing buffer for encoding. The track must not be
// overlaid after export begins.
func (t *Track) PCM() []byte {
	return t.pcm
}

// Window returns a copy of the samples in [at, at+d). Reads past the end
// come back as silence.
func (t *Track) Window(at, d time.Duration) []byte {
	out := make([]byte, t.format.ByteLen(d))
	start := t.format.ByteLen(at)
	if start < len(t.pcm) {
		copy(out, t.pcm[start:])
	}
	return out
}
