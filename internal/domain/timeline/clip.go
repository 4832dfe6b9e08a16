package timeline

import "time"

// Clip is one synthesized utterance as raw PCM in a known format.
type Clip struct {
	Format Format
	PCM    []byte
}

func (c Clip) Duration() time.Duration {
	return c.Format.DurationOf(len(c.PCM))
}

// Fit returns a clip of exactly max(1ms, target): longer input is truncated,
// shorter input gets trailing silence. Synthesized speech almost never lands
// on the source window, so this is a deliberate lossy policy; the invariant
// holds by construction, idempotent under re-fitting to the same target.
func Fit(c Clip, target time.Duration) Clip {
	if target < time.Millisecond {
		target = time.Millisecond
	}
	want := c.Format.ByteLen(target)
	switch {
	case len(c.PCM) > want:
		return Clip{Format: c.Format, PCM: c.PCM[:want]}
	case len(c.PCM) < want:
		padded := make([]byte, want)
		copy(padded, c.PCM)
		return Clip{Format: c.Format, PCM: padded}
	default:
		return c
	}
}
