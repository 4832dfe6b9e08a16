package timeline

import "time"

// Format describes the PCM layout shared by every clip and track in a run.
// Audio is interleaved signed 16-bit little-endian throughout.
type Format struct {
	SampleRate int
	Channels   int
}

const bytesPerSample = 2

// DefaultFormat matches the synthesis engine's native output rate.
var DefaultFormat = Format{SampleRate: 24000, Channels: 1}

func (f Format) frameBytes() int {
	return f.Channels * bytesPerSample
}

// ByteLen returns the buffer size for d, truncated to a whole frame so
// buffers never split a sample across clips.
func (f Format) ByteLen(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	frames := int(int64(f.SampleRate) * d.Milliseconds() / 1000)
	return frames * f.frameBytes()
}

// DurationOf is the inverse of ByteLen for frame-aligned buffers.
func (f Format) DurationOf(byteLen int) time.Duration {
	if byteLen <= 0 || f.SampleRate <= 0 {
		return 0
	}
	frames := byteLen / f.frameBytes()
	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}
