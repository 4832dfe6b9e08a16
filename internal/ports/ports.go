package ports

import (
	"context"
	"time"

	"dubalign/internal/domain/timeline"
	"dubalign/internal/types"
)

// Transcriber recognizes and translates a whole audio file into time-stamped
// segments. A failure here is fatal to the run.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath, cacheDir, sourceLang string) (types.Transcript, error)
}

// Synthesizer turns one segment's text into a speech clip. A failure is
// per-segment and recoverable: the caller skips the segment.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) (timeline.Clip, error)
}

// AudioCodec wraps the external audio toolchain: decode to PCM, encode PCM
// to the output container, probe duration, and prepare recognizer input.
type AudioCodec interface {
	Decode(ctx context.Context, path string, f timeline.Format) (timeline.Clip, error)
	Encode(ctx context.Context, pcm []byte, f timeline.Format, outPath string) error
	ProbeDuration(ctx context.Context, path string) (time.Duration, error)
	ExtractMono16k(ctx context.Context, inPath, outWav string) error
}
