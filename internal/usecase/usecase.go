package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"dubalign/internal/domain/srt"
	"dubalign/internal/domain/timeline"
	"dubalign/internal/ports"
	"dubalign/internal/types"
)

type Deps struct {
	ASR   ports.Transcriber
	TTS   ports.Synthesizer
	Codec ports.AudioCodec
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	InputAudio string
	SourceLang string
	TargetLang string

	OutAudio     string
	OutSubtitles string

	ScratchDir string
	Format     timeline.Format

	Logf func(format string, args ...any)

	// Progress is called after each retained segment is handled (done out
	// of total). Optional.
	Progress func(done, total int)
}

// SegmentReport records what happened to one retained segment, for the
// end-of-run summary.
type SegmentReport struct {
	Index    int
	StartMS  int64
	EndMS    int64
	Text     string
	FittedMS int64
	Skipped  bool
	Err      string
}

type Result struct {
	TotalDuration time.Duration
	Segments      []SegmentReport
	Subtitles     int
	Skipped       int
	AudioPath     string
	SubtitlePath  string
}

// Run executes one full pass: transcribe+translate, then per segment
// synthesize, fit, overlay, and record a subtitle entry, then export.
// Synthesis failures are per-segment: the window stays silent and the
// subtitle entry is omitted; everything else is fatal.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	wav := filepath.Join(in.ScratchDir, "input.wav")
	if err := u.d.Codec.ExtractMono16k(ctx, in.InputAudio, wav); err != nil {
		return Result{}, fmt.Errorf("prepare recognizer input: %w", err)
	}

	tr, err := u.d.ASR.Transcribe(ctx, wav, in.ScratchDir, in.SourceLang)
	if err != nil {
		return Result{}, fmt.Errorf("transcription failed: %w", err)
	}

	total, err := u.d.Codec.ProbeDuration(ctx, in.InputAudio)
	if err != nil {
		return Result{}, fmt.Errorf("load input audio: %w", err)
	}

	segs := types.Normalize(tr)
	// The recognizer is assumed to emit time-ordered segments, but nothing
	// enforces that upstream. Sort defensively; overlapping windows keep
	// last-writer-wins overlay semantics.
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].StartMS < segs[j].StartMS })
	logf("transcription produced %d usable segments", len(segs))

	track := timeline.NewTrack(total, in.Format)
	subs := &srt.Builder{}

	res := Result{
		TotalDuration: total,
		AudioPath:     in.OutAudio,
		SubtitlePath:  in.OutSubtitles,
	}

	for i, seg := range segs {
		report := SegmentReport{
			Index:   i + 1,
			StartMS: seg.StartMS,
			EndMS:   seg.EndMS,
			Text:    seg.Text,
		}
		logf("[segment %d] %.2fs - %.2fs -> %s",
			i+1, float64(seg.StartMS)/1000, float64(seg.EndMS)/1000, seg.Text)

		clip, err := u.d.TTS.Synthesize(ctx, seg.Text, in.TargetLang)
		if err != nil {
			logf("synthesis failed for segment %d: %v, skipping", i+1, err)
			report.Skipped = true
			report.Err = err.Error()
			res.Skipped++
			res.Segments = append(res.Segments, report)
			progress(in, i+1, len(segs))
			continue
		}

		fitted := timeline.Fit(clip, seg.TargetDuration())
		track.Overlay(fitted, seg.Start())
		subs.Append(seg.StartMS, seg.EndMS, seg.Text)

		report.FittedMS = fitted.Duration().Milliseconds()
		res.Segments = append(res.Segments, report)
		progress(in, i+1, len(segs))
	}
	res.Subtitles = subs.Len()

	logf("exporting aligned audio to %s", in.OutAudio)
	if err := u.d.Codec.Encode(ctx, track.PCM(), in.Format, in.OutAudio); err != nil {
		return Result{}, fmt.Errorf("export audio: %w", err)
	}

	logf("writing subtitles to %s", in.OutSubtitles)
	if err := os.WriteFile(in.OutSubtitles, []byte(subs.String()), 0o644); err != nil {
		return Result{}, fmt.Errorf("write subtitles: %w", err)
	}

	return res, nil
}

func progress(in Input, done, total int) {
	if in.Progress != nil {
		in.Progress(done, total)
	}
}
