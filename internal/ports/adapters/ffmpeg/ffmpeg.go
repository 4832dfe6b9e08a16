package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"dubalign/internal/domain/timeline"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

// Decode converts any input the toolchain understands into raw s16le PCM in
// the requested format.
func (a *Adapter) Decode(ctx context.Context, path string, f timeline.Format) (timeline.Clip, error) {
	raw := path + ".s16le"
	defer os.Remove(raw)
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", path,
		"-f", "s16le",
		"-ac", strconv.Itoa(f.Channels),
		"-ar", strconv.Itoa(f.SampleRate),
		raw,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return timeline.Clip{}, fmt.Errorf("ffmpeg decode: %w\n%s", err, string(b))
	}
	pcm, err := os.ReadFile(raw)
	if err != nil {
		return timeline.Clip{}, fmt.Errorf("read decoded pcm: %w", err)
	}
	return timeline.Clip{Format: f, PCM: pcm}, nil
}

// Encode writes raw PCM out as MP3.
func (a *Adapter) Encode(ctx context.Context, pcm []byte, f timeline.Format, outPath string) error {
	raw := outPath + ".s16le"
	if err := os.WriteFile(raw, pcm, 0o644); err != nil {
		return fmt.Errorf("stage pcm for encode: %w", err)
	}
	defer os.Remove(raw)
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-f", "s16le",
		"-ac", strconv.Itoa(f.Channels),
		"-ar", strconv.Itoa(f.SampleRate),
		"-i", raw,
		"-b:a", "192k",
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg encode: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) ProbeDuration(ctx context.Context, path string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

// ExtractMono16k prepares the recognizer's input: whisper.cpp wants mono
// 16kHz wav regardless of the source container.
func (a *Adapter) ExtractMono16k(ctx context.Context, inPath, outWav string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-f", "wav",
		outWav,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w\n%s", err, string(b))
	}
	return nil
}
