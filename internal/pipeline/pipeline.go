package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dubalign/internal/deps"
	"dubalign/internal/domain/timeline"
	"dubalign/internal/language"
	"dubalign/internal/ports"
	"dubalign/internal/ports/adapters/ffmpeg"
	"dubalign/internal/ports/adapters/gtts"
	"dubalign/internal/ports/adapters/whispercpp"
	"dubalign/internal/usecase"
)

// ErrNotAuthorized is returned when the caller has not passed the startup
// authorization gate. The core never prompts; the CLI owns that interaction.
var ErrNotAuthorized = errors.New("run is not authorized")

type Config struct {
	InputAudio string

	OutAudio     string
	OutSubtitles string

	SourceLang string
	TargetLang string

	// Authorized must be set by the entry point after its consent flow.
	Authorized bool

	SampleRate int

	FFmpegPath  string
	FFprobePath string

	WhisperBin   string
	WhisperModel string

	TTSBaseURL      string
	TTSAllowedHosts []string

	Logf     func(format string, args ...any)
	Progress func(done, total int)
}

func (c Config) Validate() error {
	if !c.Authorized {
		return ErrNotAuthorized
	}
	if c.InputAudio == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputAudio); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.OutAudio == "" {
		return errors.New("output audio path is empty")
	}
	if c.OutSubtitles == "" {
		return errors.New("output subtitle path is empty")
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0")
	}
	if c.WhisperModel == "" {
		return errors.New("whisper model path is required")
	}
	if _, err := language.Normalize(c.SourceLang); err != nil {
		return fmt.Errorf("source language: %w", err)
	}
	if _, err := language.Normalize(c.TargetLang); err != nil {
		return fmt.Errorf("target language: %w", err)
	}
	return gtts.ValidateBaseURL(c.TTSBaseURL, c.TTSAllowedHosts)
}

// Requirements lists the external binaries a run shells out to. The model
// file is checked separately since it is data, not a binary.
func (c Config) Requirements() []deps.Requirement {
	return []deps.Requirement{
		{Name: "FFmpeg", Command: c.FFmpegPath, Description: "audio decode, encode, and overlay staging"},
		{Name: "FFprobe", Command: c.FFprobePath, Description: "input duration probing"},
		{Name: "whisper.cpp", Command: c.WhisperBin, Description: "speech recognition and translation"},
	}
}

// Run wires the adapters and executes one batch pass. The scratch directory
// and everything in it is released on every exit path.
func Run(ctx context.Context, cfg Config) (usecase.Result, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if missing := deps.FirstMissing(deps.Check(cfg.Requirements())); missing != nil {
		return usecase.Result{}, fmt.Errorf("missing dependency %s: %s", missing.Name, missing.Detail)
	}
	if _, err := os.Stat(cfg.WhisperModel); err != nil {
		return usecase.Result{}, fmt.Errorf("whisper model: %w", err)
	}

	srcLang, err := language.Normalize(cfg.SourceLang)
	if err != nil {
		return usecase.Result{}, err
	}
	dstLang, err := language.Normalize(cfg.TargetLang)
	if err != nil {
		return usecase.Result{}, err
	}

	scratchDir, err := os.MkdirTemp("", "dubalign-tts-")
	if err != nil {
		return usecase.Result{}, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratchDir)
	logf("scratch: %s", scratchDir)

	format := timeline.Format{SampleRate: cfg.SampleRate, Channels: 1}

	// adapters
	codec := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	asr := whispercpp.New(cfg.WhisperBin, cfg.WhisperModel)
	tts := gtts.New(cfg.TTSBaseURL, scratchDir, format, codec)

	uc := usecase.New(usecase.Deps{
		ASR:   asr,
		TTS:   tts,
		Codec: codec,
	})

	return uc.Run(ctx, usecase.Input{
		InputAudio:   cfg.InputAudio,
		SourceLang:   srcLang,
		TargetLang:   dstLang,
		OutAudio:     cfg.OutAudio,
		OutSubtitles: cfg.OutSubtitles,
		ScratchDir:   scratchDir,
		Format:       format,
		Logf:         logf,
		Progress:     cfg.Progress,
	})
}

// ensure adapters implement ports
var _ ports.AudioCodec = (*ffmpeg.Adapter)(nil)
var _ ports.Transcriber = (*whispercpp.Adapter)(nil)
var _ ports.Synthesizer = (*gtts.Adapter)(nil)
