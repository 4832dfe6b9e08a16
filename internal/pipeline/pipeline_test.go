package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dubalign/internal/deps"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	tmp := t.TempDir()
	input := filepath.Join(tmp, "in.mp3")
	if err := os.WriteFile(input, []byte("mp3"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return Config{
		InputAudio:   input,
		OutAudio:     filepath.Join(tmp, "out.mp3"),
		OutSubtitles: filepath.Join(tmp, "out.srt"),
		SourceLang:   "es",
		TargetLang:   "en",
		Authorized:   true,
		SampleRate:   24000,
		FFmpegPath:   "ffmpeg",
		FFprobePath:  "ffprobe",
		WhisperBin:   "whisper-cli",
		WhisperModel: filepath.Join(tmp, "model.bin"),
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"unauthorized", func(c *Config) { c.Authorized = false }, ErrNotAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestConfig_ValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.InputAudio = "" }},
		{"input missing", func(c *Config) { c.InputAudio = filepath.Join(t.TempDir(), "nope.mp3") }},
		{"empty audio output", func(c *Config) { c.OutAudio = "" }},
		{"empty subtitle output", func(c *Config) { c.OutSubtitles = "" }},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"no whisper model", func(c *Config) { c.WhisperModel = "" }},
		{"bad source language", func(c *Config) { c.SourceLang = "zz" }},
		{"bad target language", func(c *Config) { c.TargetLang = "" }},
		{"plain-http TTS endpoint", func(c *Config) { c.TTSBaseURL = "http://translate.google.com" }},
		{"unlisted TTS host", func(c *Config) { c.TTSBaseURL = "https://evil.example" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestConfig_Requirements(t *testing.T) {
	cfg := validConfig(t)
	reqs := cfg.Requirements()
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(reqs))
	}
	for _, r := range reqs {
		if r.Optional {
			t.Fatalf("%s must not be optional", r.Name)
		}
	}

	// A bogus ffmpeg path must be the first reported gap.
	cfg.FFmpegPath = "definitely-not-ffmpeg-xyz"
	missing := deps.FirstMissing(deps.Check(cfg.Requirements()))
	if missing == nil || missing.Name != "FFmpeg" {
		t.Fatalf("expected FFmpeg to be reported missing, got %+v", missing)
	}
}
