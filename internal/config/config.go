// Package config loads the optional dubalign.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "dubalign.yaml"

type Config struct {
	// Output paths
	OutputAudio     string `yaml:"output_audio"`
	OutputSubtitles string `yaml:"output_subtitles"`

	// Languages
	SourceLanguage string `yaml:"source_language"`
	TargetLanguage string `yaml:"target_language"`

	// PCM layout for the composited track
	SampleRate int `yaml:"sample_rate"`

	// Skip interactive prompts (still requires an input path argument)
	AutoConfirm bool `yaml:"auto_confirm"`

	Whisper struct {
		Path  string `yaml:"path"`
		Model string `yaml:"model"`
	} `yaml:"whisper"`

	FFmpeg struct {
		Path      string `yaml:"path"`
		ProbePath string `yaml:"probe_path"`
	} `yaml:"ffmpeg"`

	TTS struct {
		BaseURL      string   `yaml:"base_url"`
		AllowedHosts []string `yaml:"allowed_hosts"`
	} `yaml:"tts"`
}

func Default() *Config {
	c := &Config{}

	c.OutputAudio = "english_aligned_output.mp3"
	c.OutputSubtitles = "english_subtitles.srt"

	c.SourceLanguage = "es"
	c.TargetLanguage = "en"

	c.SampleRate = 24000

	c.Whisper.Path = "whisper-cli"
	c.Whisper.Model = ".cache/models/ggml-medium.bin"

	c.FFmpeg.Path = "ffmpeg"
	c.FFmpeg.ProbePath = "ffprobe"

	return c
}

// Load reads the config at path, overlaying it on the defaults. A missing
// file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.OutputAudio == "" {
		return errors.New("output_audio is empty")
	}
	if c.OutputSubtitles == "" {
		return errors.New("output_subtitles is empty")
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be > 0, got %d", c.SampleRate)
	}
	return nil
}
