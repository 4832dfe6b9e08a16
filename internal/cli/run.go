package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"dubalign/internal/config"
	"dubalign/internal/language"
	"dubalign/internal/pipeline"
	"dubalign/internal/ui"
	"dubalign/internal/usecase"
)

func run(cmd *cobra.Command, input string) error {
	configPath, _ := cmd.Flags().GetString("config")
	outAudio, _ := cmd.Flags().GetString("out-audio")
	outSubs, _ := cmd.Flags().GetString("out-subs")
	yes, _ := cmd.Flags().GetBool("yes")
	sourceLang, _ := cmd.Flags().GetString("source")
	targetLang, _ := cmd.Flags().GetString("target")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applyFlagOverrides(cfg, outAudio, outSubs, sourceLang, targetLang)

	term := ui.NewTerminal()
	term.Banner(version)
	if err := ui.WriteLicenseFile(""); err != nil {
		term.Warnf("could not write %s: %v", ui.LicenseFileName, err)
	}
	term.ShowLicense()

	authorized := yes || cfg.AutoConfirm
	if !authorized {
		ok, err := term.ConfirmAuthorization()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("authorization not provided")
		}
		authorized = true
	}

	if input == "" {
		if yes || cfg.AutoConfirm {
			return errors.New("input path argument is required in non-interactive mode")
		}
		input, err = term.InputPath()
		if err != nil {
			return err
		}
	}
	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	bar := newProgress()
	pcfg := pipeline.Config{
		InputAudio:   absIn,
		OutAudio:     cfg.OutputAudio,
		OutSubtitles: cfg.OutputSubtitles,
		SourceLang:   cfg.SourceLanguage,
		TargetLang:   cfg.TargetLanguage,
		Authorized:   authorized,
		SampleRate:   cfg.SampleRate,

		FFmpegPath:  cfg.FFmpeg.Path,
		FFprobePath: cfg.FFmpeg.ProbePath,

		WhisperBin:   cfg.Whisper.Path,
		WhisperModel: cfg.Whisper.Model,

		TTSBaseURL:      getenvDefault("DUBALIGN_TTS_BASE_URL", cfg.TTS.BaseURL),
		TTSAllowedHosts: cfg.TTS.AllowedHosts,

		Logf:     term.Printf,
		Progress: bar.update,
	}

	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	term.Infof("translating %s speech to %s",
		language.Display(cfg.SourceLanguage), language.Display(cfg.TargetLanguage))

	res, err := pipeline.Run(ctx, pcfg)
	bar.finish()
	if err != nil {
		return err
	}

	printSummary(term, res)
	return nil
}

func applyFlagOverrides(cfg *config.Config, outAudio, outSubs, sourceLang, targetLang string) {
	if outAudio != "" {
		cfg.OutputAudio = outAudio
	}
	if outSubs != "" {
		cfg.OutputSubtitles = outSubs
	}
	if sourceLang != "" {
		cfg.SourceLanguage = sourceLang
	}
	if targetLang != "" {
		cfg.TargetLanguage = targetLang
	}
}

func printSummary(term *ui.Terminal, res usecase.Result) {
	if len(res.Segments) > 0 {
		term.Printf("%s", renderSegmentTable(res.Segments))
	}
	term.Infof("done! saved audio: %s", res.AudioPath)
	term.Infof("subtitles: %s (%d entries)", res.SubtitlePath, res.Subtitles)
	if res.Skipped > 0 {
		term.Warnf("%d segment(s) skipped; their windows stay silent", res.Skipped)
	}
}

// progress wraps a lazily created bar: the segment count is only known once
// transcription finishes, and the bar stays off when stdout is not a TTY.
type progress struct {
	enabled bool
	bar     *progressbar.ProgressBar
}

func newProgress() *progress {
	return &progress{enabled: isatty.IsTerminal(os.Stdout.Fd())}
}

func (p *progress) update(done, total int) {
	if !p.enabled {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("dubbing"),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
}

func (p *progress) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
