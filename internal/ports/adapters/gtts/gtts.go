// Package gtts synthesizes speech through the Google Translate TTS endpoint.
package gtts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dubalign/internal/domain/timeline"
	"dubalign/internal/ports"
)

const requestTimeout = 30 * time.Second

type Adapter struct {
	baseURL    string
	scratchDir string
	format     timeline.Format
	codec      ports.AudioCodec
	client     *http.Client
}

// New builds a synthesizer that stages each response as an MP3 in scratchDir
// and hands it to the codec for PCM decode. Scratch files never outlive the
// Synthesize call that created them.
func New(baseURL, scratchDir string, f timeline.Format, codec ports.AudioCodec) *Adapter {
	return &Adapter{
		baseURL:    normalizeBaseURL(baseURL),
		scratchDir: scratchDir,
		format:     f,
		codec:      codec,
		client:     &http.Client{Timeout: requestTimeout},
	}
}

func (a *Adapter) Synthesize(ctx context.Context, text, lang string) (timeline.Clip, error) {
	if text == "" {
		return timeline.Clip{}, errors.New("tts: empty text")
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", text)
	endpoint := a.baseURL + "/translate_tts?" + q.Encode()

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return timeline.Clip{}, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return timeline.Clip{}, fmt.Errorf("tts timeout after %s", requestTimeout)
		}
		return timeline.Clip{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return timeline.Clip{}, fmt.Errorf("tts status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return timeline.Clip{}, fmt.Errorf("tts read body: %w", err)
	}
	if len(body) == 0 {
		return timeline.Clip{}, errors.New("tts: empty audio response")
	}

	scratch := filepath.Join(a.scratchDir, uuid.NewString()+".mp3")
	if err := os.WriteFile(scratch, body, 0o644); err != nil {
		return timeline.Clip{}, fmt.Errorf("stage tts audio: %w", err)
	}
	defer os.Remove(scratch)

	clip, err := a.codec.Decode(ctx, scratch, a.format)
	if err != nil {
		return timeline.Clip{}, fmt.Errorf("decode tts audio: %w", err)
	}
	return clip, nil
}
