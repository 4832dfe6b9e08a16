package gtts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"dubalign/internal/domain/timeline"
)

type fakeCodec struct {
	decoded []string
}

func (f *fakeCodec) Decode(_ context.Context, path string, format timeline.Format) (timeline.Clip, error) {
	f.decoded = append(f.decoded, path)
	b, err := os.ReadFile(path)
	if err != nil {
		return timeline.Clip{}, err
	}
	return timeline.Clip{Format: format, PCM: b}, nil
}

func (f *fakeCodec) Encode(_ context.Context, _ []byte, _ timeline.Format, _ string) error {
	return nil
}

func (f *fakeCodec) ProbeDuration(_ context.Context, _ string) (time.Duration, error) {
	return 0, nil
}

func (f *fakeCodec) ExtractMono16k(_ context.Context, _, _ string) error {
	return nil
}

func TestSynthesize(t *testing.T) {
	audio := []byte("fake-mp3-bytes")
	var gotPath, gotLang, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLang = r.URL.Query().Get("tl")
		gotText = r.URL.Query().Get("q")
		_, _ = w.Write(audio)
	}))
	defer srv.Close()

	scratch := t.TempDir()
	codec := &fakeCodec{}
	a := New(srv.URL, scratch, timeline.Format{SampleRate: 1000, Channels: 1}, codec)

	clip, err := a.Synthesize(context.Background(), "Hello world", "en")
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if gotPath != "/translate_tts" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if gotLang != "en" || gotText != "Hello world" {
		t.Fatalf("unexpected query: tl=%q q=%q", gotLang, gotText)
	}
	if string(clip.PCM) != string(audio) {
		t.Fatalf("clip does not carry decoded audio")
	}

	// The staged scratch file must not outlive the call.
	if len(codec.decoded) != 1 {
		t.Fatalf("expected exactly one decode, got %d", len(codec.decoded))
	}
	if _, err := os.Stat(codec.decoded[0]); !os.IsNotExist(err) {
		t.Fatalf("scratch file %s was not released", codec.decoded[0])
	}
}

func TestSynthesize_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := New(srv.URL, t.TempDir(), timeline.Format{SampleRate: 1000, Channels: 1}, &fakeCodec{})

	if _, err := a.Synthesize(context.Background(), "text", "en"); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
	if _, err := a.Synthesize(context.Background(), "", "en"); err == nil {
		t.Fatalf("expected error on empty text")
	}
}

func TestSynthesize_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	a := New(srv.URL, t.TempDir(), timeline.Format{SampleRate: 1000, Channels: 1}, &fakeCodec{})
	if _, err := a.Synthesize(context.Background(), "text", "en"); err == nil {
		t.Fatalf("expected error on empty audio response")
	}
}
