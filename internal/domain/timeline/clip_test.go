package timeline

import (
	"bytes"
	"testing"
	"time"
)

// testFormat keeps the math readable: 1000Hz mono s16le means 1ms == 2 bytes.
var testFormat = Format{SampleRate: 1000, Channels: 1}

func filledClip(d time.Duration, fill byte) Clip {
	pcm := bytes.Repeat([]byte{fill}, testFormat.ByteLen(d))
	return Clip{Format: testFormat, PCM: pcm}
}

func TestFit_Table(t *testing.T) {
	tests := []struct {
		name   string
		clip   time.Duration
		target time.Duration
		want   time.Duration
	}{
		{"truncate", 2500 * time.Millisecond, 2 * time.Second, 2 * time.Second},
		{"pad", 500 * time.Millisecond, 2 * time.Second, 2 * time.Second},
		{"exact", 2 * time.Second, 2 * time.Second, 2 * time.Second},
		{"zero target floors at 1ms", 100 * time.Millisecond, 0, time.Millisecond},
		{"negative target floors at 1ms", 100 * time.Millisecond, -5 * time.Second, time.Millisecond},
		{"empty clip pads fully", 0, 300 * time.Millisecond, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(filledClip(tt.clip, 0x7f), tt.target)
			if got.Duration() != tt.want {
				t.Fatalf("Fit duration = %v, want %v", got.Duration(), tt.want)
			}
			if len(got.PCM) != testFormat.ByteLen(tt.want) {
				t.Fatalf("Fit length = %d bytes, want %d", len(got.PCM), testFormat.ByteLen(tt.want))
			}
		})
	}
}

func TestFit_Idempotent(t *testing.T) {
	target := 1500 * time.Millisecond
	once := Fit(filledClip(2*time.Second, 0x11), target)
	twice := Fit(once, target)
	if !bytes.Equal(once.PCM, twice.PCM) {
		t.Fatalf("re-fitting to the same target changed the clip")
	}
}

func TestFit_PadIsTrailingSilence(t *testing.T) {
	got := Fit(filledClip(time.Second, 0x11), 2*time.Second)
	speech := testFormat.ByteLen(time.Second)
	for i, b := range got.PCM {
		if i < speech && b != 0x11 {
			t.Fatalf("speech byte %d was altered", i)
		}
		if i >= speech && b != 0 {
			t.Fatalf("pad byte %d is not silence", i)
		}
	}
}

func TestFit_TruncateKeepsPrefix(t *testing.T) {
	clip := Clip{Format: testFormat, PCM: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	got := Fit(clip, 2*time.Millisecond)
	if !bytes.Equal(got.PCM, []byte{1, 2, 3, 4}) {
		t.Fatalf("expected first-window prefix, got %v", got.PCM)
	}
}

func TestFormat_ByteLenRoundTrip(t *testing.T) {
	f := Format{SampleRate: 24000, Channels: 1}
	for _, d := range []time.Duration{time.Millisecond, 20 * time.Millisecond, time.Second, 2500 * time.Millisecond} {
		if got := f.DurationOf(f.ByteLen(d)); got != d {
			t.Fatalf("round trip of %v gave %v", d, got)
		}
	}
	if f.ByteLen(-time.Second) != 0 {
		t.Fatalf("negative durations must map to empty buffers")
	}
}
