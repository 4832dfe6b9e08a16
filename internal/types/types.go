package types

import (
	"strings"
	"time"
)

// Transcript is the raw output of the recognition engine. Offsets are in
// seconds, as emitted by whisper.cpp.
type Transcript struct {
	Segments []RawSegment `json:"segments"`
}

type RawSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Segment is one retained, normalized unit of translated speech with
// millisecond offsets.
type Segment struct {
	StartMS int64
	EndMS   int64
	Text    string
}

// TargetDuration is the time window the synthesized clip must fill, floored
// at 1ms so degenerate and inverted windows never yield an empty clip.
func (s Segment) TargetDuration() time.Duration {
	d := time.Duration(s.EndMS-s.StartMS) * time.Millisecond
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

func (s Segment) Start() time.Duration {
	return time.Duration(s.StartMS) * time.Millisecond
}

// Normalize converts raw second-based segments to millisecond segments,
// trimming text and silently dropping segments whose trimmed text is empty.
// Second offsets truncate toward zero; no other validation happens here, so
// inverted or negative windows pass through for downstream clamping.
func Normalize(tr Transcript) []Segment {
	out := make([]Segment, 0, len(tr.Segments))
	for _, raw := range tr.Segments {
		text := strings.TrimSpace(raw.Text)
		if text == "" {
			continue
		}
		out = append(out, Segment{
			StartMS: int64(raw.Start * 1000),
			EndMS:   int64(raw.End * 1000),
			Text:    text,
		})
	}
	return out
}
