// Package srt renders SubRip subtitle tracks with millisecond timestamps.
package srt

import (
	"fmt"
	"strings"
)

// Timestamp formats a millisecond offset as HH:MM:SS,mmm. Hours are not
// bounded: past 99 hours the field simply grows wider.
func Timestamp(ms int64) string {
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// ParseTimestamp is the inverse of Timestamp.
func ParseTimestamp(s string) (int64, error) {
	var h, m, sec, ms int64
	if _, err := fmt.Sscanf(s, "%d:%d:%d,%d", &h, &m, &sec, &ms); err != nil {
		return 0, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return h*3600000 + m*60000 + sec*1000 + ms, nil
}

// Builder accumulates subtitle entries in append order. Indices are 1-based
// and count appended entries only, so skipped segments leave no gaps.
type Builder struct {
	entries []string
}

func (b *Builder) Append(startMS, endMS int64, text string) {
	entry := fmt.Sprintf("%d\n%s --> %s\n%s\n",
		len(b.entries)+1, Timestamp(startMS), Timestamp(endMS), text)
	b.entries = append(b.entries, entry)
}

func (b *Builder) Len() int {
	return len(b.entries)
}

// String joins entries with blank-line separation. An empty builder yields
// an empty document.
func (b *Builder) String() string {
	return strings.Join(b.entries, "\n")
}
