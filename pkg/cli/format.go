package cli

import (
	"fmt"
	"strconv"
	"time"
)

// FormatDuration formats a duration to a human readable string
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	secs := float64(ms) / 1000
	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}
	mins := int(secs / 60)
	secs = secs - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// FormatBeats formats a beat count without trailing zeros
func FormatBeats(beats float64) string {
	s := strconv.FormatFloat(beats, 'f', 2, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "1" {
		return "1 beat"
	}
	return s + " beats"
}
