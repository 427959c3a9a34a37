package transcript

import (
	"regexp"
	"strings"
)

var (
	reUnsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	reDashRuns    = regexp.MustCompile(`-{2,}`)
)

// SanitizeFilename converts a video title into a safe file basename:
// spaces become dashes, anything outside [A-Za-z0-9._-] is dropped and
// dash runs collapse to one.
func SanitizeFilename(title string) string {
	s := strings.TrimSpace(title)
	s = strings.ReplaceAll(s, " ", "-")
	s = reUnsafeChars.ReplaceAllString(s, "")
	s = reDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-.")
}
