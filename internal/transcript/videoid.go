package transcript

import "regexp"

// Covers watch, shortened, embed, shorts and live URL forms.
var (
	reVideoURL = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:(?:v|e(?:mbed)?|live|shorts)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	reVideoID  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// A bare video ID is returned unchanged; unrecognized input yields "".
func ExtractVideoID(input string) string {
	if reVideoID.MatchString(input) {
		return input
	}
	if m := reVideoURL.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return ""
}
