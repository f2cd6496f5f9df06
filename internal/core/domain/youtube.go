package domain

import "regexp"

var youtubeID = regexp.MustCompile(`(?:youtube(?:-nocookie)?\.com/(?:watch\?(?:.*&)?v=|embed/|v/|shorts/|live/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// YouTubeID extracts the 11 character video id from the common YouTube URL
// shapes. It returns "" when nothing matches.
func YouTubeID(url string) string {
	m := youtubeID.FindStringSubmatch(url)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
