package domain

import "time"

// Video is an embedded YouTube video.
type Video struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	YouTubeURL  string
	YouTubeID   string
	ViewCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EmbedURL is the iframe source, empty without a video id.
func (v Video) EmbedURL() string {
	if v.YouTubeID == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + v.YouTubeID
}

// ThumbnailURL is YouTube's high quality preview image.
func (v Video) ThumbnailURL() string {
	if v.YouTubeID == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + v.YouTubeID + "/hqdefault.jpg"
}
