package domain

import (
	"strings"
	"time"
)

// ContentType is the editorial sub-type of an article.
type ContentType string

const (
	ContentNews         ContentType = "news"
	ContentAnalysis     ContentType = "analysis"
	ContentGuide        ContentType = "guide"
	ContentReview       ContentType = "review"
	ContentOpinion      ContentType = "opinion"
	ContentPressRelease ContentType = "press_release"
	ContentInterview    ContentType = "interview"
	ContentTutorial     ContentType = "tutorial"
	ContentSponsored    ContentType = "sponsored"
	ContentResearch     ContentType = "research"
)

var contentTypes = []ContentType{
	ContentNews, ContentAnalysis, ContentGuide, ContentReview, ContentOpinion,
	ContentPressRelease, ContentInterview, ContentTutorial, ContentSponsored, ContentResearch,
}

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	for _, c := range contentTypes {
		if c == t {
			return true
		}
	}
	return false
}

// Article is a piece of editorial content.
type Article struct {
	ID          int64
	Title       string
	Slug        string
	ContentType ContentType
	Excerpt     string
	Body        string
	Author      string
	CoverPath   string
	Tags        []string
	ViewCount   int64
	IsFeatured  bool
	FeaturedAt  *time.Time
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeTags lowercases, slugifies and de-duplicates tags, keeping order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s := Slugify(strings.TrimSpace(t))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
