package domain

import "time"

// Commentable entity types.
var CommentableTypes = []string{"article", "airdrop", "presale", "event", "video", "exchange_listing"}

// Comment belongs to any commentable entity and may be a reply.
type Comment struct {
	ID              int64
	CommentableType string
	CommentableID   int64
	ParentID        *int64
	UserID          string
	Body            string
	IsApproved      bool
	ApprovedAt      *time.Time
	IsSpam          bool
	ReportCount     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Visible reports whether the comment is shown publicly.
func (c Comment) Visible() bool { return c.IsApproved && !c.IsSpam }

// ValidCommentable reports whether t names a commentable entity type.
func ValidCommentable(t string) bool {
	for _, v := range CommentableTypes {
		if v == t {
			return true
		}
	}
	return false
}
