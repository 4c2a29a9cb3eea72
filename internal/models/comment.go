package models

import "time"

// CommentStatus represents the moderation state of a comment.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// Valid reports whether s is one of the known moderation states.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentRejected:
		return true
	}
	return false
}

// CommentModel is a reader comment attached to an article by id.
// Deleting the article does not cascade; orphans stay addressable by id only.
type CommentModel struct {
	ID        string        `json:"id"`
	ArticleID string        `json:"article_id"`
	Author    string        `json:"author"`
	Mail      string        `json:"mail"`
	Text      string        `json:"text"`
	Status    CommentStatus `json:"status"`
	CreatedAt time.Time     `json:"created"`
}
