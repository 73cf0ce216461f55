// Package comments implements the comment resource: per-article listing and
// creation, the legacy base-vote patch, deletion, and the per-user vote
// ledger for comments.
package comments

import "time"

// Comment is the comment view returned by every read; Votes is the
// effective score (base counter plus ledger sum).
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentRequest is the creation payload. The author comes from the
// access token when one is supplied, otherwise from the username field.
type NewCommentRequest struct {
	Username string `json:"username,omitempty"`
	Token    string `json:"token,omitempty"`
	Body     string `json:"body"`
}

// CommentEnvelope wraps a single comment response.
type CommentEnvelope struct {
	Comment *Comment `json:"comment"`
}

// CommentsEnvelope wraps a comment list response.
type CommentsEnvelope struct {
	Comments []Comment `json:"comments"`
}
