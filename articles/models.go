// Package articles implements the article resource: listing, lookup,
// creation, the legacy base-vote patch, and the per-user vote ledger for
// articles. Every read returns the effective score, base votes plus the sum
// of that article's ledger entries, alongside a comment count.
package articles

import "time"

// Article is the denormalized article view returned by every read.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// NewArticleRequest is the creation payload. ArticleImgURL falls back to the
// database default placeholder when absent.
type NewArticleRequest struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url,omitempty"`
}

// ArticleEnvelope wraps a single article response.
type ArticleEnvelope struct {
	Article *Article `json:"article"`
}

// ArticlesEnvelope wraps an article list response.
type ArticlesEnvelope struct {
	Articles []Article `json:"articles"`
}
