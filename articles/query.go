package articles

import (
	"fmt"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

// ListQuery is a validated set of listing parameters. Sort columns and
// order are resolved against whitelists, never interpolated from input.
type ListQuery struct {
	Topic     string
	sortExpr  string
	orderExpr string
}

var sortColumns = map[string]string{
	"article_id":    "a.article_id",
	"title":         "a.title",
	"topic":         "a.topic",
	"author":        "a.author",
	"created_at":    "a.created_at",
	"votes":         "votes",
	"comment_count": "comment_count",
}

var orderDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// ParseListQuery validates the topic/sort_by/order query parameters,
// applying the created_at-descending default.
func ParseListQuery(topic, sortBy, order string) (*ListQuery, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "desc"
	}

	sortExpr, ok := sortColumns[sortBy]
	if !ok {
		return nil, apperror.NewValidationError("Invalid sort_by query", nil)
	}
	orderExpr, ok := orderDirections[order]
	if !ok {
		return nil, apperror.NewValidationError("Invalid order query", nil)
	}

	return &ListQuery{
		Topic:     topic,
		sortExpr:  sortExpr,
		orderExpr: orderExpr,
	}, nil
}

// OrderClause returns the ORDER BY fragment built from whitelisted parts.
func (q *ListQuery) OrderClause() string {
	return fmt.Sprintf("ORDER BY %s %s", q.sortExpr, q.orderExpr)
}
