package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

func TestParseListQueryDefaults(t *testing.T) {
	q, err := ParseListQuery("", "", "")
	require.NoError(t, err)
	assert.Empty(t, q.Topic)
	assert.Equal(t, "ORDER BY a.created_at DESC", q.OrderClause())
}

func TestParseListQueryWhitelistedColumns(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"article_id", "ORDER BY a.article_id DESC"},
		{"title", "ORDER BY a.title DESC"},
		{"topic", "ORDER BY a.topic DESC"},
		{"author", "ORDER BY a.author DESC"},
		{"created_at", "ORDER BY a.created_at DESC"},
		{"votes", "ORDER BY votes DESC"},
		{"comment_count", "ORDER BY comment_count DESC"},
	}

	for _, tt := range tests {
		q, err := ParseListQuery("", tt.sortBy, "")
		require.NoError(t, err, "sort_by=%s", tt.sortBy)
		assert.Equal(t, tt.want, q.OrderClause())
	}
}

func TestParseListQueryAscending(t *testing.T) {
	q, err := ParseListQuery("cats", "votes", "asc")
	require.NoError(t, err)
	assert.Equal(t, "cats", q.Topic)
	assert.Equal(t, "ORDER BY votes ASC", q.OrderClause())
}

func TestParseListQueryRejectsUnknownColumn(t *testing.T) {
	for _, sortBy := range []string{"body", "password", "created_at; DROP TABLE articles"} {
		_, err := ParseListQuery("", sortBy, "")
		require.Error(t, err, "sort_by=%s", sortBy)
		assert.True(t, apperror.IsValidationError(err))

		ae, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid sort_by query", ae.Message)
	}
}

func TestParseListQueryRejectsUnknownOrder(t *testing.T) {
	for _, order := range []string{"up", "ASC; --", "descending"} {
		_, err := ParseListQuery("", "", order)
		require.Error(t, err, "order=%s", order)

		ae, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid order query", ae.Message)
	}
}
