package votes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

func TestParseVote(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantMsg string
	}{
		{name: "positive vote", raw: `5`, want: 5},
		{name: "negative vote", raw: `-3`, want: -3},
		{name: "zero is a real vote", raw: `0`, want: 0},
		{name: "absent", raw: ``, wantMsg: "Missing vote"},
		{name: "null", raw: `null`, wantMsg: "Missing vote"},
		{name: "string", raw: `"all"`, wantMsg: "Invalid vote datatype"},
		{name: "fractional", raw: `1.5`, wantMsg: "Invalid vote datatype"},
		{name: "boolean", raw: `true`, wantMsg: "Invalid vote datatype"},
		{name: "object", raw: `{"value":1}`, wantMsg: "Invalid vote datatype"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVote(json.RawMessage(tt.raw))
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.True(t, apperror.IsValidationError(err))
				ae, ok := apperror.FromError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantMsg, ae.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIncVotes(t *testing.T) {
	got, err := ParseIncVotes(json.RawMessage(`3`))
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = ParseIncVotes(json.RawMessage(`-10`))
	require.NoError(t, err)
	assert.Equal(t, -10, got)
}

func TestParseIncVotesNoOp(t *testing.T) {
	// Absent and zero are the documented no-change outcomes, not errors.
	for _, raw := range []string{``, `null`, `0`} {
		_, err := ParseIncVotes(json.RawMessage(raw))
		require.Error(t, err)
		assert.True(t, apperror.IsUnchanged(err), "raw=%q", raw)
	}
}

func TestParseIncVotesInvalidDatatype(t *testing.T) {
	for _, raw := range []string{`"ten"`, `2.5`, `[1]`} {
		_, err := ParseIncVotes(json.RawMessage(raw))
		require.Error(t, err)
		assert.True(t, apperror.IsValidationError(err), "raw=%q", raw)

		ae, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid inc_votes datatype", ae.Message)
	}
}
