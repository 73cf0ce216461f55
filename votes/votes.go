// Package votes holds the shared pieces of the vote ledger: the request
// shapes for casting and retracting votes and the strict JSON-level parsing
// of vote values. Parsing distinguishes a missing value, a non-integral
// value and a usable integer before any storage round trip happens, so an
// invalid cast never creates a ledger row.
//
// The ledger rows themselves live in article_votes and comment_votes, each
// keyed by (subject, username): one live vote per user per subject,
// overwritten on repeat casts. The upsert and recompute queries are owned by
// the articles and comments services, which run them in one transaction.
package votes

import (
	"encoding/json"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

// CastRequest is the body of a vote cast or retraction. The credential
// travels in the body field "token", per this API's transport convention.
type CastRequest struct {
	Token string          `json:"token"`
	Vote  json.RawMessage `json:"vote,omitempty"`
}

// IncVotesRequest is the body of the legacy direct-increment patch.
type IncVotesRequest struct {
	IncVotes json.RawMessage `json:"inc_votes,omitempty"`
}

// ParseVote validates a cast's vote value. Absent values and JSON null are
// rejected as missing; anything that is not a whole JSON number is an
// invalid datatype. Zero is a legitimate vote, not a retraction.
func ParseVote(raw json.RawMessage) (int, error) {
	value, present, err := parseWholeNumber(raw, "Invalid vote datatype")
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, apperror.NewValidationError("Missing vote", nil)
	}
	return value, nil
}

// ParseIncVotes validates a legacy patch's inc_votes value. An absent or
// zero value is the documented no-op outcome (304), not an error; a
// non-integral value is a 400.
func ParseIncVotes(raw json.RawMessage) (int, error) {
	value, present, err := parseWholeNumber(raw, "Invalid inc_votes datatype")
	if err != nil {
		return 0, err
	}
	if !present || value == 0 {
		return 0, apperror.NewUnchangedError("No changes requested")
	}
	return value, nil
}

// parseWholeNumber reports whether raw held a value at all and, if so,
// whether it was a whole JSON number.
func parseWholeNumber(raw json.RawMessage, badTypeMsg string) (int, bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false, nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, false, apperror.NewValidationError(badTypeMsg, err)
	}
	value, err := num.Int64()
	if err != nil {
		return 0, false, apperror.NewValidationError(badTypeMsg, err)
	}
	return int(value), true, nil
}
