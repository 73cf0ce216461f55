// Package topics manages the topic taxonomy articles are filed under.
// Topics are immutable once created: there is no update or delete path.
package topics

// Topic is a category articles belong to, keyed by slug.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// NewTopicRequest is the creation payload.
type NewTopicRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// TopicEnvelope wraps a single topic response.
type TopicEnvelope struct {
	Topic *Topic `json:"topic"`
}

// TopicsEnvelope wraps a topic list response.
type TopicsEnvelope struct {
	Topics []Topic `json:"topics"`
}
