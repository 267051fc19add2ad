package domain

// Message represents a single inbound text message to evaluate
type Message struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// MatchResult is the outcome of testing a message text for an Instagram link
type MatchResult struct {
	Matched bool   `json:"matched"`
	Link    string `json:"link,omitempty"`
}
