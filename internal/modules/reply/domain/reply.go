package domain

// Reply is an outbound message produced by the reply policy
type Reply struct {
	Text string `json:"text"`
}
