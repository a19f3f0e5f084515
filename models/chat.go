package models

import "time"

// ChatMessage is one message in a per-topic discussion thread.
type ChatMessage struct {
	ID     string    `json:"id"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
	Ts     time.Time `json:"ts"`
}
