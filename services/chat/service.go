// Package chat keeps per-topic discussion threads in memory. Messages do
// not survive a restart; the threads exist to back the live discussion
// panels, not as a durable record.
package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cineai/models"
)

var ErrEmptyMessage = errors.New("message text is empty")

const defaultAuthor = "Guest"

type Service struct {
	mu      sync.Mutex
	threads map[string][]models.ChatMessage
}

func NewService() *Service {
	return &Service{threads: make(map[string][]models.ChatMessage)}
}

// Post appends a message to a topic's thread and returns the stored
// message. A blank author becomes "Guest"; blank text is rejected.
func (s *Service) Post(topic, author, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = defaultAuthor
	}

	msg := models.ChatMessage{
		ID:     uuid.NewString(),
		Author: author,
		Text:   text,
		Ts:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.threads[topic] = append(s.threads[topic], msg)
	s.mu.Unlock()
	return msg, nil
}

// Messages returns a copy of a topic's thread in post order. An unknown
// topic yields an empty slice.
func (s *Service) Messages(topic string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	thread := s.threads[topic]
	out := make([]models.ChatMessage, len(thread))
	copy(out, thread)
	return out
}
