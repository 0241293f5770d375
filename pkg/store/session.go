package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"echosee-be/pkg/order"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one transcript entry. Immutable once appended; slice order is
// display order.
type Message struct {
	Id        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	IsReceipt bool      `json:"is_receipt"`
	CreatedAt time.Time `json:"created_at"`
}

// Session owns one visitor conversation: the transcript, the captured order
// state and the current script step. It lives in memory only and is dropped
// when the widget closes or the cache TTL expires.
//
// The busy flag serializes gateway calls: a submission while another is in
// flight is rejected, never queued. The mutex guards the data fields and is
// held only for short reads/writes, not across the network call.
type Session struct {
	Id        uuid.UUID
	CreatedAt time.Time

	busy atomic.Bool

	mu       sync.RWMutex
	messages []Message
	order    order.State
	step     order.Step
}

func NewSession() *Session {
	return &Session{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
	}
}

// TryAcquire marks the session busy. It returns false when a previous
// submission has not resolved yet.
func (s *Session) TryAcquire() bool {
	return s.busy.CompareAndSwap(false, true)
}

func (s *Session) Release() {
	s.busy.Store(false)
}

func (s *Session) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// History returns a copy of the transcript in insertion order.
func (s *Session) History() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

func (s *Session) Order() order.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order
}

func (s *Session) SetOrder(state order.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = state
}

func (s *Session) Step() order.Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

func (s *Session) SetStep(step order.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = step
}

// NewMessage builds a transcript entry with a fresh id.
func NewMessage(sender, text string, isReceipt bool) Message {
	return Message{
		Id:        uuid.New(),
		Text:      text,
		Sender:    sender,
		IsReceipt: isReceipt,
		CreatedAt: time.Now(),
	}
}
