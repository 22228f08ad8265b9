// Package chat implements the dashboard's local chat session: panel
// visibility, an append-only transcript, and the in-progress draft. There is
// no network side; the transcript only ever holds what the user sent.
package chat

import (
	"strings"

	"github.com/google/uuid"
)

// Greeting is the static opening line rendered above the transcript. It is
// never stored in the transcript and never counts as a sent message.
const Greeting = "Hello! 👋 What can I help you with today?"

// Session holds chat state for one dashboard mount. Visibility and transcript
// are orthogonal: closing the panel preserves transcript and draft.
type Session struct {
	id         uuid.UUID
	isOpen     bool
	transcript []string
	draft      string
}

// NewSession returns a closed session with an empty transcript.
func NewSession() *Session {
	return &Session{id: uuid.New()}
}

// ID identifies this session in logs and the panel header.
func (s *Session) ID() uuid.UUID { return s.id }

// Open shows the panel. Idempotent.
func (s *Session) Open() { s.isOpen = true }

// Close hides the panel. Idempotent; transcript and draft are untouched.
func (s *Session) Close() { s.isOpen = false }

// IsOpen reports panel visibility.
func (s *Session) IsOpen() bool { return s.isOpen }

// SetDraft replaces the draft unconditionally, empty string included.
func (s *Session) SetDraft(text string) { s.draft = text }

// Draft returns the in-progress input buffer.
func (s *Session) Draft() string { return s.draft }

// Send appends the draft to the transcript and resets the draft, reporting
// whether a message was sent. A draft that trims to empty is a silent no-op:
// no transition, no error. The untrimmed original is what gets appended.
func (s *Session) Send() bool {
	if strings.TrimSpace(s.draft) == "" {
		return false
	}
	s.transcript = append(s.transcript, s.draft)
	s.draft = ""
	return true
}

// Clear empties the transcript. Visibility and draft are unaffected.
func (s *Session) Clear() { s.transcript = nil }

// Transcript returns sent messages in chronological order. Callers must not
// mutate the returned slice.
func (s *Session) Transcript() []string { return s.transcript }
