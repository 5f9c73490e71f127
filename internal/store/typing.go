package store

import (
	"slices"

	"chatapp-client/internal/models"
)

// SetTyping records userID as typing in a conversation. Repeated calls are
// idempotent; insertion order is kept so the typing indicator reads stably.
// The store owns no timers: whoever calls SetTyping schedules the matching
// ClearTyping.
func (s *Store) SetTyping(conv models.ConversationID, userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if slices.Contains(s.typing[conv], userID) {
		return
	}
	s.typing[conv] = append(s.typing[conv], userID)
}

// ClearTyping removes userID from a conversation's typing set. Clearing a
// user who is not typing is a no-op.
func (s *Store) ClearTyping(conv models.ConversationID, userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := s.typing[conv]
	if i := slices.Index(ids, userID); i >= 0 {
		s.typing[conv] = slices.Delete(ids, i, i+1)
		if len(s.typing[conv]) == 0 {
			delete(s.typing, conv)
		}
	}
}
