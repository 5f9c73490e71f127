package store

import (
	"slices"

	"chatapp-client/internal/models"
)

// PostMessage appends a fully-formed message to its conversation's log.
// Arrival order is preserved; the store never reorders by timestamp and does
// not deduplicate ids, so callers are expected to use a unique, time-ordered
// id scheme.
func (s *Store) PostMessage(msg models.Message) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.messages[msg.Conversation] = append(s.messages[msg.Conversation], msg)
	s.sugar.Debugf("Posted message [%s] to %s", msg.ID, msg.Conversation)
}

// ToggleReaction adds userID to the emoji's reactor set, or removes them if
// they already reacted. The count is recomputed from the set on every change,
// and an entry whose set drains empty is dropped from the message.
func (s *Store) ToggleReaction(messageID, emoji, userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	msg := s.findMessage(messageID)
	if msg == nil {
		return
	}

	for i := range msg.Reactions {
		r := &msg.Reactions[i]
		if r.Emoji != emoji {
			continue
		}
		if j := slices.Index(r.Users, userID); j >= 0 {
			r.Users = slices.Delete(r.Users, j, j+1)
			if len(r.Users) == 0 {
				msg.Reactions = slices.Delete(msg.Reactions, i, i+1)
				return
			}
		} else {
			r.Users = append(r.Users, userID)
		}
		r.Count = len(r.Users)
		return
	}

	msg.Reactions = append(msg.Reactions, models.Reaction{
		Emoji: emoji,
		Count: 1,
		Users: []string{userID},
	})
}

// TogglePin flips the pinned flag on the message with the given id, wherever
// its log lives. Message ids are unique across all conversations.
func (s *Store) TogglePin(messageID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if msg := s.findMessage(messageID); msg != nil {
		msg.Pinned = !msg.Pinned
	}
}
