package store

import (
	"testing"

	"chatapp-client/internal/models"
)

func TestSetTypingIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	conv := models.ChannelConversation("c1")

	s.SetTyping(conv, "u2")
	s.SetTyping(conv, "u2")

	ids := s.TypingUserIDs(conv)
	if len(ids) != 1 || ids[0] != "u2" {
		t.Errorf("Typing set is %v, expected exactly [u2]", ids)
	}
}

func TestTypingKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	conv := models.ChannelConversation("c1")

	s.SetTyping(conv, "u3")
	s.SetTyping(conv, "u2")
	s.SetTyping(conv, "u3")

	ids := s.TypingUserIDs(conv)
	if len(ids) != 2 || ids[0] != "u3" || ids[1] != "u2" {
		t.Errorf("Typing set is %v, expected [u3 u2]", ids)
	}
}

func TestClearTyping(t *testing.T) {
	s := newTestStore(t)
	conv := models.ChannelConversation("c1")

	s.SetTyping(conv, "u2")

	// Clearing an absent user leaves the set unchanged.
	s.ClearTyping(conv, "u3")
	if ids := s.TypingUserIDs(conv); len(ids) != 1 {
		t.Errorf("Typing set is %v after clearing an absent user, expected [u2]", ids)
	}

	s.ClearTyping(conv, "u2")
	if ids := s.TypingUserIDs(conv); len(ids) != 0 {
		t.Errorf("Typing set is %v after clearing, expected empty", ids)
	}

	// Clearing on an empty conversation is a no-op.
	s.ClearTyping(models.DMConversation("d1"), "u2")
}

func TestTypingSetsAreScopedPerConversation(t *testing.T) {
	s := newTestStore(t)

	s.SetTyping(models.ChannelConversation("c1"), "u2")

	if ids := s.TypingUserIDs(models.DMConversation("d1")); len(ids) != 0 {
		t.Errorf("DM typing set is %v, expected empty", ids)
	}
	// A channel and a DM with a colliding raw id never share a typing set.
	if ids := s.TypingUserIDs(models.DMConversation("c1")); len(ids) != 0 {
		t.Errorf("Typing set leaked across conversation kinds: %v", ids)
	}
}
