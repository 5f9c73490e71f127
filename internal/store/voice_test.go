package store

import "testing"

func TestVoiceStateSinglePerUser(t *testing.T) {
	s := newTestStore(t)

	s.SetVoiceState("u1", "c2")
	s.SetVoiceState("u1", "c9")

	states := s.VoiceStates()
	if len(states) != 1 {
		t.Fatalf("User has %d voice states, expected 1", len(states))
	}
	if states[0].ChannelID != "c9" {
		t.Errorf("Voice state points at [%s], expected the later join [c9]", states[0].ChannelID)
	}
}

func TestRejoinResetsMuteAndDeafen(t *testing.T) {
	s := newTestStore(t)

	s.SetVoiceState("u1", "c2")
	s.ToggleMute("u1")
	s.ToggleDeafen("u1")

	vs, ok := s.VoiceState("u1")
	if !ok {
		t.Fatal("Voice state not found")
	}
	if !vs.Muted || !vs.Deafened {
		t.Fatalf("Voice state is muted=%v deafened=%v, expected both true", vs.Muted, vs.Deafened)
	}

	s.SetVoiceState("u1", "c9")
	vs, _ = s.VoiceState("u1")
	if vs.Muted || vs.Deafened {
		t.Errorf("Rejoining carried over muted=%v deafened=%v, expected a fresh state", vs.Muted, vs.Deafened)
	}
}

func TestToggleMuteWithoutVoiceStateIsNoOp(t *testing.T) {
	s := newTestStore(t)

	s.ToggleMute("u1")
	s.ToggleDeafen("u1")

	if _, ok := s.VoiceState("u1"); ok {
		t.Error("Toggling mute without a voice state should not create one")
	}
}

func TestClearVoiceState(t *testing.T) {
	s := newTestStore(t)

	s.SetVoiceState("u1", "c2")
	s.ClearVoiceState("u1")

	if _, ok := s.VoiceState("u1"); ok {
		t.Error("Voice state survived ClearVoiceState")
	}

	// Clearing a user who never joined is a no-op.
	s.ClearVoiceState("u2")
}
