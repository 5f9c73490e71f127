package store

import "chatapp-client/internal/models"

// SetVoiceState joins userID to a voice channel. A user holds at most one
// voice state, so joining replaces any prior state outright, mute and deafen
// flags included.
func (s *Store) SetVoiceState(userID, channelID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.voice[userID] = models.VoiceState{UserID: userID, ChannelID: channelID}
	s.sugar.Debugf("User [%s] joined voice channel [%s]", userID, channelID)
}

func (s *Store) ClearVoiceState(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.voice, userID)
}

// ToggleMute flips the mute flag on the user's voice state. Without an
// active voice state there is nothing to mute, so the call is a no-op.
func (s *Store) ToggleMute(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if vs, ok := s.voice[userID]; ok {
		vs.Muted = !vs.Muted
		s.voice[userID] = vs
	}
}

// ToggleDeafen flips the deafen flag on the user's voice state, mirroring
// ToggleMute.
func (s *Store) ToggleDeafen(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if vs, ok := s.voice[userID]; ok {
		vs.Deafened = !vs.Deafened
		s.voice[userID] = vs
	}
}
