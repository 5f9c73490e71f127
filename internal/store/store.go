// Package store holds the client's single authoritative conversation state:
// servers, channels, direct message threads, message logs, typing and voice
// presence, and the friends lists. All mutation goes through Store methods;
// every method is total and runs as one critical section.
package store

import (
	"slices"
	"strings"
	"sync"

	"chatapp-client/internal/models"

	"go.uber.org/zap"
)

type Store struct {
	mutex sync.Mutex
	sugar *zap.SugaredLogger

	currentUser models.User
	servers     []models.Server
	dms         []models.DirectMessage
	messages    map[models.ConversationID][]models.Message

	friends        []models.User
	friendRequests []models.User
	blocked        []models.User

	voice  map[string]models.VoiceState
	typing map[models.ConversationID][]string

	currentServerID  string
	currentChannelID string
	currentDMID      string
}

// New seeds a store from a snapshot. The snapshot is expected to have passed
// models.Snapshot.Validate; the store trusts it. Initial selection is the
// first server and its first text channel, when present.
func New(snapshot *models.Snapshot, sugar *zap.SugaredLogger) *Store {
	s := &Store{
		sugar:       sugar,
		currentUser: snapshot.CurrentUser,
		servers:     snapshot.Servers,
		dms:         snapshot.DirectMessages,
		messages:    snapshot.Messages,
		friends:     snapshot.Friends,
		voice:       make(map[string]models.VoiceState),
		typing:      make(map[models.ConversationID][]string),
	}
	if s.messages == nil {
		s.messages = make(map[models.ConversationID][]models.Message)
	}
	for _, vs := range snapshot.VoiceStates {
		s.voice[vs.UserID] = vs
	}

	if len(s.servers) > 0 {
		s.currentServerID = s.servers[0].ID
		if ch := firstTextChannel(&s.servers[0]); ch != "" {
			s.currentChannelID = ch
		}
	}
	return s
}

func firstTextChannel(srv *models.Server) string {
	for _, cat := range srv.Categories {
		for _, ch := range cat.Channels {
			if ch.Type == models.ChannelText {
				return ch.ID
			}
		}
	}
	return ""
}

// Read accessors. Returned slices alias store internals and must be treated
// as read-only by callers.

func (s *Store) CurrentUser() models.User {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.currentUser
}

func (s *Store) Servers() []models.Server {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.servers
}

func (s *Store) Server(serverID string) (models.Server, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if srv := s.findServer(serverID); srv != nil {
		return *srv, true
	}
	return models.Server{}, false
}

func (s *Store) CurrentServer() (models.Server, bool) {
	return s.Server(s.CurrentServerID())
}

func (s *Store) CurrentServerID() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.currentServerID
}

func (s *Store) CurrentChannelID() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.currentChannelID
}

func (s *Store) CurrentDMID() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.currentDMID
}

// ActiveConversation resolves the conversation the client is looking at:
// the current channel if one is selected, otherwise the current DM thread.
func (s *Store) ActiveConversation() (models.ConversationID, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	switch {
	case s.currentChannelID != "":
		return models.ChannelConversation(s.currentChannelID), true
	case s.currentDMID != "":
		return models.DMConversation(s.currentDMID), true
	}
	return models.ConversationID{}, false
}

func (s *Store) Messages(conv models.ConversationID) []models.Message {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.messages[conv]
}

func (s *Store) DirectMessages() []models.DirectMessage {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.dms
}

func (s *Store) Friends() []models.User {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.friends
}

func (s *Store) FriendRequests() []models.User {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.friendRequests
}

func (s *Store) BlockedUsers() []models.User {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.blocked
}

func (s *Store) TypingUserIDs(conv models.ConversationID) []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.typing[conv]
}

func (s *Store) VoiceState(userID string) (models.VoiceState, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	vs, ok := s.voice[userID]
	return vs, ok
}

// VoiceStates returns all active voice states ordered by user id, so that
// repeated reads render a stable roster.
func (s *Store) VoiceStates() []models.VoiceState {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	states := make([]models.VoiceState, 0, len(s.voice))
	for _, vs := range s.voice {
		states = append(states, vs)
	}
	slices.SortFunc(states, func(a, b models.VoiceState) int {
		return strings.Compare(a.UserID, b.UserID)
	})
	return states
}

func (s *Store) SetCurrentUser(user models.User) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.currentUser = user
}

// Lookup helpers. Callers hold s.mutex.

func (s *Store) findServer(serverID string) *models.Server {
	for i := range s.servers {
		if s.servers[i].ID == serverID {
			return &s.servers[i]
		}
	}
	return nil
}

func (s *Store) findChannel(srv *models.Server, channelID string) *models.Channel {
	for i := range srv.Categories {
		channels := srv.Categories[i].Channels
		for j := range channels {
			if channels[j].ID == channelID {
				return &channels[j]
			}
		}
	}
	return nil
}

func (s *Store) findMessage(messageID string) *models.Message {
	for conv := range s.messages {
		log := s.messages[conv]
		for i := range log {
			if log[i].ID == messageID {
				return &log[i]
			}
		}
	}
	return nil
}
