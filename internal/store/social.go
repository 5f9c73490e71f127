package store

import (
	"slices"

	"chatapp-client/internal/models"

	"github.com/google/uuid"
)

// Friends, pending requests, and blocked users are three disjoint lists: a
// user id never appears in more than one of them, and never twice in one.

// AddFriend adds a user to the friends list and withdraws any pending request
// from them. Adding an existing friend is a no-op, and a blocked user cannot
// be friended until they are unblocked.
func (s *Store) AddFriend(user models.User) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if indexByID(s.friends, user.ID) >= 0 || indexByID(s.blocked, user.ID) >= 0 {
		return
	}
	if i := indexByID(s.friendRequests, user.ID); i >= 0 {
		s.friendRequests = slices.Delete(s.friendRequests, i, i+1)
	}
	s.friends = append(s.friends, user)
}

func (s *Store) RemoveFriend(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if i := indexByID(s.friends, userID); i >= 0 {
		s.friends = slices.Delete(s.friends, i, i+1)
	}
}

// AddFriendRequest records an incoming request unless the sender is already a
// friend, blocked, or has an outstanding request.
func (s *Store) AddFriendRequest(user models.User) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if indexByID(s.friends, user.ID) >= 0 ||
		indexByID(s.blocked, user.ID) >= 0 ||
		indexByID(s.friendRequests, user.ID) >= 0 {
		return
	}
	s.friendRequests = append(s.friendRequests, user)
}

// BlockUser moves a friend (or a pending requester) to the blocked list in
// one step. Blocking an id the client knows nothing about is a no-op; there
// is no user record to carry over.
func (s *Store) BlockUser(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if indexByID(s.blocked, userID) >= 0 {
		return
	}

	var user models.User
	if i := indexByID(s.friends, userID); i >= 0 {
		user = s.friends[i]
		s.friends = slices.Delete(s.friends, i, i+1)
	} else if i := indexByID(s.friendRequests, userID); i >= 0 {
		user = s.friendRequests[i]
		s.friendRequests = slices.Delete(s.friendRequests, i, i+1)
	} else {
		return
	}
	s.blocked = append(s.blocked, user)
	s.sugar.Debugf("Blocked user [%s]", userID)
}

func (s *Store) UnblockUser(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if i := indexByID(s.blocked, userID); i >= 0 {
		s.blocked = slices.Delete(s.blocked, i, i+1)
	}
}

// AddServerMember adds a user to a server's member list and recomputes the
// denormalized member count. Unknown servers and existing members are no-ops.
func (s *Store) AddServerMember(serverID string, user models.User) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	srv := s.findServer(serverID)
	if srv == nil || indexByID(srv.Members, user.ID) >= 0 {
		return
	}
	srv.Members = append(srv.Members, user)
	srv.MemberCount = len(srv.Members)
}

// RemoveServerMember removes a user from a server's member list and
// recomputes the member count.
func (s *Store) RemoveServerMember(serverID, userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	srv := s.findServer(serverID)
	if srv == nil {
		return
	}
	if i := indexByID(srv.Members, userID); i >= 0 {
		srv.Members = slices.Delete(srv.Members, i, i+1)
		srv.MemberCount = len(srv.Members)
	}
}

// FindOrCreateDirectMessage returns the thread whose participant set matches,
// ignoring order and duplicates, creating it first if no thread exists. Two
// calls with permutations of the same set always land on the same thread.
func (s *Store) FindOrCreateDirectMessage(participantIDs []string) models.DirectMessage {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := models.ParticipantsKey(participantIDs)
	for _, dm := range s.dms {
		if models.ParticipantsKey(dm.Participants) == key {
			return dm
		}
	}

	dm := models.DirectMessage{
		ID:           uuid.NewString(),
		Participants: slices.Clone(participantIDs),
	}
	s.dms = append(s.dms, dm)
	s.sugar.Debugf("Created DM thread [%s] for %d participants", dm.ID, len(dm.Participants))
	return dm
}

func indexByID(users []models.User, id string) int {
	return slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
}
