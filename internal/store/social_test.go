package store

import "testing"

func TestFindOrCreateDirectMessage(t *testing.T) {
	s := newTestStore(t)

	existing := s.FindOrCreateDirectMessage([]string{"u2", "u1"})
	if existing.ID != "d1" {
		t.Errorf("Found thread [%s], expected the seeded [d1] regardless of participant order", existing.ID)
	}

	created := s.FindOrCreateDirectMessage([]string{"u1", "u3"})
	if created.ID == "" || created.ID == "d1" {
		t.Fatalf("Created thread has id [%s], expected a fresh one", created.ID)
	}

	again := s.FindOrCreateDirectMessage([]string{"u3", "u1"})
	if again.ID != created.ID {
		t.Errorf("Second lookup returned [%s], expected the created [%s]", again.ID, created.ID)
	}

	if total := len(s.DirectMessages()); total != 2 {
		t.Errorf("Store holds %d threads, expected 2", total)
	}
}

func TestFindOrCreateGroupThread(t *testing.T) {
	s := newTestStore(t)

	group := s.FindOrCreateDirectMessage([]string{"u1", "u2", "u3"})
	pair := s.FindOrCreateDirectMessage([]string{"u1", "u2"})

	if group.ID == pair.ID {
		t.Error("Group thread collided with the 1:1 thread of a subset")
	}
}

func TestMemberCountStaysInLockstep(t *testing.T) {
	s := newTestStore(t)

	check := func(step string) {
		t.Helper()
		srv, ok := s.Server("s1")
		if !ok {
			t.Fatal("Server not found")
		}
		if srv.MemberCount != len(srv.Members) {
			t.Errorf("After %s: memberCount %d != %d members", step, srv.MemberCount, len(srv.Members))
		}
	}

	s.AddServerMember("s1", testUser("u4"))
	check("add")

	// Adding the same member twice must not inflate the roster.
	s.AddServerMember("s1", testUser("u4"))
	check("duplicate add")
	if srv, _ := s.Server("s1"); srv.MemberCount != 4 {
		t.Errorf("Member count is %d, expected 4", srv.MemberCount)
	}

	s.RemoveServerMember("s1", "u4")
	check("remove")

	s.RemoveServerMember("s1", "missing")
	check("remove of non-member")

	s.AddServerMember("missing", testUser("u5"))
	check("add to unknown server")
}

func TestAddFriendWithdrawsPendingRequest(t *testing.T) {
	s := newTestStore(t)
	u4 := testUser("u4")

	s.AddFriendRequest(u4)
	if reqs := s.FriendRequests(); len(reqs) != 1 {
		t.Fatalf("Have %d pending requests, expected 1", len(reqs))
	}

	s.AddFriend(u4)
	if reqs := s.FriendRequests(); len(reqs) != 0 {
		t.Errorf("Request survived acceptance, %d pending", len(reqs))
	}
	if friends := s.Friends(); len(friends) != 2 {
		t.Errorf("Have %d friends, expected 2", len(friends))
	}

	// Accepting twice must not duplicate the entry.
	s.AddFriend(u4)
	if friends := s.Friends(); len(friends) != 2 {
		t.Errorf("Duplicate accept left %d friends, expected 2", len(friends))
	}
}

func TestBlockFriendMovesThemAtomically(t *testing.T) {
	s := newTestStore(t)

	s.BlockUser("u2")

	if i := indexByID(s.Friends(), "u2"); i >= 0 {
		t.Error("Blocked user still in friends")
	}
	if i := indexByID(s.BlockedUsers(), "u2"); i < 0 {
		t.Error("Blocked user missing from blocked list")
	}

	// A blocked id cannot be re-friended until unblocked.
	s.AddFriend(testUser("u2"))
	if i := indexByID(s.Friends(), "u2"); i >= 0 {
		t.Error("Blocked user slipped back into friends")
	}

	s.UnblockUser("u2")
	if len(s.BlockedUsers()) != 0 {
		t.Error("Blocked list not empty after unblock")
	}
	s.AddFriend(testUser("u2"))
	if i := indexByID(s.Friends(), "u2"); i < 0 {
		t.Error("Unblocked user could not be friended again")
	}
}

func TestBlockUnknownUserIsNoOp(t *testing.T) {
	s := newTestStore(t)

	s.BlockUser("stranger")

	if len(s.BlockedUsers()) != 0 {
		t.Errorf("Blocked list has %d entries, expected none", len(s.BlockedUsers()))
	}
}

func TestBlockPendingRequester(t *testing.T) {
	s := newTestStore(t)
	u4 := testUser("u4")

	s.AddFriendRequest(u4)
	s.BlockUser("u4")

	if len(s.FriendRequests()) != 0 {
		t.Error("Blocking a requester should withdraw the request")
	}
	if i := indexByID(s.BlockedUsers(), "u4"); i < 0 {
		t.Error("Requester missing from blocked list")
	}
}

func TestRemoveFriend(t *testing.T) {
	s := newTestStore(t)

	s.RemoveFriend("u2")
	if len(s.Friends()) != 0 {
		t.Error("Friend survived removal")
	}

	s.RemoveFriend("u2")
	if len(s.Friends()) != 0 {
		t.Error("Double removal changed the friends list")
	}
}
