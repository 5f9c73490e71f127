package store

import (
	"testing"
	"time"

	"chatapp-client/internal/models"

	"go.uber.org/zap"
)

var testEpoch = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func testUser(id string) models.User {
	return models.User{
		ID:          id,
		Username:    id + "_name",
		DisplayName: id,
		Status:      models.StatusOnline,
		JoinedAt:    testEpoch,
	}
}

func testSnapshot() *models.Snapshot {
	u1 := testUser("u1")
	u2 := testUser("u2")
	u3 := testUser("u3")

	snapshot := &models.Snapshot{
		CurrentUser: u1,
		Servers: []models.Server{
			{
				ID:          "s1",
				Name:        "First",
				OwnerID:     "u1",
				Members:     []models.User{u1, u2, u3},
				MemberCount: 3,
				Roles:       []models.Role{{ID: "r1", Name: "Admin", Color: "#ff0000"}},
				Categories: []models.Category{
					{
						ID:   "cat1",
						Name: "GENERAL",
						Channels: []models.Channel{
							{ID: "c1", Name: "general", Type: models.ChannelText, UnreadCount: 5},
							{ID: "c2", Name: "lounge", Type: models.ChannelVoice, Position: 1},
						},
					},
				},
			},
			{
				ID:          "s2",
				Name:        "Second",
				OwnerID:     "u2",
				Members:     []models.User{u2},
				MemberCount: 1,
				Categories: []models.Category{
					{
						ID:   "cat2",
						Name: "OTHER",
						Channels: []models.Channel{
							{ID: "c9", Name: "elsewhere", Type: models.ChannelText, UnreadCount: 2},
						},
					},
				},
			},
		},
		DirectMessages: []models.DirectMessage{
			{ID: "d1", Participants: []string{"u1", "u2"}, UnreadCount: 3},
		},
		Messages: map[models.ConversationID][]models.Message{
			models.ChannelConversation("c1"): {
				{
					ID:           "m1",
					Conversation: models.ChannelConversation("c1"),
					AuthorID:     "u2",
					Content:      "first",
					Timestamp:    testEpoch,
					Type:         models.MessageDefault,
				},
			},
		},
		Friends: []models.User{u2},
	}
	return snapshot
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	snapshot := testSnapshot()
	if err := snapshot.Validate(); err != nil {
		t.Fatalf("Test snapshot does not validate: %v", err)
	}
	return New(snapshot, zap.NewNop().Sugar())
}

func TestInitialSelection(t *testing.T) {
	s := newTestStore(t)

	if got := s.CurrentServerID(); got != "s1" {
		t.Errorf("Current server is [%s], expected [s1]", got)
	}
	if got := s.CurrentChannelID(); got != "c1" {
		t.Errorf("Current channel is [%s], expected first text channel [c1]", got)
	}
}

func TestSelectServerClearsDM(t *testing.T) {
	s := newTestStore(t)

	s.SelectDirectMessage("d1")
	if got := s.CurrentDMID(); got != "d1" {
		t.Fatalf("Current DM is [%s], expected [d1]", got)
	}
	if got := s.CurrentChannelID(); got != "" {
		t.Errorf("Selecting a DM should clear the channel, still [%s]", got)
	}

	s.SelectServer("s2")
	if got := s.CurrentDMID(); got != "" {
		t.Errorf("Selecting a server should clear the DM, still [%s]", got)
	}
}

func TestSelectServerUnknownIDFailsSoft(t *testing.T) {
	s := newTestStore(t)

	s.SelectServer("nope")
	if got := s.CurrentServerID(); got != "nope" {
		t.Errorf("Current server is [%s], expected the soft-accepted [nope]", got)
	}
	if _, ok := s.CurrentServer(); ok {
		t.Error("Unknown current server should project to nothing")
	}
}

func TestSelectChannelScopedToCurrentServer(t *testing.T) {
	tests := []struct {
		name      string
		channelID string
		want      string
	}{
		{
			name:      "channel of current server is selected",
			channelID: "c2",
			want:      "c2",
		},
		{
			name:      "channel of another server is rejected",
			channelID: "c9",
			want:      "c1",
		},
		{
			name:      "unknown channel is rejected",
			channelID: "missing",
			want:      "c1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			s.SelectChannel(tt.channelID)
			if got := s.CurrentChannelID(); got != tt.want {
				t.Errorf("Current channel is [%s], expected [%s]", got, tt.want)
			}
		})
	}
}

func TestSelectFriendsListSentinel(t *testing.T) {
	s := newTestStore(t)

	s.SelectDirectMessage(models.FriendsListID)
	if got := s.CurrentDMID(); got != models.FriendsListID {
		t.Errorf("Current DM is [%s], expected the friends sentinel", got)
	}
	conv, ok := s.ActiveConversation()
	if !ok || conv != models.DMConversation(models.FriendsListID) {
		t.Errorf("Active conversation is %v, expected the friends pseudo-thread", conv)
	}
	if msgs := s.Messages(conv); len(msgs) != 0 {
		t.Errorf("Friends pseudo-thread has %d messages, expected none", len(msgs))
	}
}

func TestMarkChannelRead(t *testing.T) {
	s := newTestStore(t)

	s.MarkChannelRead("c1")

	srv, ok := s.CurrentServer()
	if !ok {
		t.Fatal("Current server not found")
	}
	if got := srv.Categories[0].Channels[0].UnreadCount; got != 0 {
		t.Errorf("Unread count is %d after mark read, expected 0", got)
	}

	// DM counters live on a separate flow and must stay untouched.
	s.MarkChannelRead("d1")
	if got := s.DirectMessages()[0].UnreadCount; got != 3 {
		t.Errorf("DM unread count is %d, expected untouched 3", got)
	}
}

func TestMarkChannelReadThenUnreadTotalIsZero(t *testing.T) {
	s := newTestStore(t)

	s.SelectServer("s1")
	s.SelectChannel("c1")
	s.MarkChannelRead("c1")

	srv, ok := s.CurrentServer()
	if !ok {
		t.Fatal("Current server not found")
	}
	total := 0
	for _, cat := range srv.Categories {
		for _, ch := range cat.Channels {
			total += ch.UnreadCount
		}
	}
	if total != 0 {
		t.Errorf("Server unread total is %d after mark read, expected 0", total)
	}
}
