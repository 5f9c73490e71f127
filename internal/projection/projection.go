// Package projection derives view-ready slices from the store. Everything
// here is a pure read; nothing mutates store state.
package projection

import (
	"slices"
	"time"

	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

// AuthorHeaderWindow is how far apart two consecutive messages from the same
// author may be before the second one gets a fresh author header.
const AuthorHeaderWindow = 5 * time.Minute

// ActiveMessages returns the log of the active conversation, or nothing when
// neither a channel nor a DM is selected.
func ActiveMessages(s *store.Store) []models.Message {
	conv, ok := s.ActiveConversation()
	if !ok {
		return nil
	}
	return s.Messages(conv)
}

// ResolveAuthor looks up a message's author inside the conversation's
// visibility scope: the member roster of the owning server for channel
// messages, friends plus the current user for DM messages. An author outside
// the scope resolves to nothing, and callers drop the message from rendering.
func ResolveAuthor(s *store.Store, msg models.Message) (models.User, bool) {
	switch msg.Conversation.Kind {
	case models.ConversationChannel:
		servers := s.Servers()
		for i := range servers {
			if !serverHasChannel(&servers[i], msg.Conversation.ID) {
				continue
			}
			return userByID(servers[i].Members, msg.AuthorID)
		}
	case models.ConversationDM:
		if current := s.CurrentUser(); current.ID == msg.AuthorID {
			return current, true
		}
		return userByID(s.Friends(), msg.AuthorID)
	}
	return models.User{}, false
}

// ShowAuthorHeader reports whether a message opens a new author block: the
// first message of a log, a change of author, or a gap larger than
// AuthorHeaderWindow since the previous message.
func ShowAuthorHeader(prev *models.Message, cur models.Message) bool {
	if prev == nil {
		return true
	}
	if prev.AuthorID != cur.AuthorID {
		return true
	}
	return cur.Timestamp.Sub(prev.Timestamp) > AuthorHeaderWindow
}

// ServerUnreadTotal sums the unread counters of every channel on a server,
// the number worn by the server's badge in the rail.
func ServerUnreadTotal(srv models.Server) int {
	total := 0
	for _, cat := range srv.Categories {
		for _, ch := range cat.Channels {
			total += ch.UnreadCount
		}
	}
	return total
}

// RoleGroup is one section of the members panel: a role with its members
// split by presence. Members who are online, idle, or dnd count as present.
type RoleGroup struct {
	Role    models.Role
	Online  []models.User
	Offline []models.User
}

// DefaultRole is the pseudo-role members without any role fall under.
var DefaultRole = models.Role{Name: "Members", Color: "#99aab5"}

// MembersByRole groups a server's members by their primary role, keeping the
// server's role order and appending the pseudo-group for roleless members
// last. Within a group, members keep roster order.
func MembersByRole(srv models.Server) []RoleGroup {
	groups := make([]RoleGroup, 0, len(srv.Roles)+1)
	index := make(map[string]int, len(srv.Roles))
	for _, role := range srv.Roles {
		index[role.ID] = len(groups)
		groups = append(groups, RoleGroup{Role: role})
	}
	fallback := len(groups)
	groups = append(groups, RoleGroup{Role: DefaultRole})

	for _, member := range srv.Members {
		at := fallback
		if len(member.RoleIDs) > 0 {
			if i, ok := index[member.RoleIDs[0]]; ok {
				at = i
			}
		}
		if member.Status == models.StatusOffline {
			groups[at].Offline = append(groups[at].Offline, member)
		} else {
			groups[at].Online = append(groups[at].Online, member)
		}
	}

	return slices.DeleteFunc(groups, func(g RoleGroup) bool {
		return len(g.Online) == 0 && len(g.Offline) == 0
	})
}

// TypingUsers resolves a conversation's typing set to user records, in
// typing order, capped at three. Ids that resolve nowhere are dropped.
func TypingUsers(s *store.Store, conv models.ConversationID) []models.User {
	const maxShown = 3

	var users []models.User
	for _, id := range s.TypingUserIDs(conv) {
		if user, ok := resolveAnywhere(s, id); ok {
			users = append(users, user)
			if len(users) == maxShown {
				break
			}
		}
	}
	return users
}

// VoiceRoster lists the users currently joined to a voice channel, resolved
// to user records.
func VoiceRoster(s *store.Store, channelID string) []models.User {
	var users []models.User
	for _, vs := range s.VoiceStates() {
		if vs.ChannelID != channelID {
			continue
		}
		if user, ok := resolveAnywhere(s, vs.UserID); ok {
			users = append(users, user)
		}
	}
	return users
}

// resolveAnywhere looks a user up by id in the widest client scope: the
// current user, then the current server's roster, then friends.
func resolveAnywhere(s *store.Store, userID string) (models.User, bool) {
	if current := s.CurrentUser(); current.ID == userID {
		return current, true
	}
	if srv, ok := s.CurrentServer(); ok {
		if user, ok := userByID(srv.Members, userID); ok {
			return user, true
		}
	}
	return userByID(s.Friends(), userID)
}

func userByID(users []models.User, id string) (models.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func serverHasChannel(srv *models.Server, channelID string) bool {
	for _, cat := range srv.Categories {
		for _, ch := range cat.Channels {
			if ch.ID == channelID {
				return true
			}
		}
	}
	return false
}
