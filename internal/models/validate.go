package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the snapshot against the shape tags and the cross-reference
// invariants the store relies on. A snapshot that fails here must not be
// loaded.
func (s *Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}

	// One id space for every entity the producer fabricates. Users are
	// excluded: the same user legitimately appears in several member lists.
	ids := make(map[string]string)
	claim := func(id, kind string) error {
		if prev, taken := ids[id]; taken {
			return fmt.Errorf("id %q used by both %s and %s", id, prev, kind)
		}
		ids[id] = kind
		return nil
	}

	channels := make(map[string]*Server)
	for i := range s.Servers {
		srv := &s.Servers[i]
		if err := claim(srv.ID, "server"); err != nil {
			return err
		}
		if err := validateServer(srv, claim, channels); err != nil {
			return fmt.Errorf("server %q: %w", srv.Name, err)
		}
	}

	dms := make(map[string]*DirectMessage)
	participantSets := make(map[string]string)
	for i := range s.DirectMessages {
		dm := &s.DirectMessages[i]
		if err := claim(dm.ID, "dm"); err != nil {
			return err
		}
		dms[dm.ID] = dm

		key := ParticipantsKey(dm.Participants)
		if other, dup := participantSets[key]; dup {
			return fmt.Errorf("dm threads %q and %q share a participant set", other, dm.ID)
		}
		participantSets[key] = dm.ID
	}

	for conv, log := range s.Messages {
		if err := validateLog(conv, log, claim, channels, dms); err != nil {
			return err
		}
	}

	inVoice := make(map[string]bool)
	for _, vs := range s.VoiceStates {
		if inVoice[vs.UserID] {
			return fmt.Errorf("user %q holds more than one voice state", vs.UserID)
		}
		inVoice[vs.UserID] = true
	}
	return nil
}

func validateServer(srv *Server, claim func(id, kind string) error, channels map[string]*Server) error {
	roles := make(map[string]bool, len(srv.Roles))
	for _, role := range srv.Roles {
		if err := claim(role.ID, "role"); err != nil {
			return err
		}
		roles[role.ID] = true
	}

	if srv.MemberCount != len(srv.Members) {
		return fmt.Errorf("memberCount %d != %d members", srv.MemberCount, len(srv.Members))
	}
	memberIDs := make(map[string]bool, len(srv.Members))
	for _, member := range srv.Members {
		if memberIDs[member.ID] {
			return fmt.Errorf("member %q listed twice", member.ID)
		}
		memberIDs[member.ID] = true
		for _, roleID := range member.RoleIDs {
			if !roles[roleID] {
				return fmt.Errorf("member %q references role %q not owned by this server", member.ID, roleID)
			}
		}
	}
	if !memberIDs[srv.OwnerID] {
		return fmt.Errorf("owner %q is not a member", srv.OwnerID)
	}

	for i := range srv.Categories {
		cat := &srv.Categories[i]
		if err := claim(cat.ID, "category"); err != nil {
			return err
		}
		for _, ch := range cat.Channels {
			if err := claim(ch.ID, "channel"); err != nil {
				return err
			}
			channels[ch.ID] = srv
		}
	}
	return nil
}

func validateLog(conv ConversationID, log []Message, claim func(id, kind string) error, channels map[string]*Server, dms map[string]*DirectMessage) error {
	var members map[string]bool
	switch conv.Kind {
	case ConversationChannel:
		srv, ok := channels[conv.ID]
		if !ok {
			return fmt.Errorf("message log for unknown channel %q", conv.ID)
		}
		members = make(map[string]bool, len(srv.Members))
		for _, m := range srv.Members {
			members[m.ID] = true
		}
	case ConversationDM:
		dm, ok := dms[conv.ID]
		if !ok {
			return fmt.Errorf("message log for unknown dm thread %q", conv.ID)
		}
		members = make(map[string]bool, len(dm.Participants))
		for _, id := range dm.Participants {
			members[id] = true
		}
	default:
		return fmt.Errorf("message log keyed by malformed conversation %q", conv)
	}

	for i, msg := range log {
		if err := claim(msg.ID, "message"); err != nil {
			return err
		}
		if msg.Conversation != conv {
			return fmt.Errorf("message %q filed under %q but addressed to %q", msg.ID, conv, msg.Conversation)
		}
		if !members[msg.AuthorID] {
			return fmt.Errorf("message %q author %q is outside the conversation's scope", msg.ID, msg.AuthorID)
		}
		if i > 0 && msg.Timestamp.Before(log[i-1].Timestamp) {
			return fmt.Errorf("message %q breaks timestamp order in %q", msg.ID, conv)
		}
		if err := validateReactions(&msg); err != nil {
			return fmt.Errorf("message %q: %w", msg.ID, err)
		}
	}
	return nil
}

func validateReactions(msg *Message) error {
	emojis := make(map[string]bool, len(msg.Reactions))
	for _, r := range msg.Reactions {
		if emojis[r.Emoji] {
			return fmt.Errorf("duplicate reaction entry for %s", r.Emoji)
		}
		emojis[r.Emoji] = true
		if r.Count != len(r.Users) {
			return fmt.Errorf("reaction %s count %d != %d users", r.Emoji, r.Count, len(r.Users))
		}
		seen := make(map[string]bool, len(r.Users))
		for _, id := range r.Users {
			if seen[id] {
				return fmt.Errorf("reaction %s lists user %q twice", r.Emoji, id)
			}
			seen[id] = true
		}
	}
	return nil
}

// ParticipantsKey is the canonical, order-independent identity of a DM
// participant set. The store's find-or-create and the snapshot uniqueness
// check both key threads by it.
func ParticipantsKey(participants []string) string {
	sorted := slices.Clone(participants)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return strings.Join(sorted, "\x00")
}
