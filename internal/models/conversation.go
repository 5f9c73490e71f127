package models

import (
	"fmt"
	"strings"
)

type ConversationKind string

const (
	ConversationChannel ConversationKind = "channel"
	ConversationDM      ConversationKind = "dm"
)

// FriendsListID is the sentinel DirectMessage id for the friends-list
// pseudo-conversation. It has no message log.
const FriendsListID = "friends"

// ConversationID addresses a message log: either a server text channel or a
// direct message thread. Channel ids and DM ids come from independent
// sequences, so the kind tag is what keeps the two namespaces apart.
type ConversationID struct {
	Kind ConversationKind `json:"kind" validate:"oneof=channel dm"`
	ID   string           `json:"id" validate:"required"`
}

func ChannelConversation(channelID string) ConversationID {
	return ConversationID{Kind: ConversationChannel, ID: channelID}
}

func DMConversation(dmID string) ConversationID {
	return ConversationID{Kind: ConversationDM, ID: dmID}
}

func (c ConversationID) IsZero() bool {
	return c.Kind == "" && c.ID == ""
}

func (c ConversationID) String() string {
	return string(c.Kind) + ":" + c.ID
}

// MarshalText lets ConversationID serve as a JSON map key.
func (c ConversationID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ConversationID) UnmarshalText(text []byte) error {
	kind, id, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("malformed conversation id %q", text)
	}
	switch ConversationKind(kind) {
	case ConversationChannel, ConversationDM:
	default:
		return fmt.Errorf("unknown conversation kind %q", kind)
	}
	c.Kind = ConversationKind(kind)
	c.ID = id
	return nil
}
