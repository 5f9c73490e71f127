package models

import "time"

type UserStatus string

const (
	StatusOnline  UserStatus = "online"
	StatusIdle    UserStatus = "idle"
	StatusDnd     UserStatus = "dnd"
	StatusOffline UserStatus = "offline"
)

type ChannelType string

const (
	ChannelText  ChannelType = "text"
	ChannelVoice ChannelType = "voice"
)

type MessageType string

const (
	MessageDefault MessageType = "default"
	MessageReply   MessageType = "reply"
	MessageSystem  MessageType = "system"
)

type User struct {
	ID          string     `json:"id" validate:"required"`
	Username    string     `json:"username" validate:"required"`
	DisplayName string     `json:"displayName" validate:"required"`
	Avatar      string     `json:"avatar,omitempty"`
	Status      UserStatus `json:"status" validate:"oneof=online idle dnd offline"`
	StatusText  string     `json:"statusText,omitempty"`
	JoinedAt    time.Time  `json:"joinedAt"`
	// Role ids, ordered. The first entry is the user's primary role. Roles
	// are referenced by id, never embedded.
	RoleIDs []string `json:"roles,omitempty"`
}

type Role struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Color       string   `json:"color"`
	Permissions []string `json:"permissions"`
}

type Channel struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Type        ChannelType `json:"type" validate:"oneof=text voice"`
	Topic       string      `json:"topic,omitempty"`
	UnreadCount int         `json:"unreadCount" validate:"gte=0"`
	Position    int         `json:"position"`
}

type Category struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Channels []Channel `json:"channels" validate:"dive"`
}

type Server struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Icon    string `json:"icon,omitempty"`
	OwnerID string `json:"ownerId" validate:"required"`
	// Recomputed from len(Members) on every membership mutation, never
	// accepted from a caller.
	MemberCount int        `json:"memberCount" validate:"gte=0"`
	Categories  []Category `json:"categories" validate:"dive"`
	Members     []User     `json:"members" validate:"dive"`
	Roles       []Role     `json:"roles" validate:"dive"`
}

type DirectMessage struct {
	ID           string   `json:"id" validate:"required"`
	Participants []string `json:"participants" validate:"min=2"`
	UnreadCount  int      `json:"unreadCount" validate:"gte=0"`
}

type Attachment struct {
	ID          string `json:"id" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	URL         string `json:"url"`
	Size        int64  `json:"size" validate:"gte=0"`
	ContentType string `json:"contentType"`
}

type Reaction struct {
	Emoji string `json:"emoji" validate:"required"`
	// Always equals len(Users).
	Count int      `json:"count" validate:"gte=0"`
	Users []string `json:"users"`
}

type Thread struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	MessageCount int    `json:"messageCount"`
	MemberCount  int    `json:"memberCount"`
	Archived     bool   `json:"archived"`
}

type Message struct {
	ID           string         `json:"id" validate:"required"`
	Conversation ConversationID `json:"conversation"`
	AuthorID     string         `json:"authorId" validate:"required"`
	Content      string         `json:"content"`
	Timestamp    time.Time      `json:"timestamp"`
	Edited       bool           `json:"edited,omitempty"`
	Attachments  []Attachment   `json:"attachments,omitempty" validate:"dive"`
	Reactions    []Reaction     `json:"reactions,omitempty" validate:"dive"`
	ReplyTo      string         `json:"replyTo,omitempty"`
	Pinned       bool           `json:"pinned,omitempty"`
	Type         MessageType    `json:"type" validate:"oneof=default reply system"`
	Thread       *Thread        `json:"thread,omitempty"`
}

type VoiceState struct {
	UserID    string `json:"userId" validate:"required"`
	ChannelID string `json:"channelId,omitempty"`
	Muted     bool   `json:"muted"`
	Deafened  bool   `json:"deafened"`
	Speaking  bool   `json:"speaking"`
}

// Snapshot is a complete starting dataset for the store. Producers must hand
// over a value that passes Validate before it is loaded.
type Snapshot struct {
	CurrentUser    User                         `json:"currentUser"`
	Servers        []Server                     `json:"servers" validate:"dive"`
	DirectMessages []DirectMessage              `json:"directMessages" validate:"dive"`
	Messages       map[ConversationID][]Message `json:"messages" validate:"dive,dive"`
	Friends        []User                       `json:"friends" validate:"dive"`
	VoiceStates    []VoiceState                 `json:"voiceStates,omitempty" validate:"dive"`
}
