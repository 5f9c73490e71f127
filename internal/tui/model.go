package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusComposer
)

type entryKind int

const (
	entryChannel entryKind = iota
	entryVoice
	entryDM
	entryFriends
)

// sidebarEntry is one selectable row of the left column, flattened from the
// current server's categories plus the DM section.
type sidebarEntry struct {
	kind  entryKind
	id    string
	label string
	// section marks the first entry under a category heading; the view
	// prints it above the row.
	section string
}

// typingExpiredMsg fires when the composer's typing debounce runs out. The
// token ties it to a keystroke generation; a stale tick is ignored.
type typingExpiredMsg struct {
	token int
}

type Model struct {
	store *store.Store
	sugar *zap.SugaredLogger
	keys  KeyMap
	style styles

	composer textinput.Model
	chat     viewport.Model

	entries []sidebarEntry
	cursor  int
	focus   focusArea

	showMembers bool
	typingToken int
	typingLive  bool

	width  int
	height int
	ready  bool
}

func NewModel(s *store.Store, sugar *zap.SugaredLogger, showMembers bool) Model {
	composer := textinput.New()
	composer.Placeholder = "Message"
	composer.CharLimit = 2000
	composer.Prompt = "> "

	m := Model{
		store:       s,
		sugar:       sugar,
		keys:        DefaultKeyMap,
		style:       defaultStyles(),
		composer:    composer,
		showMembers: showMembers,
	}
	m.rebuildEntries()
	m.moveCursorToSelection()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// rebuildEntries flattens the sidebar for the current server and the DM
// section. Channel order inside a category follows position, ties broken by
// the seeded order.
func (m *Model) rebuildEntries() {
	m.entries = m.entries[:0]

	if srv, ok := m.store.CurrentServer(); ok {
		for _, cat := range srv.Categories {
			section := cat.Name
			for _, ch := range sortedByPosition(cat.Channels) {
				kind := entryChannel
				prefix := "# "
				if ch.Type == models.ChannelVoice {
					kind = entryVoice
					prefix = "🔊 "
				}
				m.entries = append(m.entries, sidebarEntry{
					kind:    kind,
					id:      ch.ID,
					label:   prefix + ch.Name,
					section: section,
				})
				section = ""
			}
		}
	}

	m.entries = append(m.entries, sidebarEntry{
		kind:    entryFriends,
		id:      models.FriendsListID,
		label:   "@ friends",
		section: "DIRECT MESSAGES",
	})
	for _, dm := range m.store.DirectMessages() {
		m.entries = append(m.entries, sidebarEntry{
			kind:  entryDM,
			id:    dm.ID,
			label: "@ " + m.dmLabel(dm),
		})
	}

	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// dmLabel names a thread after the participants other than the current user.
func (m *Model) dmLabel(dm models.DirectMessage) string {
	current := m.store.CurrentUser()
	label := ""
	for _, id := range dm.Participants {
		if id == current.ID {
			continue
		}
		name := id
		for _, friend := range m.store.Friends() {
			if friend.ID == id {
				name = friend.DisplayName
				break
			}
		}
		if label != "" {
			label += ", "
		}
		label += name
	}
	if label == "" {
		label = "empty thread"
	}
	return label
}

func (m *Model) moveCursorToSelection() {
	channelID := m.store.CurrentChannelID()
	dmID := m.store.CurrentDMID()
	for i, e := range m.entries {
		if (channelID != "" && e.id == channelID) || (dmID != "" && e.id == dmID && e.kind != entryFriends) {
			m.cursor = i
			return
		}
	}
}

func sortedByPosition(channels []models.Channel) []models.Channel {
	sorted := slices.Clone(channels)
	slices.SortStableFunc(sorted, func(a, b models.Channel) int {
		return a.Position - b.Position
	})
	return sorted
}
