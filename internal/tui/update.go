package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"chatapp-client/internal/models"
	"chatapp-client/internal/snowflake"
)

// typingDebounce is how long after the last keystroke the client reports the
// user as no longer typing. The store owns no timers; this layer does.
const typingDebounce = 3 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutChat()
		m.ready = true
		return m, nil

	case typingExpiredMsg:
		if msg.token == m.typingToken && m.typingLive {
			m.clearOwnTyping()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Globals first. While composing, plain "q" must stay typeable.
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Compose):
		if m.focus == focusSidebar {
			m.focus = focusComposer
			return m, m.composer.Focus()
		}
		m.focus = focusSidebar
		m.composer.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Members):
		m.showMembers = !m.showMembers
		m.layoutChat()
		return m, nil
	}

	if m.focus == focusComposer {
		return m.handleComposerKey(msg)
	}
	return m.handleSidebarKey(msg)
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextServer):
		m.cycleServer(1)

	case key.Matches(msg, m.keys.PrevServer):
		m.cycleServer(-1)

	case key.Matches(msg, m.keys.Select):
		m.openEntry()

	case key.Matches(msg, m.keys.Mute):
		m.store.ToggleMute(m.store.CurrentUser().ID)

	case key.Matches(msg, m.keys.Deafen):
		m.store.ToggleDeafen(m.store.CurrentUser().ID)

	case key.Matches(msg, m.keys.LeaveVoice):
		m.store.ClearVoiceState(m.store.CurrentUser().ID)

	case key.Matches(msg, m.keys.React):
		if tail, ok := m.tailMessage(); ok {
			m.store.ToggleReaction(tail.ID, "👍", m.store.CurrentUser().ID)
		}

	case key.Matches(msg, m.keys.Pin):
		if tail, ok := m.tailMessage(); ok {
			m.store.TogglePin(tail.ID)
		}
	}
	return m, nil
}

func (m *Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.submitComposer()
		return *m, nil
	}

	var cmd tea.Cmd
	before := m.composer.Value()
	m.composer, cmd = m.composer.Update(msg)
	if m.composer.Value() == before {
		return *m, cmd
	}

	// Every edit re-arms the debounce; the previous tick is orphaned by the
	// token bump and ignored on arrival.
	conv, ok := m.store.ActiveConversation()
	if !ok {
		return *m, cmd
	}
	m.store.SetTyping(conv, m.store.CurrentUser().ID)
	m.typingLive = true
	m.typingToken++
	token := m.typingToken
	expire := tea.Tick(typingDebounce, func(time.Time) tea.Msg {
		return typingExpiredMsg{token: token}
	})
	return *m, tea.Batch(cmd, expire)
}

func (m *Model) submitComposer() {
	content := m.composer.Value()
	if content == "" {
		return
	}
	conv, ok := m.store.ActiveConversation()
	if !ok || conv == models.DMConversation(models.FriendsListID) {
		return
	}

	id, err := snowflake.GenerateString()
	if err != nil {
		// Increment overflow; vanishingly rare for a human typing, but the
		// post must still go through with a unique id.
		m.sugar.Warnf("Snowflake generation failed, falling back to uuid: %v", err)
		id = uuid.NewString()
	}

	m.store.PostMessage(models.Message{
		ID:           id,
		Conversation: conv,
		AuthorID:     m.store.CurrentUser().ID,
		Content:      content,
		Timestamp:    time.Now(),
		Type:         models.MessageDefault,
	})
	m.composer.SetValue("")
	m.clearOwnTyping()
	m.chat.GotoBottom()
}

func (m *Model) clearOwnTyping() {
	if conv, ok := m.store.ActiveConversation(); ok {
		m.store.ClearTyping(conv, m.store.CurrentUser().ID)
	}
	m.typingLive = false
	m.typingToken++
}

func (m *Model) cycleServer(dir int) {
	servers := m.store.Servers()
	if len(servers) == 0 {
		return
	}

	at := 0
	for i := range servers {
		if servers[i].ID == m.store.CurrentServerID() {
			at = i
			break
		}
	}
	next := servers[(at+dir+len(servers))%len(servers)]

	m.clearOwnTyping()
	m.store.SelectServer(next.ID)
	if ch := firstText(next); ch != "" {
		m.store.SelectChannel(ch)
	}
	m.rebuildEntries()
	m.moveCursorToSelection()
}

func (m *Model) openEntry() {
	if m.cursor >= len(m.entries) {
		return
	}
	m.clearOwnTyping()

	entry := m.entries[m.cursor]
	switch entry.kind {
	case entryChannel:
		m.store.SelectChannel(entry.id)
		m.store.MarkChannelRead(entry.id)
	case entryVoice:
		m.store.SetVoiceState(m.store.CurrentUser().ID, entry.id)
	case entryDM, entryFriends:
		m.store.SelectDirectMessage(entry.id)
	}
	m.chat.GotoBottom()
}

func (m *Model) tailMessage() (models.Message, bool) {
	conv, ok := m.store.ActiveConversation()
	if !ok {
		return models.Message{}, false
	}
	log := m.store.Messages(conv)
	if len(log) == 0 {
		return models.Message{}, false
	}
	return log[len(log)-1], true
}

func (m *Model) layoutChat() {
	chatWidth := m.width - sidebarWidth - 2
	if m.showMembers {
		chatWidth -= membersWidth
	}
	chatHeight := m.height - 6
	if chatHeight < 1 {
		chatHeight = 1
	}
	if m.chat.Width == 0 {
		m.chat = viewport.New(chatWidth, chatHeight)
	} else {
		m.chat.Width = chatWidth
		m.chat.Height = chatHeight
	}
	m.composer.Width = chatWidth - 4
}

func firstText(srv models.Server) string {
	for _, cat := range srv.Categories {
		for _, ch := range cat.Channels {
			if ch.Type == models.ChannelText {
				return ch.ID
			}
		}
	}
	return ""
}
