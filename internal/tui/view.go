package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chatapp-client/internal/models"
	"chatapp-client/internal/projection"
)

const (
	sidebarWidth = 26
	membersWidth = 24
)

func (m Model) View() string {
	if !m.ready {
		return "starting…"
	}

	columns := []string{m.viewSidebar(), m.viewChat()}
	if m.showMembers {
		columns = append(columns, m.viewMembers())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.viewHelp(),
	)
}

func (m Model) viewHeader() string {
	var b strings.Builder
	servers := m.store.Servers()
	for i := range servers {
		if i > 0 {
			b.WriteString("  ")
		}
		name := servers[i].Icon + " " + servers[i].Name
		if unread := projection.ServerUnreadTotal(servers[i]); unread > 0 {
			name += m.style.unreadBadge.Render(fmt.Sprintf(" (%d)", unread))
		}
		if servers[i].ID == m.store.CurrentServerID() {
			name = m.style.header.Render(name)
		}
		b.WriteString(name)
	}

	if vs, ok := m.store.VoiceState(m.store.CurrentUser().ID); ok && vs.ChannelID != "" {
		flags := ""
		if vs.Muted {
			flags += " muted"
		}
		if vs.Deafened {
			flags += " deafened"
		}
		b.WriteString(m.style.typing.Render(fmt.Sprintf("   🔊 voice connected%s", flags)))
	}
	return b.String()
}

func (m Model) viewSidebar() string {
	var b strings.Builder
	for i, entry := range m.entries {
		if entry.section != "" {
			b.WriteString(m.style.category.Render(entry.section) + "\n")
		}

		label := entry.label
		if entry.kind == entryChannel {
			if unread := m.channelUnread(entry.id); unread > 0 {
				label += m.style.unreadBadge.Render(fmt.Sprintf(" %d", unread))
			}
		}
		if entry.kind == entryVoice {
			if roster := projection.VoiceRoster(m.store, entry.id); len(roster) > 0 {
				label += m.style.typing.Render(fmt.Sprintf(" %d", len(roster)))
			}
		}
		if entry.kind == entryDM {
			if unread := m.dmUnread(entry.id); unread > 0 {
				label += m.style.unreadBadge.Render(fmt.Sprintf(" %d", unread))
			}
		}

		style := m.style.entry
		if i == m.cursor {
			style = m.style.entryActive
		}
		b.WriteString(style.Render(label) + "\n")
	}

	frame := m.style.sidebar
	if m.focus == focusSidebar {
		frame = m.style.sidebarFocus
	}
	return frame.Width(sidebarWidth).Height(m.height - 3).Render(b.String())
}

func (m Model) channelUnread(channelID string) int {
	srv, ok := m.store.CurrentServer()
	if !ok {
		return 0
	}
	for _, cat := range srv.Categories {
		for _, ch := range cat.Channels {
			if ch.ID == channelID {
				return ch.UnreadCount
			}
		}
	}
	return 0
}

func (m Model) dmUnread(dmID string) int {
	for _, dm := range m.store.DirectMessages() {
		if dm.ID == dmID {
			return dm.UnreadCount
		}
	}
	return 0
}

func (m Model) viewChat() string {
	if m.store.CurrentDMID() == models.FriendsListID {
		return m.style.chat.Render(m.viewFriends())
	}

	chat := m.chat
	chat.SetContent(m.renderMessages())
	chat.GotoBottom()

	typingLine := ""
	if conv, ok := m.store.ActiveConversation(); ok {
		typingLine = m.style.typing.Render(TypingLabel(projection.TypingUsers(m.store, conv)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		chat.View(),
		typingLine,
		m.style.composer.Render(m.composer.View()),
	)
}

func (m Model) renderMessages() string {
	msgs := projection.ActiveMessages(m.store)
	if len(msgs) == 0 {
		return m.style.system.Render("No messages yet. Say hi!")
	}

	var b strings.Builder
	var prev *models.Message
	for i := range msgs {
		msg := msgs[i]
		author, ok := projection.ResolveAuthor(m.store, msg)
		if !ok {
			// Author fell out of scope (left the server, unfriended); the
			// message is dropped from rendering rather than misattributed.
			continue
		}

		if projection.ShowAuthorHeader(prev, msg) {
			b.WriteString(m.style.author.Render(author.DisplayName))
			b.WriteString(m.style.timestamp.Render("  " + msg.Timestamp.Format("15:04")))
			b.WriteString("\n")
		}

		line := "  " + msg.Content
		if msg.Pinned {
			line = "  📌" + line[1:]
		}
		if msg.Edited {
			line += m.style.timestamp.Render(" (edited)")
		}
		b.WriteString(line + "\n")

		if len(msg.Reactions) > 0 {
			var pills []string
			for _, r := range msg.Reactions {
				pills = append(pills, fmt.Sprintf("%s %d", r.Emoji, r.Count))
			}
			b.WriteString("  " + m.style.reaction.Render(strings.Join(pills, "  ")) + "\n")
		}
		prev = &msgs[i]
	}
	return b.String()
}

func (m Model) viewFriends() string {
	var b strings.Builder
	b.WriteString(m.style.category.Render("FRIENDS") + "\n")
	for _, friend := range m.store.Friends() {
		b.WriteString(fmt.Sprintf("%s %s\n", statusDot(string(friend.Status)), friend.DisplayName))
	}

	if requests := m.store.FriendRequests(); len(requests) > 0 {
		b.WriteString("\n" + m.style.category.Render("PENDING") + "\n")
		for _, req := range requests {
			b.WriteString("  " + req.DisplayName + "\n")
		}
	}
	if blocked := m.store.BlockedUsers(); len(blocked) > 0 {
		b.WriteString("\n" + m.style.category.Render("BLOCKED") + "\n")
		for _, user := range blocked {
			b.WriteString("  " + m.style.offline.Render(user.DisplayName) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewMembers() string {
	srv, ok := m.store.CurrentServer()
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, group := range projection.MembersByRole(srv) {
		total := len(group.Online) + len(group.Offline)
		heading := fmt.Sprintf("%s — %d", group.Role.Name, total)
		b.WriteString(m.style.roleHeading.Foreground(lipgloss.Color(group.Role.Color)).Render(heading) + "\n")

		for _, member := range group.Online {
			b.WriteString(fmt.Sprintf("%s %s\n", statusDot(string(member.Status)), member.DisplayName))
		}
		for _, member := range group.Offline {
			b.WriteString(m.style.offline.Render(fmt.Sprintf("○ %s", member.DisplayName)) + "\n")
		}
	}
	return m.style.members.Width(membersWidth).Render(b.String())
}

func (m Model) viewHelp() string {
	if m.focus == focusComposer {
		return m.style.help.Render("enter send · tab browse · ctrl+c quit")
	}
	return m.style.help.Render("↑/↓ move · enter open · [/] server · tab compose · ctrl+b members · r react · p pin · q quit")
}
