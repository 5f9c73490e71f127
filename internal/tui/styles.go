package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlurple = lipgloss.Color("#5865f2")
	colorGreen   = lipgloss.Color("#23a559")
	colorYellow  = lipgloss.Color("#f0b232")
	colorRed     = lipgloss.Color("#f23f43")
	colorMuted   = lipgloss.Color("#949ba4")
	colorFaint   = lipgloss.Color("#6d6f78")
)

type styles struct {
	header       lipgloss.Style
	sidebar      lipgloss.Style
	sidebarFocus lipgloss.Style
	category     lipgloss.Style
	entry        lipgloss.Style
	entryActive  lipgloss.Style
	unreadBadge  lipgloss.Style
	chat         lipgloss.Style
	author       lipgloss.Style
	timestamp    lipgloss.Style
	system       lipgloss.Style
	reaction     lipgloss.Style
	typing       lipgloss.Style
	members      lipgloss.Style
	roleHeading  lipgloss.Style
	offline      lipgloss.Style
	composer     lipgloss.Style
	help         lipgloss.Style
}

func defaultStyles() styles {
	entry := lipgloss.NewStyle().PaddingLeft(1)
	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(colorFaint)

	return styles{
		header:       lipgloss.NewStyle().Bold(true).Foreground(colorBlurple).Padding(0, 1),
		sidebar:      border,
		sidebarFocus: border.BorderForeground(colorBlurple),
		category:     lipgloss.NewStyle().Bold(true).Foreground(colorMuted),
		entry:        entry,
		entryActive:  entry.Bold(true).Foreground(colorBlurple),
		unreadBadge:  lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		chat:         lipgloss.NewStyle().Padding(0, 1),
		author:       lipgloss.NewStyle().Bold(true),
		timestamp:    lipgloss.NewStyle().Foreground(colorFaint),
		system:       lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		reaction:     lipgloss.NewStyle().Foreground(colorYellow),
		typing:       lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		members:      lipgloss.NewStyle().PaddingLeft(1),
		roleHeading:  lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		offline:      lipgloss.NewStyle().Foreground(colorFaint),
		composer:     lipgloss.NewStyle().Padding(0, 1),
		help:         lipgloss.NewStyle().Foreground(colorFaint).Padding(0, 1),
	}
}

func statusDot(status string) string {
	switch status {
	case "online":
		return lipgloss.NewStyle().Foreground(colorGreen).Render("●")
	case "idle":
		return lipgloss.NewStyle().Foreground(colorYellow).Render("●")
	case "dnd":
		return lipgloss.NewStyle().Foreground(colorRed).Render("●")
	}
	return lipgloss.NewStyle().Foreground(colorFaint).Render("○")
}
