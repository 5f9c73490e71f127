// Package tui is the terminal shell around the conversation store: a server
// rail, a channel sidebar, the message pane with composer, and the members
// panel. It owns all view-local state (focus, cursor, panel visibility) and
// the typing debounce; everything durable lives in the store.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"chatapp-client/internal/store"
)

func Run(s *store.Store, sugar *zap.SugaredLogger, showMembers bool) error {
	program := tea.NewProgram(NewModel(s, sugar, showMembers), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
