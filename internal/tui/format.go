package tui

import (
	"fmt"

	"chatapp-client/internal/models"
)

// TypingLabel words the typing indicator: one name, two names, or two names
// plus a count for a crowd. Empty input yields an empty label.
func TypingLabel(users []models.User) string {
	switch len(users) {
	case 0:
		return ""
	case 1:
		return users[0].DisplayName + " is typing…"
	case 2:
		return users[0].DisplayName + " and " + users[1].DisplayName + " are typing…"
	}
	return fmt.Sprintf("%s, %s and %d more are typing…",
		users[0].DisplayName, users[1].DisplayName, len(users)-2)
}
