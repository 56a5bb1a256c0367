package farm

import (
	"strings"
	"unicode/utf8"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// Rename sets the farm name. Surrounding whitespace is dropped.
func (e *Engine) Rename(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > domain.MaxFarmNameLength {
		return "", domain.ErrInvalidName
	}
	e.state.FarmName = trimmed
	return trimmed, nil
}

// Reset wipes the farm back to the starter state
func (e *Engine) Reset() {
	e.state = domain.NewState()
}
