// Package input provides control sources for player slots: the keyboard and
// gamepads through ebiten, and scripted sources for bots and tests.
package input

import (
	"strconv"
	"strings"
)

// splitName splits a control name like "Jump2" into its control and slot.
func splitName(name string) (string, int, bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return "", 0, false
	}
	id, err := strconv.Atoi(name[i:])
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(name[:i]), id, true
}
