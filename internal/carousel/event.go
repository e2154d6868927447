package carousel

import (
	"errors"
	"fmt"
	"strings"
)

// Action identifies one of the three input events a carousel consumes.
type Action string

const (
	ActionAdvance Action = "advance"
	ActionRetreat Action = "retreat"
	ActionSelect  Action = "select"
)

// ErrUnknownAction is returned by ParseAction for anything but the three actions.
var ErrUnknownAction = errors.New("carousel: unknown action")

// ParseAction converts a wire or query-string value into an Action.
// Matching is case-insensitive; "next" and "prev" are accepted as aliases.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "advance", "next":
		return ActionAdvance, nil
	case "retreat", "prev", "previous":
		return ActionRetreat, nil
	case "select":
		return ActionSelect, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Event is a single input to a carousel. Index is only read for ActionSelect.
type Event struct {
	Action Action
	Index  int
}

// Apply returns the cursor that results from ev.
func (c Cursor) Apply(ev Event) (Cursor, error) {
	switch ev.Action {
	case ActionAdvance:
		return c.Next(), nil
	case ActionRetreat:
		return c.Prev(), nil
	case ActionSelect:
		return c.Select(ev.Index)
	default:
		return c, fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
}

// Apply feeds ev to the controller. A rejected event leaves the controller unchanged.
func (c *Controller[T]) Apply(ev Event) error {
	next, err := c.cursor.Apply(ev)
	if err != nil {
		return err
	}
	c.cursor = next
	return nil
}
