package session

import "fmt"

// State is a step of the interactive menu loop.
type State int

const (
	StateFileSelect State = iota
	StateLoaded
	StateMenu
	StateFiltering
	StateResultShown
	StateContinuePrompt
	StateTerminated
)

var stateNames = [...]string{
	StateFileSelect:     "file_select",
	StateLoaded:         "loaded",
	StateMenu:           "menu",
	StateFiltering:      "filtering",
	StateResultShown:    "result_shown",
	StateContinuePrompt: "continue_prompt",
	StateTerminated:     "terminated",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}
