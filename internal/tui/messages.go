package tui

import "github.com/radarpme/radarpme/internal/result"

// answeredMsg is sent when the controller finished recording an answer
// (including the submission side effects on the last question).
type answeredMsg struct {
	Err error
}

// resultReadyMsg is sent when the diagnosis resolved and the results
// view can be shown.
type resultReadyMsg struct {
	View *result.View
}
