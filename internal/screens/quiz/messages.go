package quiz

import (
	"github.com/abhisek/quickmaths/internal/session"
)

// testReadyMsg is sent when question generation for a new test completes.
type testReadyMsg struct {
	Test session.Test
	Err  error
}
