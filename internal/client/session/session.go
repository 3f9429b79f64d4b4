// Package session owns the client-side authentication state machine:
// restore-on-start, login, register with automatic login, and logout.
//
// State transitions:
//
//	Unknown        --restore, stored token valid-->   Authenticated
//	Unknown        --no token / token rejected-->     Unauthenticated
//	Unauthenticated --login/register-->               Authenticating
//	Authenticating  --success-->                      Authenticated
//	Authenticating  --failure-->                      Unauthenticated
//	Authenticated   --logout-->                       Unauthenticated
package session

import "taskvault/internal/client/models"

// State names the current position in the session lifecycle.
type State string

const (
	// StateUnknown is the pre-restore state: a token may be stored but has
	// not been checked yet.
	StateUnknown State = "unknown"
	// StateUnauthenticated means no valid session exists.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticating means a login or register operation is in flight.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated means a user and token are present.
	StateAuthenticated State = "authenticated"
)

// Session is a snapshot of the authentication state. At every observable
// rest point Authenticated == (User != nil && Token != ""); the equality may
// not hold mid-transition.
type Session struct {
	User          *models.User
	Token         string
	Authenticated bool

	// Loading is true only while restore, login, or register is in flight.
	Loading bool

	// Err is a human-readable message describing the terminal failure of
	// the most recent operation. It is cleared when a new operation starts.
	Err string
}
