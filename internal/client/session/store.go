package session

import (
	"context"
	"sort"
	"strings"
	"sync"

	"taskvault/internal/client/api"
	"taskvault/internal/client/models"
	"taskvault/internal/client/tokenstore"
	"taskvault/internal/logging"
)

// User-facing messages. Login failures always collapse to the same generic
// message so the response never reveals which part of the credentials was
// wrong.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgPasswordMismatch   = "Passwords do not match"
	msgLoginNetwork       = "Network error during login. Please try logging in manually."
	msgManualLogin        = "Registration successful but automatic login failed. Please login manually."
	msgDuplicateAccount   = "An account with this email or username already exists"
	msgNetwork            = "Network error. Please check your connection and try again"
	msgRegistrationFailed = "Registration failed"
)

// Store owns the Session and drives its lifecycle through the API client and
// the durable token store.
//
// A mutex serializes operations: the store is safe for concurrent use, but
// two overlapping login/register calls are still two distinct logical
// operations racing on the same session, and the last writer wins. That
// ordering is documented, not supported.
type Store struct {
	mu      sync.Mutex
	client  api.Client
	tokens  tokenstore.Store
	log     logging.Logger
	session Session
	state   State
}

// NewStore builds a Store in the Unknown state. Call Restore once at startup
// to settle it.
func NewStore(client api.Client, tokens tokenstore.Store, log logging.Logger) *Store {
	return &Store{client: client, tokens: tokens, log: log, state: StateUnknown}
}

// Session returns a snapshot of the current session.
func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Restore settles the session from the stored token. Without a token it
// completes unauthenticated without touching the network. With one, it asks
// the server who the token belongs to; any failure clears the stored token
// and degrades silently to unauthenticated. A stale token must never block
// startup, so Restore always returns nil.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.tokens.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading stored token on restore", "error", err)
		s.settle(Session{})
		return nil
	}
	if token == "" {
		s.settle(Session{})
		return nil
	}

	s.session.Loading = true

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Info(ctx, "stored token rejected, starting unauthenticated", "error", err)
		s.clearStoredToken(ctx)
		s.settle(Session{})
		return nil
	}

	s.session = Session{User: user, Token: token, Authenticated: true}
	s.state = StateAuthenticated
	s.log.Info(ctx, "session restored", "user", user.Username)
	return nil
}

// Login authenticates with the given credentials. On success the token is
// persisted and the current user is fetched before the session commits. On
// any failure the session ends unauthenticated with a generic error message,
// no token is left behind, and the underlying classified error is returned
// unwrapped so callers can react to it.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.login(ctx, creds)
}

// login is the lock-held body of Login, shared with the register auto-login
// step.
func (s *Store) login(ctx context.Context, creds models.Credentials) error {
	s.begin()

	resp, err := s.client.Login(ctx, creds)
	if err != nil {
		s.log.Debug(ctx, "login rejected", "user", creds.Username, "error", err)
		s.settle(Session{Err: msgInvalidCredentials})
		return err
	}

	if err := s.tokens.Set(ctx, resp.AccessToken); err != nil {
		s.log.Error(ctx, "persisting token", "error", err)
		s.settle(Session{Err: msgInvalidCredentials})
		return err
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		// The token was already written; do not leave an unusable one
		// behind.
		s.clearStoredToken(ctx)
		s.settle(Session{Err: msgInvalidCredentials})
		return err
	}

	s.session = Session{User: user, Token: resp.AccessToken, Authenticated: true}
	s.state = StateAuthenticated
	s.log.Info(ctx, "login succeeded", "user", user.Username)
	return nil
}

// Register creates an account and then logs in with the new credentials.
// Password confirmation is checked before any network call. Three outcomes:
//
//  1. Both steps succeed: the session is authenticated, Err is empty.
//  2. Registration succeeds but the automatic login fails: the session ends
//     unauthenticated with a message telling the user to log in manually;
//     nil is returned since the account does exist.
//  3. Registration fails: Err is derived from the error taxonomy and the
//     classified error is returned unwrapped.
func (s *Store) Register(ctx context.Context, data models.RegisterData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.begin()

	if data.Password != data.ConfirmPassword {
		err := &api.Error{
			Code:    api.CodeValidation,
			Message: msgPasswordMismatch,
			Details: map[string]string{"confirmPassword": msgPasswordMismatch},
		}
		s.settle(Session{Err: msgPasswordMismatch})
		return err
	}

	if _, err := s.client.Register(ctx, data); err != nil {
		s.log.Debug(ctx, "registration rejected", "user", data.Username, "error", err)
		s.settle(Session{Err: registerErrorMessage(err)})
		return err
	}

	s.log.Info(ctx, "registration succeeded, attempting automatic login", "user", data.Username)

	creds := models.Credentials{Username: data.Username, Password: data.Password}
	if err := s.login(ctx, creds); err != nil {
		msg := msgManualLogin
		if api.IsCode(err, api.CodeNetwork) {
			msg = msgLoginNetwork
		}
		s.clearStoredToken(ctx)
		s.settle(Session{Err: msg})
		return nil
	}
	return nil
}

// Logout ends the session. The remote call is attempted, but the local reset
// and token cleanup happen regardless of its outcome: local state must never
// stay authenticated against an unreachable server. Always returns nil and
// is safe to call repeatedly.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}
	s.clearStoredToken(ctx)
	s.settle(Session{})
	return nil
}

// begin marks the start of an operation: previous error cleared, loading on.
func (s *Store) begin() {
	s.session.Err = ""
	s.session.Loading = true
	s.state = StateAuthenticating
}

// settle commits a terminal unauthenticated-or-empty session with loading
// off.
func (s *Store) settle(terminal Session) {
	terminal.Loading = false
	s.session = terminal
	s.state = StateUnauthenticated
}

func (s *Store) clearStoredToken(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn(ctx, "clearing stored token", "error", err)
	}
}

// registerErrorMessage turns a classified registration failure into the
// message shown to the user.
func registerErrorMessage(err error) string {
	apiErr, ok := api.AsError(err)
	if !ok {
		return msgRegistrationFailed
	}

	switch apiErr.Code {
	case api.CodeValidation:
		if len(apiErr.Details) > 0 {
			return joinDetails(apiErr.Details)
		}
	case api.CodeDuplicate:
		return msgDuplicateAccount
	case api.CodeNetwork, api.CodeConnection:
		return msgNetwork
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return msgRegistrationFailed
}

// joinDetails flattens per-field validation messages into one string, in a
// stable field order.
func joinDetails(details map[string]string) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, details[k])
	}
	return strings.Join(msgs, ", ")
}
