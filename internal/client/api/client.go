// Package api is the single point of outbound communication with the
// TaskVault server. It attaches the stored bearer token to outgoing
// requests, classifies every failure into a fixed taxonomy, and retries
// transient transport failures once.
package api

import (
	"context"

	"taskvault/internal/client/models"
)

// Client is the remote API surface consumed by the session store and the CLI.
type Client interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)

	// Register creates a new account. Payloads are validated locally before
	// any network call is made.
	Register(ctx context.Context, data models.RegisterData) (*models.User, error)

	// CurrentUser returns the account the stored token belongs to.
	CurrentUser(ctx context.Context) (*models.User, error)

	// Logout invalidates the session remotely. The stored token is cleared
	// even if the remote call fails.
	Logout(ctx context.Context) error

	// Health probes server liveness.
	Health(ctx context.Context) error
}
