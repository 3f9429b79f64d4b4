// Package tokenstore persists the bearer token across process restarts.
//
// The token is the only durable piece of session state: its presence on
// startup is what allows a previous session to be restored, and its absence
// means unauthenticated.
package tokenstore

import "context"

// TokenKey is the fixed storage key under which the access token is kept.
const TokenKey = "access_token"

// Store is a durable single-token store. Get returns an empty string when no
// token is stored; that is not an error.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
