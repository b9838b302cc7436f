package conversation

import "context"

// Store keeps anonymous, session-scoped contexts keyed by the browser
// session id. Implementations must apply the MaxExchanges bound on append.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Context, error)
	Append(ctx context.Context, sessionID, user, assistant string) error
	Clear(ctx context.Context, sessionID string) error
}
