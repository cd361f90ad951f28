package domain

import (
	"context"

	"portal-gateway/internal/soap"
)

// RemoteClient issues one authenticated call to the ERP service and returns
// the operation's response element as a decoded field tree. Implementations
// never retry; failures surface as the Err* taxonomy in this package.
type RemoteClient interface {
	Call(ctx context.Context, op Operation, params []soap.Param) (*soap.Node, error)
}

// SessionStore persists sessions by identifier with a TTL. Get never returns
// an expired session; it reports ErrSessionNotFound instead.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, session Session) error
	Delete(ctx context.Context, id string) error
}
