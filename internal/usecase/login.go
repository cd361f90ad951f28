// Package usecase orchestrates the gateway's business capabilities between
// the HTTP handlers and the remote ERP client.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/soap"
)

// authSuccess is the remote result code indicating accepted credentials. Any
// other code is treated as a uniform authentication failure.
const authSuccess = "S"

// LoginResult carries the remote verdict and, on success, the session created
// for the principal.
type LoginResult struct {
	Status    string
	Message   string
	SessionID string
}

// Login authenticates a customer against the ERP and establishes a session.
type Login struct {
	remote     domain.RemoteClient
	sessions   domain.SessionStore
	op         domain.Operation
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewLogin creates the login usecase.
func NewLogin(remote domain.RemoteClient, sessions domain.SessionStore, op domain.Operation, ttl time.Duration, logger *slog.Logger) *Login {
	return &Login{remote: remote, sessions: sessions, op: op, sessionTTL: ttl, logger: logger}
}

// Execute submits the credentials to the remote service. On a success code
// the submitted customer ID — never one returned by the remote system — is
// persisted into a fresh session. A non-success code surfaces as
// ErrRemoteAuthRejected carrying the remote message.
func (uc *Login) Execute(ctx context.Context, customerID, password string) (*LoginResult, error) {
	if customerID == "" || password == "" {
		return nil, fmt.Errorf("%w: customer ID and password are required", domain.ErrInputMissing)
	}

	resp, err := uc.remote.Call(ctx, uc.op, []soap.Param{
		{Key: "USER_ID", Value: customerID},
		{Key: "USER_PWD", Value: password},
	})
	if err != nil {
		return nil, err
	}

	status := resp.Path("USER_AUTH_TYPE").Text()
	message := resp.Path("USER_AUTH_MSG").Text()

	if status != authSuccess {
		uc.logger.Info("login rejected by remote", "customer_id", customerID, "code", status)
		if message == "" {
			message = "Invalid credentials."
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrRemoteAuthRejected, message)
	}

	now := time.Now()
	session := domain.Session{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(uc.sessionTTL),
	}
	if err := uc.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	uc.logger.Info("login succeeded", "customer_id", customerID)
	return &LoginResult{
		Status:    status,
		Message:   message,
		SessionID: session.ID,
	}, nil
}
