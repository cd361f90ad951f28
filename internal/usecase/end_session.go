package usecase

import (
	"context"
	"log/slog"

	"portal-gateway/internal/domain"
)

// EndSession destroys a session unconditionally.
type EndSession struct {
	sessions domain.SessionStore
	logger   *slog.Logger
}

// NewEndSession creates the logout usecase.
func NewEndSession(sessions domain.SessionStore, logger *slog.Logger) *EndSession {
	return &EndSession{sessions: sessions, logger: logger}
}

// Execute removes the session. An unknown or already-expired identifier is
// not an error; the outcome is the same.
func (uc *EndSession) Execute(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.logger.Error("session delete failed", "error", err)
		return err
	}
	return nil
}
