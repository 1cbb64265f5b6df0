package usecase

import (
	"context"

	"healfinity-backend/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

func userIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return middleware.GetUserIDFromContext(ctx)
}

// requireUserID resolves the authenticated user or reports the absence of a
// session, so every data-access usecase fails the same way when called
// without one.
func requireUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrNoActiveSession
	}
	return userID, nil
}
