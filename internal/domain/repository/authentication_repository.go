package repository

import (
	"context"

	"github.com/soraho/account-api/internal/domain/entity"
)

// AuthenticationRepository resolves stored credentials by sign-in
// identifier. Like UserRepository, faults never escape as errors.
type AuthenticationRepository interface {
	// TryFindAuthentication looks up the credential registered for the
	// identifier. Returns EmptyUserID, EmptyStoredPassword and false
	// when no credential exists or the read fails.
	TryFindAuthentication(ctx context.Context, signInID entity.SignInID) (entity.UserID, entity.StoredPassword, bool)
}
