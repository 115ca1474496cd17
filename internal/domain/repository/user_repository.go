package repository

import (
	"context"

	"github.com/soraho/account-api/internal/domain/entity"
)

// UserRepository persists and resolves user records. Implementations
// catch every persistence fault at this boundary and report plain
// found/ok flags; callers never see a raw database error.
type UserRepository interface {
	// TryCreateUser inserts the user record and its credential record
	// atomically. Both rows land or neither does.
	TryCreateUser(ctx context.Context, newUser entity.User, signInID entity.SignInID, hashedPassword entity.HashedPassword) bool

	// TryFindUserByID resolves a user by id. Returns UnknownUser and
	// false when no row exists or the read fails.
	TryFindUserByID(ctx context.Context, id entity.UserID) (entity.User, bool)
}
