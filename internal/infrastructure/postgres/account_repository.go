package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/soraho/account-api/internal/domain/entity"
	repo "github.com/soraho/account-api/internal/domain/repository"
)

// AccountRepository implements both repository contracts against the
// users and user_authentications tables. Every fault is logged and
// converted to a flag here; the use cases never see a raw error.
type AccountRepository struct {
	pool   *pgxpool.Pool
	logger *logrus.Logger
}

func NewAccountRepository(pool *pgxpool.Pool, logger *logrus.Logger) *AccountRepository {
	return &AccountRepository{pool: pool, logger: logger}
}

// TryCreateUser inserts the user row and its credential row in one
// transaction. A unique-constraint violation on sign_in_id (the
// duplicate-check race) fails the transaction like any other fault.
func (r *AccountRepository) TryCreateUser(ctx context.Context, newUser entity.User, signInID entity.SignInID, hashedPassword entity.HashedPassword) bool {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.WithError(err).Error("begin user creation transaction failed")
		return false
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, name, registered_at)
		VALUES ($1, $2, $3)
	`, newUser.ID.String(), newUser.Name.String(), newUser.RegisteredAt)
	if err != nil {
		r.logger.WithError(err).Error("insert user failed")
		return false
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_authentications (user_id, sign_in_id, password)
		VALUES ($1, $2, $3)
	`, newUser.ID.String(), signInID.String(), hashedPassword.String())
	if err != nil {
		r.logger.WithError(err).Error("insert user authentication failed")
		return false
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.WithError(err).Error("commit user creation failed")
		return false
	}
	return true
}

// TryFindUserByID resolves a user row by id.
func (r *AccountRepository) TryFindUserByID(ctx context.Context, id entity.UserID) (entity.User, bool) {
	var (
		name         string
		registeredAt time.Time
	)
	row := r.pool.QueryRow(ctx, `
		SELECT name, registered_at
		FROM users
		WHERE id = $1
	`, id.String())
	if err := row.Scan(&name, &registeredAt); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.WithError(err).Error("read user by id failed")
		}
		return entity.UnknownUser, false
	}

	// The row was validated at registration; a name that no longer
	// passes validation means the row was tampered with.
	userName, ok := entity.NewUserName(name)
	if !ok {
		r.logger.WithField("user_id", id.String()).Error("stored user name is invalid")
		return entity.UnknownUser, false
	}
	return entity.UserFromStorage(id, userName, registeredAt.UTC()), true
}

// TryFindAuthentication resolves the credential registered for a
// sign-in identifier.
func (r *AccountRepository) TryFindAuthentication(ctx context.Context, signInID entity.SignInID) (entity.UserID, entity.StoredPassword, bool) {
	var (
		userIDValue string
		password    string
	)
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, password
		FROM user_authentications
		WHERE sign_in_id = $1
	`, signInID.String())
	if err := row.Scan(&userIDValue, &password); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.WithError(err).Error("read authentication failed")
		}
		return entity.EmptyUserID, entity.EmptyStoredPassword, false
	}

	userID, ok := entity.ParseUserID(userIDValue)
	if !ok {
		r.logger.WithField("user_id", userIDValue).Error("stored user id is invalid")
		return entity.EmptyUserID, entity.EmptyStoredPassword, false
	}
	return userID, entity.StoredPasswordFromString(password), true
}

var (
	_ repo.UserRepository           = (*AccountRepository)(nil)
	_ repo.AuthenticationRepository = (*AccountRepository)(nil)
)
