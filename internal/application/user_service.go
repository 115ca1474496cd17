package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/soraho/account-api/internal/domain/entity"
	repo "github.com/soraho/account-api/internal/domain/repository"
)

// UserService owns the registration and user-resolution use cases.
type UserService struct {
	Repo     repo.UserRepository
	AuthRepo repo.AuthenticationRepository
	Hasher   entity.PasswordHasher
	Logger   *logrus.Logger
}

func NewUserService(userRepo repo.UserRepository, authRepo repo.AuthenticationRepository, hasher entity.PasswordHasher, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:     userRepo,
		AuthRepo: authRepo,
		Hasher:   hasher,
		Logger:   logger,
	}
}

// Register validates the three fields, checks identifier uniqueness,
// then creates the user and its credential atomically.
//
// Validation is exhaustive: the returned RegisterValidation judges every
// field even when several are invalid, so the caller can render
// per-field diagnostics in one round trip.
func (s *UserService) Register(ctx context.Context, userNameValue, signInIDValue, rawPasswordValue string) (ResultType, RegisterValidation) {
	userName, userNameOK := entity.NewUserName(userNameValue)
	signInID, signInIDOK := entity.NewSignInID(signInIDValue)
	rawPassword, rawPasswordOK := entity.NewRawPassword(rawPasswordValue)

	validation := RegisterValidation{
		UserNameOK:    userNameOK,
		SignInIDOK:    signInIDOK,
		RawPasswordOK: rawPasswordOK,
	}
	if !userNameOK || !signInIDOK || !rawPasswordOK {
		return ResultValidationError, validation
	}

	// The identifier must be unique across users. A concurrent
	// registration can still slip past this check; the unique
	// constraint on the credential table is the final authority and a
	// losing insert surfaces below as an internal error.
	if _, _, exists := s.AuthRepo.TryFindAuthentication(ctx, signInID); exists {
		validation.SignInIDOK = false
		return ResultValidationError, validation
	}

	newUser := entity.NewUser(userName)
	hashedPassword := entity.HashFromRawPassword(s.Hasher, rawPassword, newUser)

	if !s.Repo.TryCreateUser(ctx, newUser, signInID, hashedPassword) {
		// Input was fine; the failure is not attributable to the caller.
		s.Logger.WithField("user_id", newUser.ID.String()).Error("user registration persist failed")
		return ResultInternalError, validation
	}

	return ResultSuccess, validation
}

// GetUser resolves a user by id. The id comes from a verified access
// token, so a missing row is a data-integrity fault, not caller input.
func (s *UserService) GetUser(ctx context.Context, id entity.UserID) (ResultType, entity.User) {
	user, found := s.Repo.TryFindUserByID(ctx, id)
	if !found {
		s.Logger.WithField("user_id", id.String()).Error("user lookup failed for authenticated id")
		return ResultInternalError, entity.UnknownUser
	}
	return ResultSuccess, user
}
