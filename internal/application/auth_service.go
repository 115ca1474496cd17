package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/soraho/account-api/internal/domain/entity"
	repo "github.com/soraho/account-api/internal/domain/repository"
)

// TokenIssuer signs a time-limited identity assertion for a user.
// Exactly one production implementation exists; test doubles substitute
// for it in the use-case tests.
type TokenIssuer interface {
	Issue(userID entity.UserID) (string, error)
}

// AuthService owns the sign-in use case.
type AuthService struct {
	Hasher      entity.PasswordHasher
	TokenIssuer TokenIssuer
	AuthRepo    repo.AuthenticationRepository
	UserRepo    repo.UserRepository
	Logger      *logrus.Logger
}

func NewAuthService(hasher entity.PasswordHasher, issuer TokenIssuer, authRepo repo.AuthenticationRepository, userRepo repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Hasher:      hasher,
		TokenIssuer: issuer,
		AuthRepo:    authRepo,
		UserRepo:    userRepo,
		Logger:      logger,
	}
}

// SignIn verifies a credential and issues an access token.
//
// Shape validation always precedes repository access, so malformed
// input never triggers a lookup. An unknown identifier and a wrong
// password both come back as a validation error; a more granular signal
// would leak which accounts exist.
func (s *AuthService) SignIn(ctx context.Context, signInIDValue, rawPasswordValue string) (ResultType, string) {
	signInID, signInIDOK := entity.NewSignInID(signInIDValue)
	rawPassword, rawPasswordOK := entity.NewRawPassword(rawPasswordValue)
	if !signInIDOK || !rawPasswordOK {
		return ResultValidationError, ""
	}

	userID, storedPassword, found := s.AuthRepo.TryFindAuthentication(ctx, signInID)
	if !found {
		s.Logger.Debug("sign-in rejected: unknown identifier")
		return ResultValidationError, ""
	}

	// A credential row pointing at a missing user is a data-integrity
	// fault, always a server-side problem.
	user, found := s.UserRepo.TryFindUserByID(ctx, userID)
	if !found {
		s.Logger.WithField("user_id", userID.String()).Error("credential references missing user")
		return ResultInternalError, ""
	}

	if !storedPassword.Verify(s.Hasher, rawPassword, user) {
		s.Logger.WithField("user_id", userID.String()).Debug("sign-in rejected: password mismatch")
		return ResultValidationError, ""
	}

	accessToken, err := s.TokenIssuer.Issue(user.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", user.ID.String()).Error("access token issuance failed")
		return ResultInternalError, ""
	}

	return ResultSuccess, accessToken
}
