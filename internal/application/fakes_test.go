package application_test

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/soraho/account-api/internal/domain/entity"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// stubHasher derives a predictable value so tests can precompute the
// stored representation.
type stubHasher struct{}

func (stubHasher) Generate(owner entity.User, raw entity.RawPassword) string {
	return "hashed:" + raw.String()
}

type fakeAuthRepo struct {
	userID entity.UserID
	stored entity.StoredPassword
	found  bool

	calls       int
	gotSignInID entity.SignInID
}

func (f *fakeAuthRepo) TryFindAuthentication(_ context.Context, signInID entity.SignInID) (entity.UserID, entity.StoredPassword, bool) {
	f.calls++
	f.gotSignInID = signInID
	if !f.found {
		return entity.EmptyUserID, entity.EmptyStoredPassword, false
	}
	return f.userID, f.stored, true
}

type fakeUserRepo struct {
	user      entity.User
	userFound bool
	createOK  bool

	findCalls   int
	createCalls int

	gotCreatedUser entity.User
	gotSignInID    entity.SignInID
	gotHashed      entity.HashedPassword
}

func (f *fakeUserRepo) TryCreateUser(_ context.Context, newUser entity.User, signInID entity.SignInID, hashedPassword entity.HashedPassword) bool {
	f.createCalls++
	f.gotCreatedUser = newUser
	f.gotSignInID = signInID
	f.gotHashed = hashedPassword
	return f.createOK
}

func (f *fakeUserRepo) TryFindUserByID(_ context.Context, id entity.UserID) (entity.User, bool) {
	f.findCalls++
	if !f.userFound || id != f.user.ID {
		return entity.UnknownUser, false
	}
	return f.user, true
}

type fakeTokenIssuer struct {
	token string
	err   error

	calls     int
	gotUserID entity.UserID
}

func (f *fakeTokenIssuer) Issue(userID entity.UserID) (string, error) {
	f.calls++
	f.gotUserID = userID
	return f.token, f.err
}
