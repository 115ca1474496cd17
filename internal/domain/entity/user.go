package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// UserID identifies a registered user. The zero uuid acts as the
// not-found sentinel, never as a real identity.
type UserID struct {
	value uuid.UUID
}

var EmptyUserID = UserID{}

func NewUserID() UserID {
	return UserID{value: uuid.New()}
}

// ParseUserID builds a UserID from its string form (e.g. a token subject claim).
func ParseUserID(s string) (UserID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return EmptyUserID, false
	}
	return UserID{value: id}, true
}

func (id UserID) String() string { return id.value.String() }

func (id UserID) IsEmpty() bool { return id.value == uuid.Nil }

// UserName is a display name. Construction is the only way to obtain a
// valid instance; an invalid string never produces one.
type UserName struct {
	value string
}

var EmptyUserName = UserName{}

// NewUserName accepts names that are not empty (ignoring whitespace-only
// input) and at most 50 characters long. Lengths count characters, not
// bytes, so multibyte names are measured as typed. No trimming is
// applied.
func NewUserName(value string) (UserName, bool) {
	if strings.TrimSpace(value) == "" || utf8.RuneCountInString(value) > 50 {
		return UserName{}, false
	}
	return UserName{value: value}, true
}

func (n UserName) String() string { return n.value }

// User is the aggregate root of the account domain. RegisteredAt doubles
// as the per-user hash salt, so it must survive a round trip through
// storage with second precision intact.
type User struct {
	ID           UserID
	Name         UserName
	RegisteredAt time.Time
}

var UnknownUser = User{ID: EmptyUserID, Name: EmptyUserName}

// NewUser creates a fresh aggregate at registration time. The timestamp
// is truncated to whole seconds so the stored row reproduces the exact
// salt used at hash time.
func NewUser(name UserName) User {
	return User{
		ID:           NewUserID(),
		Name:         name,
		RegisteredAt: time.Now().UTC().Truncate(time.Second),
	}
}

// UserFromStorage rebuilds the aggregate from a persisted row.
func UserFromStorage(id UserID, name UserName, registeredAt time.Time) User {
	return User{ID: id, Name: name, RegisteredAt: registeredAt}
}

// Equal compares users by identity only.
func (u User) Equal(other User) bool { return u.ID == other.ID }
