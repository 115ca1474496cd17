package entity

import "unicode/utf8"

// SignInID is the login identifier a user registers with. It must be
// unique across users; uniqueness is enforced by the repository.
type SignInID struct {
	value string
}

// NewSignInID accepts identifiers between 10 and 100 characters.
// Lengths count characters, not bytes.
func NewSignInID(value string) (SignInID, bool) {
	if n := utf8.RuneCountInString(value); n < 10 || n > 100 {
		return SignInID{}, false
	}
	return SignInID{value: value}, true
}

func (s SignInID) String() string { return s.value }

// RawPassword is the plaintext password as the user typed it. It exists
// only for the duration of a hashing or verification call and is never
// persisted.
type RawPassword struct {
	value string
}

// NewRawPassword accepts passwords of at least 10 characters. Lengths
// count characters, not bytes.
func NewRawPassword(value string) (RawPassword, bool) {
	if utf8.RuneCountInString(value) < 10 {
		return RawPassword{}, false
	}
	return RawPassword{value: value}, true
}

func (p RawPassword) String() string { return p.value }

// PasswordHasher derives the storable representation of a password.
// The owner's registration timestamp is part of the derivation, so the
// same user record must be supplied at hash time and verify time.
type PasswordHasher interface {
	Generate(owner User, raw RawPassword) string
}

// HashedPassword is a freshly derived password representation, created
// at registration.
type HashedPassword struct {
	value string
}

// HashFromRawPassword derives the storable form of raw for its owner.
func HashFromRawPassword(hasher PasswordHasher, raw RawPassword, owner User) HashedPassword {
	return HashedPassword{value: hasher.Generate(owner, raw)}
}

func (p HashedPassword) String() string { return p.value }

// StoredPassword is a password representation loaded back from storage.
// It is never reversed; the only allowed operation is comparison against
// a re-derived hash.
type StoredPassword struct {
	value string
}

var EmptyStoredPassword = StoredPassword{}

func StoredPasswordFromString(value string) StoredPassword {
	return StoredPassword{value: value}
}

func (p StoredPassword) String() string { return p.value }

// Verify re-derives the hash from the candidate password and the owner
// record, then compares the encoded strings for exact equality.
func (p StoredPassword) Verify(hasher PasswordHasher, raw RawPassword, owner User) bool {
	candidate := HashFromRawPassword(hasher, raw, owner)
	return p.value == candidate.value
}
