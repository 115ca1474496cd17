package crypto

import (
	"crypto/sha512"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	"github.com/soraho/account-api/internal/domain/entity"
)

const (
	// Iteration count for the key derivation. Fixed; changing it
	// invalidates every stored password.
	iterations = 310000
	// 512-bit derived key.
	keyLength = 64
	// Layout for the salt taken from the owner's registration
	// timestamp. The formatted string must match at hash time and
	// verify time down to the second.
	saltTimeLayout = "20060102150405"
)

// PBKDF2Hasher derives storable passwords with PBKDF2-SHA512. The salt
// is the owner's registration timestamp concatenated with a
// process-wide secret pepper loaded once at startup.
type PBKDF2Hasher struct {
	pepper []byte
}

func NewPBKDF2Hasher(pepper string) *PBKDF2Hasher {
	return &PBKDF2Hasher{pepper: []byte(pepper)}
}

// Generate derives the base64-encoded storable representation of raw.
// It is a pure function of its inputs and the pepper; it cannot fail.
func (h *PBKDF2Hasher) Generate(owner entity.User, raw entity.RawPassword) string {
	salt := append([]byte(owner.RegisteredAt.Format(saltTimeLayout)), h.pepper...)
	key := pbkdf2.Key([]byte(raw.String()), salt, iterations, keyLength, sha512.New)
	return base64.StdEncoding.EncodeToString(key)
}

var _ entity.PasswordHasher = (*PBKDF2Hasher)(nil)
