package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/soraho/account-api/internal/domain/entity"
)

// Access tokens live for one hour from issuance.
const accessTokenTTL = time.Hour

var (
	// ErrTokenMalformed is returned when the compact form cannot be
	// decoded at all.
	ErrTokenMalformed = errors.New("token: malformed token")
	// ErrSubjectMissing is returned when the token carries no subject
	// claim.
	ErrSubjectMissing = errors.New("token: subject claim missing")
	// ErrSubjectMalformed is returned when the subject claim is not a
	// valid user id.
	ErrSubjectMalformed = errors.New("token: subject claim malformed")
)

// Issuer signs and reads compact access tokens. The signing key, issuer
// and audience are fixed per deployment and loaded once at startup.
type Issuer struct {
	signingKey []byte
	issuer     string
	audience   string
}

func NewIssuer(signingKey, issuer, audience string) *Issuer {
	return &Issuer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
	}
}

// Issue signs a token asserting the given user id. The jti claim makes
// every token unique.
func (i *Issuer) Issue(userID entity.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        uuid.NewString(),
		Issuer:    i.issuer,
		Audience:  jwt.ClaimStrings{i.audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.signingKey)
}

// ParseUserID recovers the subject user id from a compact token without
// verifying signature or expiry; the auth middleware owns verification.
func (i *Issuer) ParseUserID(tokenString string) (entity.UserID, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return entity.EmptyUserID, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	if claims.Subject == "" {
		return entity.EmptyUserID, ErrSubjectMissing
	}
	userID, ok := entity.ParseUserID(claims.Subject)
	if !ok {
		return entity.EmptyUserID, fmt.Errorf("%w: %q", ErrSubjectMalformed, claims.Subject)
	}
	return userID, nil
}

// Verify fully validates a compact token (signature, expiry, issuer,
// audience) and returns its subject user id.
func (i *Issuer) Verify(tokenString string) (entity.UserID, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return i.signingKey, nil
		},
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return entity.EmptyUserID, err
	}
	userID, ok := entity.ParseUserID(claims.Subject)
	if !ok {
		return entity.EmptyUserID, fmt.Errorf("%w: %q", ErrSubjectMalformed, claims.Subject)
	}
	return userID, nil
}
