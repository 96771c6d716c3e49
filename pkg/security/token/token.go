// Package token issues and verifies the signed identity tokens that
// propagate a caller's identity between services.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Handlers map all of them to a generic
// rejection; the split exists so logs and tests can tell them apart.
var (
	ErrNoToken        = errors.New("no token provided")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// Identity is the verified caller identity carried by a token.
type Identity struct {
	Email  string
	UserID string
}

// Claims carries the standard claim set plus the account identifier.
// Subject is the account email.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Codec signs and verifies identity tokens with a shared HMAC secret.
// Verification is stateless: only the secret and wall-clock time matter.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec issuing tokens valid for ttl.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given subject (email) and user id.
func (c *Codec) Issue(subject, userID string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Authenticate decodes, verifies the signature, and checks expiry in one
// step, returning the caller identity or a token error. It is the only
// entry point protected endpoints should trust.
func (c *Codec) Authenticate(tokenStr string) (Identity, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Identity{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrTokenExpired
		default:
			return Identity{}, ErrTokenInvalid
		}
	}
	if !tok.Valid {
		return Identity{}, ErrTokenInvalid
	}
	return Identity{Email: claims.Subject, UserID: claims.UserID}, nil
}

// VerifySubject reports whether the token is authentic, unexpired, and
// issued for exactly expectedSubject. It fails closed: any parse or
// signature problem yields false.
func (c *Codec) VerifySubject(tokenStr, expectedSubject string) bool {
	id, err := c.Authenticate(tokenStr)
	if err != nil {
		return false
	}
	return id.Email == expectedSubject
}

// ExtractSubject decodes the subject claim without verifying the
// signature or expiry. Callers must Authenticate before trusting it.
func (c *Codec) ExtractSubject(tokenStr string) (string, error) {
	claims, err := c.decodeUnverified(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractUserID decodes the user id claim without verifying the
// signature or expiry. Callers must Authenticate before trusting it.
func (c *Codec) ExtractUserID(tokenStr string) (string, error) {
	claims, err := c.decodeUnverified(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (c *Codec) decodeUnverified(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
