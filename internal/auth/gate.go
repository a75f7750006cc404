// Package auth implements the admin gate on booking mutations: exchanging the
// admin credential for a token and authorizing requests that carry either a
// live token cookie or the admin basic-auth header.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenLength is the number of hex characters in a minted token.
const TokenLength = 15

// ErrBadCredentials is returned by Exchange when the username or password
// does not match the admin credential.
var ErrBadCredentials = errors.New("bad credentials")

// Gate checks admin credentials and tokens.
type Gate struct {
	username     string
	passwordHash []byte
	basicHeader  string
	tokens       TokenStore
}

// NewGate builds a Gate for the single admin credential pair. The password is
// held only as a bcrypt hash.
func NewGate(username, password string, tokens TokenStore) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.NewGate: hash password: %w", err)
	}
	return &Gate{
		username:     username,
		passwordHash: hash,
		basicHeader:  "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)),
		tokens:       tokens,
	}, nil
}

// Exchange trades the admin credential for a freshly minted live token.
// Returns ErrBadCredentials for any other pair.
func (g *Gate) Exchange(ctx context.Context, username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) != 1 {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		return "", ErrBadCredentials
	}

	token := newToken()
	if err := g.tokens.Issue(ctx, token); err != nil {
		return "", fmt.Errorf("auth.Gate.Exchange: %w", err)
	}
	return token, nil
}

// Authorize reports whether a request may mutate bookings: either the cookie
// token is live or the Authorization header is exactly the admin basic-auth
// value.
func (g *Gate) Authorize(ctx context.Context, cookieToken, authorization string) bool {
	if cookieToken != "" && g.tokens.Validate(ctx, cookieToken) {
		return true
	}
	return authorization != "" &&
		subtle.ConstantTimeCompare([]byte(authorization), []byte(g.basicHeader)) == 1
}

// newToken returns TokenLength lowercase hex characters taken from the random
// bytes of a v4 UUID. Bytes 6 and 8 carry the fixed version and variant bits
// and are skipped.
func newToken() string {
	u := uuid.New()
	return (hex.EncodeToString(u[:6]) + hex.EncodeToString(u[9:]))[:TokenLength]
}
