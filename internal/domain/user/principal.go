package user

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid access token")

// Principal is the authenticated caller as reported by the identity provider.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

// Verifier resolves a bearer token into a principal.
type Verifier interface {
	VerifyAccessToken(ctx context.Context, token string) (Principal, error)
}

// StaticVerifier serves a fixed token table. It is meant for local runs
// without an identity provider.
type StaticVerifier struct {
	tokens map[string]Principal
}

// NewStaticVerifier parses "token:user_id" pairs; malformed pairs are skipped.
func NewStaticVerifier(pairs []string) *StaticVerifier {
	tokens := make(map[string]Principal, len(pairs))
	for _, pair := range pairs {
		token, userID, ok := strings.Cut(strings.TrimSpace(pair), ":")
		token = strings.TrimSpace(token)
		userID = strings.TrimSpace(userID)
		if !ok || token == "" || userID == "" {
			continue
		}
		tokens[token] = Principal{UserID: userID}
	}
	return &StaticVerifier{tokens: tokens}
}

func (v *StaticVerifier) VerifyAccessToken(_ context.Context, token string) (Principal, error) {
	principal, ok := v.tokens[strings.TrimSpace(token)]
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	return principal, nil
}

func (v *StaticVerifier) Len() int {
	return len(v.tokens)
}
