package anubis

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const principalKeyPrefix = "principal:"

// endpoint joins BaseURL and IntrospectPath. An absolute IntrospectPath wins.
func (c Config) endpoint() string {
	base := strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	path := strings.TrimSpace(c.IntrospectPath)
	switch {
	case path == "":
		return base
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	case !strings.HasPrefix(path, "/"):
		path = "/" + path
	}
	return base + path
}

// principalKey never stores the raw token.
func principalKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return principalKeyPrefix + hex.EncodeToString(sum[:])
}

// statusError classifies a non-200 introspection status. Only transient
// statuses count against the circuit.
func statusError(code int) error {
	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case code == http.StatusForbidden:
		// the admin key was refused, not the caller's token
		return fmt.Errorf("%w: anubis rejected admin key", usecase.ErrDependencyUnavailable)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return crerr.Mark(crerr.Newf("anubis introspection status %d", code), errAnubisTransient)
	default:
		return crerr.Newf("anubis introspection failed with status %d", code)
	}
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errAnubisTransient)
}
