package muxhandlers

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/wasmgate/canhttp/mux"
)

// BasicAuthConfig configures the BasicAuth gate.
type BasicAuthConfig struct {
	// Username and Password are the expected credentials.
	Username string
	Password string

	// Realm is advertised in the WWW-Authenticate challenge.
	// Defaults to "Restricted".
	Realm string
}

// BasicAuth wraps a handler behind HTTP basic authentication
// (RFC 7617). Credentials compare in constant time. Requests without
// valid credentials answer 401 with a WWW-Authenticate challenge.
func BasicAuth(cfg BasicAuthConfig, next mux.Handler) mux.Handler {
	realm := cfg.Realm
	if realm == "" {
		realm = "Restricted"
	}

	return mux.HandlerFunc(func(ctx context.Context, req *mux.Request) (*mux.Response, error) {
		if username, password, ok := decodeBasicAuth(req); ok {
			userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username))
			passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password))
			if userMatch&passMatch == 1 {
				return next.Handle(ctx, req)
			}
		}

		res := mux.NewResponse(401, mux.JSON(map[string]any{
			"statusCode": 401,
			"message":    "Unauthorized",
		}))
		res.SetHeader("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
		return nil, &mux.Error{Response: res}
	})
}

// decodeBasicAuth extracts the credentials from the Authorization
// header. The scheme token compares case-insensitively per RFC 7235
// Section 2.1.
func decodeBasicAuth(req *mux.Request) (username, password string, ok bool) {
	value, found := req.Header("Authorization")
	if !found {
		return "", "", false
	}

	const scheme = "Basic "
	if len(value) < len(scheme) || !strings.EqualFold(value[:len(scheme)], scheme) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(value[len(scheme):])
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(decoded), ":")
}
