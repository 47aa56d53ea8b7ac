package middleware

import (
	"context"
	"strings"

	"wedding-invite/pkg/errors"
	"wedding-invite/pkg/response"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// HostMiddleware guards the couple's endpoints. Guests never authenticate;
// hosts present a Firebase ID token and must be on the configured allowlist.
type HostMiddleware struct {
	authClient *auth.Client
	hostUIDs   map[string]bool
}

func NewHostMiddleware(authClient *auth.Client, hostUIDs []string) *HostMiddleware {
	uids := make(map[string]bool, len(hostUIDs))
	for _, uid := range hostUIDs {
		uids[uid] = true
	}
	return &HostMiddleware{
		authClient: authClient,
		hostUIDs:   uids,
	}
}

func (m *HostMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		token, err := m.authClient.VerifyIDToken(context.Background(), parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		if !m.hostUIDs[token.UID] {
			return response.Error(c, errors.Forbidden("Host access only", nil))
		}

		c.Set("uid", token.UID)
		return next(c)
	}
}
