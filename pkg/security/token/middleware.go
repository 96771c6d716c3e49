package token

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by the middleware on successful authentication.
const (
	LocalUserID = "userId"
	LocalEmail  = "email"
)

const bearerPrefix = "Bearer "

// rejection mirrors the response envelope used by the resource
// handlers. Declared locally so this package does not depend on the
// HTTP presentation layer.
type rejection struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func reject(c *fiber.Ctx, err error) error {
	msg := err.Error()
	return c.Status(http.StatusUnauthorized).JSON(rejection{Error: &msg})
}

// NewAuthMiddleware returns a Fiber middleware that authenticates the
// Authorization header. A missing or non-Bearer header is rejected as
// "no token provided", distinct from a token that fails verification.
// On success the caller's email and user id are stored in c.Locals.
func NewAuthMiddleware(codec *Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return reject(c, ErrNoToken)
		}
		id, err := codec.Authenticate(tokenStr)
		if err != nil {
			return reject(c, err)
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalEmail, id.Email)
		return c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The Bearer prefix is required.
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(bearerPrefix):])
	if tok == "" {
		return "", false
	}
	return tok, true
}
