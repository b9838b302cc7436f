package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionAdminKey is the session flag set only by the in-chat admin
// credential probe. All /admin routes are gated on it.
const SessionAdminKey = "admin_authenticated"

var sessionStore = session.New(session.Config{
	Expiration:     24 * time.Hour,
	CookieHTTPOnly: true,
	CookieSameSite: "Lax",
})

// GetSession returns the browser session for the request, creating one on
// first contact.
func GetSession(ctx *fiber.Ctx) (*session.Session, error) {
	return sessionStore.Get(ctx)
}

// AdminSessionMiddleware fails closed with a bare 401 unless the session was
// admin-authenticated through the chat probe.
func AdminSessionMiddleware(ctx *fiber.Ctx) error {
	sess, err := sessionStore.Get(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	if authed, ok := sess.Get(SessionAdminKey).(bool); !ok || !authed {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return ctx.Next()
}
