// middleware/session.go
package middleware

import (
	"time"

	"findly/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionUser is the denormalized snapshot of the logged-in user carried in
// the server-side session. It is written only by the user handlers (login,
// signup, profile update) and may drift from the users table until the next
// login or update — there is no automatic re-sync.
type SessionUser struct {
	ID      uint
	Name    string
	Email   string
	Pass    string // bcrypt hash, mirrors the stored column
	Points  int64
	Rewards string
}

func NewSessionStore() *session.Store {
	return session.New(session.Config{
		Expiration:     12 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// UserLoader puts the session's user snapshot (if any) into c.Locals("user")
// so page handlers and templates can read it without touching the store.
func UserLoader(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Next()
		}
		if u := userFromSession(sess); u != nil {
			c.Locals("user", u)
		}
		return c.Next()
	}
}

// SetSessionUser overwrites the session snapshot from a user record.
func SetSessionUser(sess *session.Session, u *models.User) error {
	sess.Set("user_id", u.ID)
	sess.Set("user_name", u.Name)
	sess.Set("user_email", u.Email)
	sess.Set("user_pass", u.Password)
	sess.Set("user_points", u.Points)
	sess.Set("user_rewards", u.Rewards)
	return sess.Save()
}

func userFromSession(sess *session.Session) *SessionUser {
	id, ok := sess.Get("user_id").(uint)
	if !ok {
		return nil
	}
	u := &SessionUser{ID: id}
	u.Name, _ = sess.Get("user_name").(string)
	u.Email, _ = sess.Get("user_email").(string)
	u.Pass, _ = sess.Get("user_pass").(string)
	u.Points, _ = sess.Get("user_points").(int64)
	u.Rewards, _ = sess.Get("user_rewards").(string)
	return u
}
