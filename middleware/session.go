package middleware

import (
	"encoding/json"
	"strconv"
	"time"

	"eduportal/config"
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v4"
)

// Fixed slot names of the session record.
const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
	keyUserEmail    = "userEmail"
	keyStudentID    = "studentId"
)

var store *session.Store

// InitSessionStore wires the session middleware. Passing nil storage keeps
// fiber's in-memory default, which the tests use.
func InitSessionStore(storage fiber.Storage) {
	cfg := session.Config{
		KeyLookup:      "cookie:" + config.AppConfig.SessionCookie,
		Expiration:     time.Duration(config.AppConfig.SessionTTLHrs) * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}
	if storage != nil {
		cfg.Storage = storage
	}
	store = session.New(cfg)
}

// SaveSession persists the whole session record in one write. Readers never
// observe a partially written session.
func SaveSession(c *fiber.Ctx, accessToken, refreshToken string, user models.User) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	sess.Set(keyAccessToken, accessToken)
	sess.Set(keyRefreshToken, refreshToken)
	sess.Set(keyUser, string(raw))
	sess.Set(keyUserEmail, user.Email)
	if user.Role == models.RoleStudent {
		sess.Set(keyStudentID, strconv.FormatUint(uint64(user.ID), 10))
	}
	return sess.Save()
}

// ClearSession destroys the session record. Clearing an already cleared
// session is a no-op.
func ClearSession(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// CurrentSession reads the persisted session without side effects. Anything
// unreadable fails closed to the logged-out session: a token without a valid
// user record must never surface as a logged-in state.
func CurrentSession(c *fiber.Ctx) models.Session {
	sess, err := store.Get(c)
	if err != nil {
		return models.Session{}
	}

	token, _ := sess.Get(keyAccessToken).(string)
	refresh, _ := sess.Get(keyRefreshToken).(string)
	raw, _ := sess.Get(keyUser).(string)
	if token == "" || raw == "" {
		return models.Session{}
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.Session{}
	}
	if user.ID == 0 || !models.ValidRole(user.Role) {
		return models.Session{}
	}
	if tokenExpired(token) {
		return models.Session{}
	}

	return models.Session{AccessToken: token, RefreshToken: refresh, User: &user}
}

// tokenExpired checks the exp claim of a stored access token without
// verifying the signature; verification is the remote API's job. Tokens that
// are not JWTs stay opaque and are trusted until the API rejects them.
func tokenExpired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
