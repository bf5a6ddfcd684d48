package user

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
)

const (
	CookieName = "token"
	LoginPath  = "/login"
)

// Tokens signs and verifies the HS256 session tokens of the admin.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Sign(user User, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = t.ttl
	}
	expires := t.now().Add(ttl)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     expires.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Parse returns the user id carried by a valid token.
func (t *Tokens) Parse(raw string) (int, error) {
	if raw == "" {
		return 0, fiber.ErrUnauthorized
	}
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, fiber.ErrUnauthorized
	}
	return userIDFromClaims(tok)
}

// Middleware guards the admin area. Page visits without a valid cookie are
// sent to the login page, JSON clients get 401.
func (t *Tokens) Middleware(pages *inertia.Renderer) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  t.secret,
		TokenLookup: "cookie:" + CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if inertia.WantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthenticated."})
			}
			return pages.Location(c, LoginPath)
		},
	})
}

// GetUserIDFromCtx extracts the user_id claim from the JWT token stored
// in `c.Locals("user")` by the admin middleware.
func GetUserIDFromCtx(c *fiber.Ctx) (int, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	return userIDFromClaims(tok)
}

func userIDFromClaims(tok *jwt.Token) (int, error) {
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := claims["user_id"].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fiber.ErrUnauthorized
		}
		return id, nil
	default:
		return 0, fiber.ErrUnauthorized
	}
}
