package authctx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoIdentity = errors.New("no authenticated identity in context")

// Principal is the identity assertion extracted from a verified access token:
// an opaque subject plus optional display metadata. This is the only thing
// the core ever learns about the authentication layer.
type Principal struct {
	Subject string
	Email   string
	Name    string
	Image   string
}

// FromContext extracts the authenticated principal from JWT claims placed in
// Fiber locals by the auth middleware. Returns ErrNoIdentity when the request
// carries no valid token.
func FromContext(c *fiber.Ctx) (Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Principal{}, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrNoIdentity
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Principal{}, ErrNoIdentity
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	image, _ := claims["image"].(string)

	return Principal{Subject: sub, Email: email, Name: name, Image: image}, nil
}

// Subject returns just the auth subject from the request context.
func Subject(c *fiber.Ctx) (string, error) {
	p, err := FromContext(c)
	if err != nil {
		return "", err
	}
	return p.Subject, nil
}
