package sdk

import (
	"context"
	"net/http"
)

// LoginInput are the credentials submitted to POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the role-dependent payload of POST /auth/register.
// Doctors must supply a specialization; the extra practice fields are
// optional for them and ignored for everyone else.
type RegisterInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           Role   `json:"role" validate:"required,oneof=admin doctor patient"`
	Specialization string `json:"specialization,omitempty" validate:"required_if=Role doctor"`
	Experience     int    `json:"experience,omitempty" validate:"gte=0"`
	Education      string `json:"education,omitempty"`
	Description    string `json:"description,omitempty"`
}

// identityEnvelope is the { user: ... } wrapper every auth endpoint uses.
type identityEnvelope struct {
	User *Identity `json:"user"`
}

// Me asks the backend who the current caller is. Any non-2xx response means
// "no session" and surfaces as an error.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var env identityEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

// Login submits credentials and returns the authenticated identity. The
// session cookie lands in the client's jar as a side effect.
func (c *Client) Login(ctx context.Context, input LoginInput) (*Identity, error) {
	if err := c.checkInput(input); err != nil {
		return nil, err
	}
	var env identityEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, input, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

// Register creates an account and signs it in, with the same contract as
// Login. Role defaults to patient when left empty.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*Identity, error) {
	if input.Role == "" {
		input.Role = RolePatient
	}
	if err := c.checkInput(input); err != nil {
		return nil, err
	}
	var env identityEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, input, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

// Logout invalidates the server-side session. Callers treat any response as
// success for local-state purposes.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
