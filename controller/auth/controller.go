package auth

import (
	"context"
	"sync"
	"unicode"

	"taskmanager/logger"
	"taskmanager/services"
)

type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

const (
	msgLoginFailed    = "Login failed. Please check your email and password."
	msgSignupFailed   = "Signup failed. Please check your email and password."
	msgPasswordPolicy = "Password must be at least 8 characters long, include an uppercase letter, and a number."
	msgPasswordMatch  = "Passwords do not match."
)

// Controller owns the login/signup modal: visibility, mode, form fields and
// the single-slot error message. All remote calls are fire-and-forget; a
// failure replaces whatever error was showing before.
type Controller struct {
	mu   sync.Mutex
	auth services.AuthService

	visible  bool
	mode     Mode
	email    string
	password string
	confirm  string
	errMsg   string
}

func NewController(auth services.AuthService) *Controller {
	return &Controller{auth: auth, mode: ModeLogin}
}

func (c *Controller) OpenModal(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = true
	c.mode = mode
	c.errMsg = ""
}

func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
	c.resetFormLocked()
}

func (c *Controller) SwitchMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mode == c.mode {
		return
	}
	c.mode = mode
	c.resetFormLocked()
}

// SubmitLogin passes the fields through unvalidated; an empty submission is
// the collaborator's to reject. On failure the password is retained so the
// user can retry.
func (c *Controller) SubmitLogin(ctx context.Context, email, password string) {
	c.mu.Lock()
	c.email = email
	c.password = password
	c.mu.Unlock()

	err := c.auth.SignInEmail(ctx, email, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		logger.Error("Email login error", err)
		c.errMsg = msgLoginFailed
		return
	}
	c.visible = false
	c.resetFormLocked()
}

// SubmitSignup validates locally, in order, before contacting the
// collaborator: password policy first, then confirmation match.
func (c *Controller) SubmitSignup(ctx context.Context, email, password, confirmPassword string) {
	c.mu.Lock()
	c.email = email
	c.password = password
	c.confirm = confirmPassword

	if !validPassword(password) {
		c.errMsg = msgPasswordPolicy
		c.mu.Unlock()
		return
	}
	if password != confirmPassword {
		c.errMsg = msgPasswordMatch
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	err := c.auth.SignUpEmail(ctx, email, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		logger.Error("Signup error", err)
		c.errMsg = msgSignupFailed
		return
	}
	c.visible = false
	c.resetFormLocked()
}

// LoginWithProvider failures are log-only: the modal stays open with no
// user-facing message.
func (c *Controller) LoginWithProvider(ctx context.Context) {
	if err := c.auth.SignInFederated(ctx); err != nil {
		logger.Error("Provider login error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
	c.resetFormLocked()
}

func (c *Controller) Logout(ctx context.Context) {
	// Session state clears via the identity stream; nothing local to mutate.
	if err := c.auth.SignOut(ctx); err != nil {
		logger.Error("Logout error", err)
	}
}

// ModalView is the modal's renderable state. Password fields stay out of it.
type ModalView struct {
	Visible bool   `json:"visible"`
	Mode    Mode   `json:"mode"`
	Email   string `json:"email"`
	Error   string `json:"error,omitempty"`
}

func (c *Controller) View() ModalView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ModalView{
		Visible: c.visible,
		Mode:    c.mode,
		Email:   c.email,
		Error:   c.errMsg,
	}
}

func (c *Controller) resetFormLocked() {
	c.email = ""
	c.password = ""
	c.confirm = ""
	c.errMsg = ""
}

// validPassword: at least 8 characters, letters and digits only, with at
// least one uppercase letter and one digit.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
		default:
			return false
		}
	}
	return hasUpper && hasDigit
}
