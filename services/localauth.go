package services

import (
	"context"
	"errors"
	"os"
	"sync"

	"taskmanager/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailRegistered    = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type localUser struct {
	uid          string
	email        string
	passwordHash []byte
}

// LocalAuth is the in-process auth backend: accounts live in memory, passwords
// are bcrypt-hashed and identities carry a locally minted token. It backs
// tests and the "memory" backend switch.
type LocalAuth struct {
	identityHub

	mu    sync.Mutex
	users map[string]localUser

	// federatedEmail is the account SignInFederated resolves to, created on
	// first use the same way a provider sign-in auto-provisions one.
	federatedEmail string
}

func NewLocalAuth() *LocalAuth {
	federated := os.Getenv("LOCAL_FEDERATED_EMAIL")
	if federated == "" {
		federated = "dev@taskmanager.local"
	}
	return &LocalAuth{
		users:          make(map[string]localUser),
		federatedEmail: federated,
	}
}

func (a *LocalAuth) SignUpEmail(ctx context.Context, email, password string) error {
	a.mu.Lock()
	if _, exists := a.users[email]; exists {
		a.mu.Unlock()
		return ErrEmailRegistered
	}
	a.mu.Unlock()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := localUser{
		uid:          uuid.New().String(),
		email:        email,
		passwordHash: hashedPassword,
	}

	a.mu.Lock()
	a.users[email] = user
	a.mu.Unlock()

	return a.signIn(user)
}

func (a *LocalAuth) SignInEmail(ctx context.Context, email, password string) error {
	a.mu.Lock()
	user, exists := a.users[email]
	a.mu.Unlock()
	if !exists {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return a.signIn(user)
}

func (a *LocalAuth) SignInFederated(ctx context.Context) error {
	a.mu.Lock()
	user, exists := a.users[a.federatedEmail]
	if !exists {
		user = localUser{
			uid:   uuid.New().String(),
			email: a.federatedEmail,
		}
		a.users[a.federatedEmail] = user
	}
	a.mu.Unlock()

	return a.signIn(user)
}

func (a *LocalAuth) SignOut(ctx context.Context) error {
	a.publish(nil)
	return nil
}

func (a *LocalAuth) signIn(user localUser) error {
	token, err := CreateIdentityToken(user.uid, user.email)
	if err != nil {
		return err
	}
	a.publish(&model.Identity{UID: user.uid, Email: user.email, IDToken: token})
	return nil
}

var _ AuthService = (*LocalAuth)(nil)
