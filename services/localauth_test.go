package services_test

import (
	"context"
	"testing"

	"taskmanager/model"
	"taskmanager/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAuth_SignUpPublishesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	auth := services.NewLocalAuth()

	var got []*model.Identity
	unsubscribe := auth.SubscribeIdentity(func(identity *model.Identity) {
		got = append(got, identity)
	})
	defer unsubscribe()

	require.Len(t, got, 1, "subscribe must fire immediately with current state")
	assert.Nil(t, got[0])

	err := auth.SignUpEmail(context.Background(), "user@example.com", "Abcd1234")
	require.NoError(t, err)

	require.Len(t, got, 2)
	require.NotNil(t, got[1])
	assert.Equal(t, "user@example.com", got[1].Email)
	assert.NotEmpty(t, got[1].UID)

	claims, err := services.ParseIdentityToken(got[1].IDToken)
	require.NoError(t, err)
	assert.Equal(t, got[1].UID, claims.UID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestLocalAuth_DuplicateSignup(t *testing.T) {
	auth := services.NewLocalAuth()
	ctx := context.Background()

	require.NoError(t, auth.SignUpEmail(ctx, "user@example.com", "Abcd1234"))
	err := auth.SignUpEmail(ctx, "user@example.com", "Other1234")
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
}

func TestLocalAuth_SignInEmail(t *testing.T) {
	auth := services.NewLocalAuth()
	ctx := context.Background()
	require.NoError(t, auth.SignUpEmail(ctx, "user@example.com", "Abcd1234"))
	require.NoError(t, auth.SignOut(ctx))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "correct credentials", email: "user@example.com", password: "Abcd1234"},
		{name: "wrong password", email: "user@example.com", password: "nope", wantErr: services.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: "Abcd1234", wantErr: services.ErrInvalidCredentials},
		{name: "empty submission", email: "", password: "", wantErr: services.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.SignInEmail(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLocalAuth_SignOutClearsIdentity(t *testing.T) {
	auth := services.NewLocalAuth()
	ctx := context.Background()
	require.NoError(t, auth.SignUpEmail(ctx, "user@example.com", "Abcd1234"))

	require.NoError(t, auth.SignOut(ctx))

	var current *model.Identity
	unsubscribe := auth.SubscribeIdentity(func(identity *model.Identity) {
		current = identity
	})
	defer unsubscribe()
	assert.Nil(t, current)
}

func TestLocalAuth_SignInFederated(t *testing.T) {
	auth := services.NewLocalAuth()
	ctx := context.Background()

	var current *model.Identity
	unsubscribe := auth.SubscribeIdentity(func(identity *model.Identity) {
		current = identity
	})
	defer unsubscribe()

	require.NoError(t, auth.SignInFederated(ctx))
	require.NotNil(t, current)
	assert.Equal(t, "dev@taskmanager.local", current.Email)
	firstUID := current.UID

	// Repeat sign-ins resolve to the same auto-provisioned account.
	require.NoError(t, auth.SignOut(ctx))
	require.NoError(t, auth.SignInFederated(ctx))
	require.NotNil(t, current)
	assert.Equal(t, firstUID, current.UID)
}

func TestIdentityHub_Unsubscribe(t *testing.T) {
	auth := services.NewLocalAuth()
	ctx := context.Background()

	calls := 0
	unsubscribe := auth.SubscribeIdentity(func(*model.Identity) { calls++ })
	require.Equal(t, 1, calls)

	unsubscribe()
	require.NoError(t, auth.SignUpEmail(ctx, "user@example.com", "Abcd1234"))
	assert.Equal(t, 1, calls, "no deliveries after unsubscribe")
}
