package session_test

import (
	"context"
	"testing"

	"taskmanager/model"
	"taskmanager/services"
	"taskmanager/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RepublishesIdentity(t *testing.T) {
	auth := services.NewLocalAuth()
	state := session.Watch(auth)
	defer state.Close()

	assert.Nil(t, state.Current())

	var got []*model.Identity
	unsubscribe := state.Subscribe(func(identity *model.Identity) {
		got = append(got, identity)
	})
	defer unsubscribe()
	require.Len(t, got, 1, "subscribe fires immediately")
	assert.Nil(t, got[0])

	ctx := context.Background()
	require.NoError(t, auth.SignUpEmail(ctx, "user@example.com", "Abcd1234"))

	require.Len(t, got, 2)
	require.NotNil(t, got[1])
	assert.Equal(t, "user@example.com", got[1].Email)
	require.NotNil(t, state.Current())
	assert.Equal(t, got[1].UID, state.Current().UID)

	require.NoError(t, auth.SignOut(ctx))
	require.Len(t, got, 3)
	assert.Nil(t, got[2])
	assert.Nil(t, state.Current())
}

func TestState_Unsubscribe(t *testing.T) {
	auth := services.NewLocalAuth()
	state := session.Watch(auth)
	defer state.Close()

	calls := 0
	unsubscribe := state.Subscribe(func(*model.Identity) { calls++ })
	require.Equal(t, 1, calls)
	unsubscribe()

	require.NoError(t, auth.SignUpEmail(context.Background(), "user@example.com", "Abcd1234"))
	assert.Equal(t, 1, calls)
}

func TestState_CloseStopsUpstream(t *testing.T) {
	auth := services.NewLocalAuth()
	state := session.Watch(auth)
	state.Close()

	require.NoError(t, auth.SignUpEmail(context.Background(), "user@example.com", "Abcd1234"))
	assert.Nil(t, state.Current(), "no updates after Close")
}
