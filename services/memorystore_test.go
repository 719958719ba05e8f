package services_test

import (
	"context"
	"testing"
	"time"

	"taskmanager/model"
	"taskmanager/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(name string, status model.Status, owner string) model.Task {
	return model.Task{
		Name:      name,
		Status:    status,
		CreatedAt: time.Now(),
		OwnerID:   owner,
	}
}

func TestMemoryStore_SubscribeFiresImmediately(t *testing.T) {
	store := services.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, newTask("Buy milk", model.StatusPending, "alice"))
	require.NoError(t, err)

	var snapshots [][]model.Task
	cancel, err := store.Subscribe(ctx, "alice", func(tasks []model.Task) {
		snapshots = append(snapshots, tasks)
	})
	require.NoError(t, err)
	defer cancel()

	require.Len(t, snapshots, 1)
	require.Len(t, snapshots[0], 1)
	assert.Equal(t, "Buy milk", snapshots[0][0].Name)
	assert.NotEmpty(t, snapshots[0][0].ID)
}

func TestMemoryStore_DeliveryOrderIsInsertionOrder(t *testing.T) {
	store := services.NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, newTask(name, model.StatusPending, "alice"))
		require.NoError(t, err)
	}

	var latest []model.Task
	cancel, err := store.Subscribe(ctx, "alice", func(tasks []model.Task) { latest = tasks })
	require.NoError(t, err)
	defer cancel()

	require.Len(t, latest, 3)
	assert.Equal(t, "first", latest[0].Name)
	assert.Equal(t, "second", latest[1].Name)
	assert.Equal(t, "third", latest[2].Name)
}

func TestMemoryStore_OwnerFiltering(t *testing.T) {
	store := services.NewMemoryStore()
	ctx := context.Background()

	var aliceTasks, bobTasks []model.Task
	cancelAlice, err := store.Subscribe(ctx, "alice", func(tasks []model.Task) { aliceTasks = tasks })
	require.NoError(t, err)
	defer cancelAlice()
	cancelBob, err := store.Subscribe(ctx, "bob", func(tasks []model.Task) { bobTasks = tasks })
	require.NoError(t, err)
	defer cancelBob()

	_, err = store.Create(ctx, newTask("Alice's task", model.StatusPending, "alice"))
	require.NoError(t, err)

	require.Len(t, aliceTasks, 1)
	assert.Empty(t, bobTasks)
}

func TestMemoryStore_UpdateAndDelete(t *testing.T) {
	store := services.NewMemoryStore()
	ctx := context.Background()

	id, err := store.Create(ctx, newTask("Buy milk", model.StatusPending, "alice"))
	require.NoError(t, err)

	var latest []model.Task
	cancel, err := store.Subscribe(ctx, "alice", func(tasks []model.Task) { latest = tasks })
	require.NoError(t, err)
	defer cancel()

	updated := newTask("Buy milk", model.StatusIncomplete, "alice")
	require.NoError(t, store.Update(ctx, id, updated))
	require.Len(t, latest, 1)
	assert.Equal(t, model.StatusIncomplete, latest[0].Status)
	assert.Equal(t, id, latest[0].ID)

	require.NoError(t, store.Delete(ctx, id))
	assert.Empty(t, latest)
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := services.NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Update(ctx, "missing", newTask("x", model.StatusPending, "alice")), services.ErrTaskNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), services.ErrTaskNotFound)
}

func TestMemoryStore_CancelStopsDelivery(t *testing.T) {
	store := services.NewMemoryStore()
	ctx := context.Background()

	deliveries := 0
	cancel, err := store.Subscribe(ctx, "alice", func([]model.Task) { deliveries++ })
	require.NoError(t, err)
	require.Equal(t, 1, deliveries)

	cancel()
	cancel() // safe to call twice

	_, err = store.Create(ctx, newTask("Buy milk", model.StatusPending, "alice"))
	require.NoError(t, err)
	assert.Equal(t, 1, deliveries)
}
