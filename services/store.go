package services

import (
	"context"

	"taskmanager/model"
)

// SnapshotFunc receives the full current set of the owner's tasks, in the
// order the store delivers them, on every change.
type SnapshotFunc func(tasks []model.Task)

// CancelFunc tears down a live subscription. Safe to call more than once.
type CancelFunc func()

// TaskStore is the contract consumed from the document-store collaborator.
type TaskStore interface {
	Subscribe(ctx context.Context, ownerID string, fn SnapshotFunc) (CancelFunc, error)
	Create(ctx context.Context, t model.Task) (string, error)
	Update(ctx context.Context, id string, t model.Task) error
	Delete(ctx context.Context, id string) error
}
