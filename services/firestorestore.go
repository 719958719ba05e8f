package services

import (
	"context"
	"fmt"

	"taskmanager/logger"
	"taskmanager/model"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements TaskStore on a Firestore collection. Live
// subscriptions ride the collection query's snapshot stream; cancellation is
// context-based, so a cancelled subscription stops before its goroutine can
// deliver again.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	return &FirestoreStore{client: client, collection: collection}
}

func (s *FirestoreStore) Subscribe(ctx context.Context, ownerID string, fn SnapshotFunc) (CancelFunc, error) {
	ctx, cancel := context.WithCancel(ctx)

	query := s.client.Collection(s.collection).Where("userId", "==", ownerID)
	snapshots := query.Snapshots(ctx)

	go func() {
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled {
					return
				}
				logger.Error("Error fetching tasks", err, zap.String("owner", ownerID))
				return
			}

			tasks := make([]model.Task, 0, snap.Size)
			docs := snap.Documents
			for {
				doc, err := docs.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					logger.Error("Error reading task snapshot", err)
					break
				}
				var t model.Task
				if err := doc.DataTo(&t); err != nil {
					logger.Error("Failed to parse task document", err, zap.String("doc", doc.Ref.ID))
					continue
				}
				t.ID = doc.Ref.ID
				tasks = append(tasks, t)
			}

			fn(tasks)
		}
	}()

	return CancelFunc(cancel), nil
}

func (s *FirestoreStore) Create(ctx context.Context, t model.Task) (string, error) {
	doc, _, err := s.client.Collection(s.collection).Add(ctx, t)
	if err != nil {
		return "", fmt.Errorf("creating task: %w", err)
	}
	return doc.ID, nil
}

func (s *FirestoreStore) Update(ctx context.Context, id string, t model.Task) error {
	// Full-record replace, not a partial patch.
	_, err := s.client.Collection(s.collection).Doc(id).Set(ctx, t)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrTaskNotFound
		}
		return fmt.Errorf("updating task %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.Collection(s.collection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

var _ TaskStore = (*FirestoreStore)(nil)
