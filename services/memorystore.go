package services

import (
	"context"
	"errors"
	"sync"

	"taskmanager/model"

	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("task not found")

type storeSub struct {
	ownerID string
	fn      SnapshotFunc
}

// MemoryStore is the in-process document store. Delivery order is insertion
// order, matching the hosted store's delivery-order guarantee. Snapshots are
// delivered synchronously, which keeps component tests deterministic.
type MemoryStore struct {
	mu     sync.Mutex
	order  []string
	docs   map[string]model.Task
	subs   map[int]storeSub
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]model.Task),
		subs: make(map[int]storeSub),
	}
}

func (s *MemoryStore) Subscribe(ctx context.Context, ownerID string, fn SnapshotFunc) (CancelFunc, error) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = storeSub{ownerID: ownerID, fn: fn}
	snapshot := s.snapshotLocked(ownerID)
	s.mu.Unlock()

	fn(snapshot)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}, nil
}

func (s *MemoryStore) Create(ctx context.Context, t model.Task) (string, error) {
	s.mu.Lock()
	id := uuid.New().String()
	t.ID = id
	s.docs[id] = t
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.notify(t.OwnerID)
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, t model.Task) error {
	s.mu.Lock()
	if _, exists := s.docs[id]; !exists {
		s.mu.Unlock()
		return ErrTaskNotFound
	}
	t.ID = id
	s.docs[id] = t
	s.mu.Unlock()

	s.notify(t.OwnerID)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	doc, exists := s.docs[id]
	if !exists {
		s.mu.Unlock()
		return ErrTaskNotFound
	}
	delete(s.docs, id)
	for i, docID := range s.order {
		if docID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notify(doc.OwnerID)
	return nil
}

func (s *MemoryStore) snapshotLocked(ownerID string) []model.Task {
	tasks := make([]model.Task, 0)
	for _, id := range s.order {
		if doc, ok := s.docs[id]; ok && doc.OwnerID == ownerID {
			tasks = append(tasks, doc)
		}
	}
	return tasks
}

func (s *MemoryStore) notify(ownerID string) {
	s.mu.Lock()
	snapshot := s.snapshotLocked(ownerID)
	fns := make([]SnapshotFunc, 0)
	for _, sub := range s.subs {
		if sub.ownerID == ownerID {
			fns = append(fns, sub.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

var _ TaskStore = (*MemoryStore)(nil)
