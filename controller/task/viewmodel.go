package task

import (
	"context"
	"sync"
	"time"

	"taskmanager/logger"
	"taskmanager/model"
	"taskmanager/services"
	"taskmanager/session"

	"go.uber.org/zap"
)

const msgLoginToAdd = "Please login to add tasks."

// ViewModel owns the task list's local state: the cached snapshot from the
// live subscription, the new-task form drafts and the search term. The cache
// is written only by snapshot delivery and by session loss; user mutations go
// through the store and come back via the subscription, never optimistically.
type ViewModel struct {
	mu    sync.Mutex
	store services.TaskStore

	tasks       []model.Task
	draftName   string
	draftStatus model.Status
	searchTerm  string
	notice      string

	// owner and epoch identify the active subscription; a snapshot delivered
	// after the session changed carries a stale epoch and is dropped.
	owner  string
	epoch  int
	cancel services.CancelFunc

	unwatch func()
}

func New(store services.TaskStore, sess *session.State) *ViewModel {
	vm := &ViewModel{store: store, draftStatus: model.StatusPending}
	vm.unwatch = sess.Subscribe(vm.onIdentity)
	return vm
}

// onIdentity tears the previous subscription down and clears the cache
// before a new owner's subscription can deliver anything.
func (vm *ViewModel) onIdentity(identity *model.Identity) {
	vm.mu.Lock()
	if vm.cancel != nil {
		vm.cancel()
		vm.cancel = nil
	}
	vm.tasks = nil
	vm.notice = ""
	vm.epoch++
	epoch := vm.epoch
	if identity == nil {
		vm.owner = ""
		vm.mu.Unlock()
		return
	}
	vm.owner = identity.UID
	owner := identity.UID
	vm.mu.Unlock()

	cancel, err := vm.store.Subscribe(context.Background(), owner, func(tasks []model.Task) {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		if vm.epoch != epoch {
			return
		}
		vm.tasks = tasks
	})
	if err != nil {
		logger.Error("Error subscribing to tasks", err, zap.String("owner", owner))
		return
	}

	vm.mu.Lock()
	if vm.epoch != epoch {
		vm.mu.Unlock()
		cancel()
		return
	}
	vm.cancel = cancel
	vm.mu.Unlock()
}

// AddTask blocks with a notice when unauthenticated and is a silent no-op on
// an empty name. Success resets the drafts; failure leaves the cache alone.
func (vm *ViewModel) AddTask(ctx context.Context, name string, status model.Status) {
	vm.mu.Lock()
	vm.draftName = name
	if status != "" {
		vm.draftStatus = status
	}
	owner := vm.owner
	if owner == "" {
		vm.notice = msgLoginToAdd
		vm.mu.Unlock()
		return
	}
	vm.notice = ""
	if name == "" {
		vm.mu.Unlock()
		return
	}
	draftStatus := vm.draftStatus
	vm.mu.Unlock()

	newTask := model.Task{
		Name:        name,
		Status:      draftStatus,
		CreatedAt:   time.Now(),
		CompletedAt: nil,
		OwnerID:     owner,
	}

	if _, err := vm.store.Create(ctx, newTask); err != nil {
		logger.Error("Error adding task", err)
		return
	}

	vm.mu.Lock()
	vm.draftName = ""
	vm.draftStatus = model.StatusPending
	vm.mu.Unlock()
}

func (vm *ViewModel) DeleteTask(ctx context.Context, id string) {
	if err := vm.store.Delete(ctx, id); err != nil {
		logger.Error("Error deleting task", err, zap.String("id", id))
	}
}

// ChangeStatus issues a full-record update. CompletedAt is stamped on a
// transition into Completed and preserved once present, so repeating the
// same target status rewrites an identical record.
func (vm *ViewModel) ChangeStatus(ctx context.Context, t model.Task, newStatus model.Status) {
	updated := t
	updated.Status = newStatus
	switch {
	case newStatus != model.StatusCompleted:
		updated.CompletedAt = nil
	case t.CompletedAt != nil:
		// already stamped, keep the original timestamp
	default:
		now := time.Now()
		updated.CompletedAt = &now
	}

	if err := vm.store.Update(ctx, t.ID, updated); err != nil {
		logger.Error("Error updating task", err, zap.String("id", t.ID))
	}
}

func (vm *ViewModel) SetSearchTerm(term string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.searchTerm = term
}

// Task looks a cached task up by id, for resolving mutation requests that
// arrive keyed by id alone.
func (vm *ViewModel) Task(id string) (model.Task, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for _, t := range vm.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (vm *ViewModel) Notice() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.notice
}

func (vm *ViewModel) Close() {
	if vm.unwatch != nil {
		vm.unwatch()
		vm.unwatch = nil
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.cancel != nil {
		vm.cancel()
		vm.cancel = nil
	}
}
