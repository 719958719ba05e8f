package services

import (
	"context"
	"sync"

	"taskmanager/model"
)

// AuthService is the contract consumed from the auth collaborator.
// SubscribeIdentity fires immediately with the current identity (nil when
// signed out) and again on every change, until the returned unsubscribe is
// called.
type AuthService interface {
	SubscribeIdentity(fn func(*model.Identity)) (unsubscribe func())
	SignInEmail(ctx context.Context, email, password string) error
	SignUpEmail(ctx context.Context, email, password string) error
	SignInFederated(ctx context.Context) error
	SignOut(ctx context.Context) error
}

// identityHub fans the latest identity out to subscribers. Both auth
// backends embed it so the stream semantics stay identical.
type identityHub struct {
	mu      sync.Mutex
	current *model.Identity
	subs    map[int]func(*model.Identity)
	nextID  int
}

func (h *identityHub) SubscribeIdentity(fn func(*model.Identity)) func() {
	h.mu.Lock()
	if h.subs == nil {
		h.subs = make(map[int]func(*model.Identity))
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	current := h.current
	h.mu.Unlock()

	fn(current)

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

func (h *identityHub) publish(identity *model.Identity) {
	h.mu.Lock()
	h.current = identity
	fns := make([]func(*model.Identity), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

func (h *identityHub) Current() *model.Identity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}
