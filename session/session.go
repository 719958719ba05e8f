// Package session tracks the currently authenticated identity. It subscribes
// once to the auth collaborator's identity stream for the lifetime of the
// page and republishes the latest identity (or absence) to its dependents.
package session

import (
	"sync"

	"taskmanager/model"
	"taskmanager/services"
)

type State struct {
	mu      sync.Mutex
	current *model.Identity
	subs    map[int]func(*model.Identity)
	nextID  int
	stop    func()
}

// Watch opens the single upstream identity subscription. Close releases it.
func Watch(auth services.AuthService) *State {
	s := &State{subs: make(map[int]func(*model.Identity))}
	s.stop = auth.SubscribeIdentity(s.onIdentity)
	return s
}

func (s *State) onIdentity(identity *model.Identity) {
	s.mu.Lock()
	s.current = identity
	fns := make([]func(*model.Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

func (s *State) Current() *model.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe fires immediately with the current identity, then on every
// change, until the returned unsubscribe is called.
func (s *State) Subscribe(fn func(*model.Identity)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *State) Close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}
