package player

import (
	"slices"

	"github.com/oomph-ac/wallrun/world"
	"github.com/sasha-s/go-deadlock"
)

// HitHandler handles blocking hits the player's movement produced.
type HitHandler interface {
	// OnActorHit is called for every blocking hit. It returns true if the hit caused the
	// handler to change the movement state.
	OnActorHit(hit world.HitResult) bool
}

// HitNotifier dispatches blocking hits to its subscribers.
type HitNotifier struct {
	mu       deadlock.Mutex
	handlers []HitHandler
}

// Subscribe adds h to the subscribers. Subscribing the same handler twice has no effect.
func (n *HitNotifier) Subscribe(h HitHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !slices.Contains(n.handlers, h) {
		n.handlers = append(n.handlers, h)
	}
}

// Unsubscribe removes h from the subscribers.
func (n *HitNotifier) Unsubscribe(h HitHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers = slices.DeleteFunc(n.handlers, func(other HitHandler) bool {
		return other == h
	})
}

// Subscribed returns true if h is subscribed.
func (n *HitNotifier) Subscribed(h HitHandler) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Contains(n.handlers, h)
}

// Publish delivers hit to every subscriber and returns true if any of them handled it.
func (n *HitNotifier) Publish(hit world.HitResult) bool {
	n.mu.Lock()
	handlers := slices.Clone(n.handlers)
	n.mu.Unlock()

	handled := false
	for _, h := range handlers {
		if h.OnActorHit(hit) {
			handled = true
		}
	}
	return handled
}
