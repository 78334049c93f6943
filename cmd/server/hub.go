package main

import (
	"context"
	"log"
	"sync"
)

// hub counts live sessions and bounds how many image renders run at once.
// It is shared by every handler.
type hub struct {
	renders chan struct{}

	sessions int
	m        sync.Mutex
}

func newHub(maxRenders int) *hub {
	return &hub{renders: make(chan struct{}, max(1, maxRenders))}
}

func (h *hub) join() {
	h.m.Lock()
	h.sessions++
	n := h.sessions
	h.m.Unlock()

	log.Printf("sessions: %d", n)
}

func (h *hub) leave() {
	h.m.Lock()
	h.sessions--
	n := h.sessions
	h.m.Unlock()

	log.Printf("sessions: %d", n)
}

func (h *hub) activeSessions() int {
	h.m.Lock()
	defer h.m.Unlock()
	return h.sessions
}

// acquire waits for a render slot. Every successful acquire must be
// paired with release.
func (h *hub) acquire(ctx context.Context) error {
	select {
	case h.renders <- struct{}{}:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

func (h *hub) release() {
	<-h.renders
}
