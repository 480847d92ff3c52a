package docstore

import "sync"

// hub fans a collection snapshot out to its subscribers. Deliveries run
// with the lock held, so an unsubscribe that has returned guarantees the
// callback will never fire again.
type hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func([]Document)
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[int]func([]Document))}
}

func (h *hub) subscribe(collection string, fn func([]Document)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	id := h.next
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[int]func([]Document))
	}
	h.subs[collection][id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[collection], id)
	}
}

func (h *hub) publish(collection string, docs []Document) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, fn := range h.subs[collection] {
		fn(docs)
	}
}

// active reports whether anyone is listening on a collection, so backends
// can skip fetching snapshots nobody wants.
func (h *hub) active(collection string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[collection]) > 0
}
