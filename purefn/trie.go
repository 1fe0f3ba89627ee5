package purefn

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded, concurrency-safe memo table keyed by argument paths.
type Trie[O any] struct {
	mu          sync.Mutex
	generations [2]atomic.Pointer[sync.Map]
	head        atomic.Uint32
	size        atomic.Uint32
	maxSize     uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.generations[0].Store(&sync.Map{})
	t.generations[1].Store(&sync.Map{})
	return t
}

// Load looks keys up in the head generation first, then in the previous one.
func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	head := t.head.Load()
	for _, idx := range [2]uint32{head, 1 - head} {
		if m, k, ok := t.find(t.generations[idx].Load(), keys); ok {
			if v, ok := m.Load(k); ok {
				return v.(O), true
			}
		}
	}
	var zero O
	return zero, false
}

// Store saves value under keys in the head generation. Once maxSize values have been
// stored, the older generation is cleared and becomes the new head.
func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size.Load() >= t.maxSize {
		next := 1 - t.head.Load()
		t.generations[next].Store(&sync.Map{})
		t.head.Store(next)
		t.size.Store(0)
	}
	m, k := t.walk(t.generations[t.head.Load()].Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

// find follows keys without creating nodes.
func (t *Trie[O]) find(root *sync.Map, keys []ComparableOrString) (*sync.Map, any, bool) {
	last := mustLast(keys)
	node := root
	for _, k := range keys[:len(keys)-1] {
		next, ok := node.Load(k)
		if !ok {
			return nil, nil, false
		}
		node = next.(*sync.Map)
	}
	return node, last, true
}

// walk follows keys, creating intermediate nodes as needed.
func (t *Trie[O]) walk(root *sync.Map, keys []ComparableOrString) (*sync.Map, any) {
	last := mustLast(keys)
	node := root
	for _, k := range keys[:len(keys)-1] {
		next, _ := node.LoadOrStore(k, &sync.Map{})
		node = next.(*sync.Map)
	}
	return node, last
}

func mustLast(keys []ComparableOrString) ComparableOrString {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	return keys[len(keys)-1]
}
