package groups

import "sync"

// Op names the kind of write that produced a Change.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes a write against a groups URI.
type Change struct {
	URI  string
	Op   Op
	Rows int64
}

type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Change
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan Change)}
}

func (n *notifier) subscribe(buffer int) (<-chan Change, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Change, buffer)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// publish delivers change without blocking; full subscribers miss it.
func (n *notifier) publish(change Change) (dropped int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- change:
		default:
			dropped++
		}
	}
	return dropped
}

func (n *notifier) closeAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
