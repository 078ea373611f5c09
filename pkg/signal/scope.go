package signal

import "sync"

// Scope owns a group of connections and disconnects all of them on Close,
// typically from a defer:
//
//	scope := signal.NewScope()
//	defer scope.Close()
//	scope.Track(saved.Connect(onSave))
//	scope.Track(closed.Connect(onClose))
type Scope struct {
	mu    sync.Mutex
	conns []*Connection
}

// NewScope creates an empty Scope
func NewScope() *Scope {
	return &Scope{}
}

// Track takes over the capability held by c. c is left inert and the
// connection now owned by the scope is returned, so the handler can still be
// disconnected early.
func (sc *Scope) Track(c *Connection) *Connection {
	owned := c.Transfer()

	sc.mu.Lock()
	sc.conns = append(sc.conns, owned)
	sc.mu.Unlock()

	return owned
}

// Len returns the number of tracked connections
func (sc *Scope) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return len(sc.conns)
}

// Release disconnects every tracked connection, newest first, and returns
// how many handlers were actually removed. The scope is empty afterwards
// and can be reused.
func (sc *Scope) Release() int {
	sc.mu.Lock()
	conns := sc.conns
	sc.conns = nil
	sc.mu.Unlock()

	n := 0
	for i := len(conns) - 1; i >= 0; i-- {
		if conns[i].Disconnect() {
			n++
		}
	}
	return n
}

// Close releases the scope. It always returns nil.
func (sc *Scope) Close() error {
	sc.Release()
	return nil
}
