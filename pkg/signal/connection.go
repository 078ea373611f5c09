package signal

import (
	"sync/atomic"

	"github.com/arthur-debert/sigslot/pkg/slotmap"
)

// slotOwner is the part of a Signal a Connection needs; it hides the
// Signal's type parameters.
type slotOwner interface {
	revoke(key slotmap.Key) bool
	owns(key slotmap.Key) bool
}

type binding struct {
	owner slotOwner
	key   slotmap.Key
}

// Connection is the capability to remove one handler from one Signal. The
// zero Connection and a nil *Connection are inert.
//
// A Connection must not be copied; pass it by pointer and use Transfer to
// hand the capability to someone else.
type Connection struct {
	b atomic.Pointer[binding]
}

func newConnection(owner slotOwner, key slotmap.Key) *Connection {
	c := &Connection{}
	c.b.Store(&binding{owner: owner, key: key})
	return c
}

// Disconnect removes the handler and leaves the connection inert. It
// returns true only if this call actually removed the handler.
func (c *Connection) Disconnect() bool {
	if c == nil {
		return false
	}
	b := c.b.Swap(nil)
	if b == nil {
		return false
	}
	return b.owner.revoke(b.key)
}

// Close disconnects the handler. It always returns nil and exists so that
// connections can be released with defer or treated as an io.Closer.
func (c *Connection) Close() error {
	c.Disconnect()
	return nil
}

// Connected reports whether the connection is armed and its handler is still
// registered.
func (c *Connection) Connected() bool {
	if c == nil {
		return false
	}
	b := c.b.Load()
	return b != nil && b.owner.owns(b.key)
}

// Transfer moves the capability to a new Connection. c becomes inert; the
// returned connection controls the handler c controlled, if any.
func (c *Connection) Transfer() *Connection {
	dst := &Connection{}
	if c == nil {
		return dst
	}
	if b := c.b.Swap(nil); b != nil {
		dst.b.Store(b)
	}
	return dst
}
