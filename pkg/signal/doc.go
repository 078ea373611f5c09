// Package signal implements typed signal/slot registries.
//
// A Signal[A, R] holds an ordered set of handlers of shape func(A) R. Handlers
// are registered with Connect, which returns a *Connection: the only
// capability able to remove that handler again. Emitting a signal calls every
// handler in registration order; Collect and CollectIf also gather their
// results.
//
// Shapes with several arguments use a struct or an array as A. Handlers that
// return nothing use Void as R:
//
//	clicked := signal.New[signal.Void, signal.Void]()
//	conn := signal.ConnectVoid(clicked, func(signal.Void) {
//		fmt.Println("clicked")
//	})
//	defer conn.Close()
//
//	clicked.Emit(signal.Void{})
//
// # Connections
//
// A Connection is either armed (bound to one live handler) or inert.
// Disconnect revokes the handler and leaves the connection inert; calling it
// again is a no-op that returns false. Transfer moves the capability to a new
// Connection and leaves the source inert, so exactly one armed Connection
// exists per handler. Connections are always used by pointer and must not be
// copied.
//
// Go has no destructors, so scope-exit release is spelled with defer:
// defer conn.Close() for a single handler, or a Scope for a group of them.
//
// Connections never dangle. Each one keeps its Signal reachable and
// addresses its handler by a generational key, so disconnecting after the
// handler was already removed, after DisconnectAll, or after Close is a
// safe no-op.
//
// # Invocation passes
//
// Emit, Collect, CollectInto and CollectIf run one invocation pass. The set
// of handlers is captured when the pass starts: handlers connected during a
// pass are first called by the next pass, and handlers disconnected during a
// pass are skipped if their turn has not come yet. Handlers run without any
// lock held, so they may connect, disconnect or emit freely.
//
// All methods are safe for concurrent use. Handlers themselves are called on
// the emitting goroutine.
package signal
