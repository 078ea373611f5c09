// pkg/signal/scope_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test grouped release of connections

package signal_test

import (
	"testing"

	"github.com/arthur-debert/sigslot/pkg/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeReleasesOnClose(t *testing.T) {
	saved := signal.New[string, signal.Void]()
	closed := signal.NewVoid[signal.Void]()

	func() {
		scope := signal.NewScope()
		defer scope.Close()

		scope.Track(signal.ConnectVoid(saved, func(string) {}))
		scope.Track(signal.ConnectVoid(saved, func(string) {}))
		scope.Track(signal.ConnectVoid(closed, func(signal.Void) {}))

		assert.Equal(t, 3, scope.Len())
		assert.Equal(t, 2, saved.Len())
		assert.Equal(t, 1, closed.Len())
	}()

	assert.Equal(t, 0, saved.Len())
	assert.Equal(t, 0, closed.Len())
}

func TestScopeTrackTakesOwnership(t *testing.T) {
	sig := signal.New[int, int]()
	scope := signal.NewScope()

	conn := sig.Connect(func(i int) int { return i })
	owned := scope.Track(conn)

	assert.False(t, conn.Connected(), "the tracked connection is moved into the scope")
	assert.True(t, owned.Connected())
	assert.False(t, conn.Disconnect())
	assert.Equal(t, 1, sig.Len())

	assert.Equal(t, 1, scope.Release())
	assert.Equal(t, 0, sig.Len())
}

func TestScopeReleaseOrderAndCount(t *testing.T) {
	sig := signal.New[int, int]()
	scope := signal.NewScope()

	var order []int
	rec := signal.New[int, signal.Void](signal.WithObserver(&recorder{
		onDisconnect: func(size int) { order = append(order, size) },
	}))
	for i := 0; i < 3; i++ {
		scope.Track(signal.ConnectVoid(rec, func(int) {}))
	}
	early := scope.Track(sig.Connect(func(i int) int { return i }))
	require.True(t, early.Disconnect())

	assert.Equal(t, 3, scope.Release(), "already released handlers are not counted")
	assert.Equal(t, []int{2, 1, 0}, order)
	assert.Equal(t, 0, scope.Len())

	assert.Equal(t, 0, scope.Release())
	require.NoError(t, scope.Close())
}

func TestScopeReuse(t *testing.T) {
	sig := signal.New[int, int]()
	scope := signal.NewScope()

	scope.Track(sig.Connect(func(i int) int { return i }))
	scope.Release()

	scope.Track(sig.Connect(func(i int) int { return i }))
	assert.Equal(t, 1, sig.Len())
	assert.Equal(t, 1, scope.Release())
	assert.Equal(t, 0, sig.Len())
}
