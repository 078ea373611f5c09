// pkg/signal/observer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: zerolog
// PURPOSE: Test observer notifications and the zerolog observer

package signal_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/sigslot/pkg/signal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	kind   string
	signal string
	n      int
}

type recorder struct {
	events       []event
	onDisconnect func(size int)
}

func (r *recorder) Connected(name string, size int) {
	r.events = append(r.events, event{"connected", name, size})
}

func (r *recorder) Disconnected(name string, size int) {
	r.events = append(r.events, event{"disconnected", name, size})
	if r.onDisconnect != nil {
		r.onDisconnect(size)
	}
}

func (r *recorder) Emitted(name string, calls int, _ time.Duration) {
	r.events = append(r.events, event{"emitted", name, calls})
}

func TestObserverNotifications(t *testing.T) {
	rec := &recorder{}
	sig := signal.New[int, int](signal.WithName("values"), signal.WithObserver(rec))
	assert.Equal(t, "values", sig.Name())

	c1 := sig.Connect(func(i int) int { return i })
	c2 := sig.Connect(func(i int) int { return i })
	sig.Collect(1)
	c1.Disconnect()
	c1.Disconnect()
	sig.Emit(1)
	c2.Disconnect()
	sig.DisconnectAll()

	assert.Equal(t, []event{
		{"connected", "values", 1},
		{"connected", "values", 2},
		{"emitted", "values", 2},
		{"disconnected", "values", 1},
		{"emitted", "values", 1},
		{"disconnected", "values", 0},
	}, rec.events, "no-op disconnects are not reported")
}

func TestWithObserverNilFallsBackToNop(t *testing.T) {
	sig := signal.New[int, int](signal.WithObserver(nil))
	conn := sig.Connect(func(i int) int { return i })
	assert.Equal(t, []int{1}, sig.Collect(1))
	assert.True(t, conn.Disconnect())
}

func traceGlobally(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func TestLogObserver(t *testing.T) {
	traceGlobally(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	sig := signal.New[int, int](signal.WithName("clicks"), signal.WithLogger(logger))
	conn := sig.Connect(func(i int) int { return i })
	sig.Emit(1)
	conn.Disconnect()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entries []map[string]interface{}
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "Slot connected", entries[0]["message"])
	assert.Equal(t, "clicks", entries[0]["signal"])
	assert.EqualValues(t, 1, entries[0]["slots"])

	assert.Equal(t, "trace", entries[1]["level"])
	assert.Equal(t, "Signal emitted", entries[1]["message"])
	assert.EqualValues(t, 1, entries[1]["calls"])

	assert.Equal(t, "Slot disconnected", entries[2]["message"])
	assert.EqualValues(t, 0, entries[2]["slots"])
}

func TestLogObserverRespectsLevel(t *testing.T) {
	traceGlobally(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	sig := signal.New[int, int](signal.WithLogger(logger))
	sig.Connect(func(i int) int { return i })
	sig.Emit(1)

	assert.Empty(t, buf.String())
}
