package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextReload(t *testing.T, d *debouncer) reload {
	t.Helper()
	select {
	case r := <-d.ready:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload fired")
		return reload{}
	}
}

func assertQuiet(t *testing.T, d *debouncer, wait time.Duration) {
	t.Helper()
	select {
	case r := <-d.ready:
		t.Fatalf("unexpected reload %+v", r)
	case <-time.After(wait):
	}
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	d := newDebouncer(20*time.Millisecond, done)
	defer d.stop()

	for i := 0; i < 10; i++ {
		d.touch("slot1.dat")
	}

	r := nextReload(t, d)
	assert.True(t, d.claim(r))
	assertQuiet(t, d, 100*time.Millisecond)
}

func TestDebouncer_WriteAfterFireSupersedesReload(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	d := newDebouncer(20*time.Millisecond, done)
	defer d.stop()

	d.touch("slot1.dat")
	first := nextReload(t, d)

	// The timer has fired but the loop has not handled it yet
	d.touch("slot1.dat")
	assert.False(t, d.claim(first), "superseded reload must be dropped")

	second := nextReload(t, d)
	require.Equal(t, "slot1.dat", second.path)
	assert.True(t, d.claim(second))
	assert.False(t, d.claim(second), "a reload is claimed once")
	assertQuiet(t, d, 100*time.Millisecond)
}

func TestDebouncer_PathsAreIndependent(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	d := newDebouncer(20*time.Millisecond, done)
	defer d.stop()

	d.touch("slot1.dat")
	d.touch("slot2.dat")

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		r := nextReload(t, d)
		require.True(t, d.claim(r))
		got[r.path] = true
	}
	assert.Equal(t, map[string]bool{"slot1.dat": true, "slot2.dat": true}, got)
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	d := newDebouncer(20*time.Millisecond, done)

	d.touch("slot1.dat")
	d.stop()
	assertQuiet(t, d, 100*time.Millisecond)
}
