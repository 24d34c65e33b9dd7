package watch

import "time"

// reload asks the watch loop to read path. gen identifies the timer that
// produced it so reloads superseded by a later write can be dropped.
type reload struct {
	path string
	gen  uint64
}

type pendingReload struct {
	timer *time.Timer
	gen   uint64
}

// debouncer coalesces bursts of writes to the same file into one reload.
// It is owned by a single goroutine; only the timers run elsewhere.
type debouncer struct {
	settle  time.Duration
	ready   chan reload
	done    <-chan struct{}
	pending map[string]*pendingReload
	gen     uint64
}

func newDebouncer(settle time.Duration, done <-chan struct{}) *debouncer {
	return &debouncer{
		settle:  settle,
		ready:   make(chan reload),
		done:    done,
		pending: make(map[string]*pendingReload),
	}
}

// touch restarts the quiet period for path. A timer that already fired is
// not reused: its reload carries an old generation and claim rejects it.
func (d *debouncer) touch(path string) {
	if p, ok := d.pending[path]; ok {
		p.timer.Stop()
	}
	d.gen++
	r := reload{path: path, gen: d.gen}
	d.pending[path] = &pendingReload{
		gen: r.gen,
		timer: time.AfterFunc(d.settle, func() {
			select {
			case d.ready <- r:
			case <-d.done:
			}
		}),
	}
}

// claim reports whether r is the live reload for its path and forgets it
func (d *debouncer) claim(r reload) bool {
	p, ok := d.pending[r.path]
	if !ok || p.gen != r.gen {
		return false
	}
	delete(d.pending, r.path)
	return true
}

func (d *debouncer) stop() {
	for _, p := range d.pending {
		p.timer.Stop()
	}
}
