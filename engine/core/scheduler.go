package core

// timeEpsilon absorbs float drift from summing fixed tick durations
const timeEpsilon = 1e-9

// Task is a scheduled callback. The pointer doubles as its cancel token.
type Task struct {
	remaining float64
	interval  float64
	repeat    bool
	cancelled bool
	fn        func()
}

// Cancel prevents any further runs of the task. Safe to call more than once.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether the task was cancelled or has finished
func (t *Task) Cancelled() bool {
	return t == nil || t.cancelled
}

// Scheduler runs one-shot and repeating tasks against simulated time.
// It is advanced from inside the tick, so every callback runs on the
// simulation goroutine between phases, never concurrently with them.
type Scheduler struct {
	tasks   []*Task
	elapsed float64
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once after delay seconds
func (s *Scheduler) After(delay float64, fn func()) *Task {
	t := &Task{remaining: delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Every schedules fn to run every interval seconds, first run after one interval
func (s *Scheduler) Every(interval float64, fn func()) *Task {
	if interval <= 0 {
		interval = timeEpsilon
	}
	t := &Task{remaining: interval, interval: interval, repeat: true, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves simulated time forward by dt and runs every task that came due.
// Tasks scheduled by a callback are first considered on the next Advance.
func (s *Scheduler) Advance(dt float64) {
	s.elapsed += dt
	due := s.tasks
	n := len(due)
	for i := 0; i < n; i++ {
		t := due[i]
		if t.cancelled {
			continue
		}
		t.remaining -= dt
		for t.remaining <= timeEpsilon && !t.cancelled {
			t.fn()
			if !t.repeat {
				t.cancelled = true
				break
			}
			t.remaining += t.interval
		}
	}
	s.compact()
}

// compact drops finished and cancelled tasks, keeping order
func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// CancelAll cancels every pending task. It may be called from a callback;
// tasks scheduled afterwards survive.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	// fresh backing array: Advance may still be walking the old one
	s.tasks = nil
}

// Pending returns the number of tasks that have not finished or been cancelled
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Elapsed returns the simulated seconds advanced so far
func (s *Scheduler) Elapsed() float64 { return s.elapsed }
