package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDT = 1.0 / 60

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	task := s.After(2.0, func() { calls++ })

	for i := 0; i < 119; i++ {
		s.Advance(testDT)
	}
	assert.Equal(t, 0, calls, "must not fire before the delay")
	assert.False(t, task.Cancelled())

	s.Advance(testDT)
	assert.Equal(t, 1, calls, "fires on the tick the delay elapses")
	assert.True(t, task.Cancelled(), "finished one-shot reads as done")

	for i := 0; i < 300; i++ {
		s.Advance(testDT)
	}
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Pending())
}

func TestSchedulerEveryKeepsCadence(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(0.125, func() { calls++ })

	// one simulated second at 60 Hz holds exactly eight 125 ms intervals
	for i := 0; i < 60; i++ {
		s.Advance(testDT)
	}
	assert.Equal(t, 8, calls)
	assert.Equal(t, 1, s.Pending())
}

func TestSchedulerEveryCatchesUpOnLargeStep(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(0.1, func() { calls++ })

	s.Advance(0.35)
	assert.Equal(t, 3, calls)
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	calls := 0
	task := s.Every(0.1, func() { calls++ })

	s.Advance(0.1)
	require.Equal(t, 1, calls)

	task.Cancel()
	task.Cancel()
	s.Advance(1)
	assert.Equal(t, 1, calls, "cancelled task must not run again")
	assert.Zero(t, s.Pending())
}

func TestSchedulerSelfCancelInsideCallback(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var task *Task
	task = s.Every(0.1, func() {
		calls++
		if calls == 3 {
			task.Cancel()
		}
	})

	s.Advance(1)
	assert.Equal(t, 3, calls)
}

func TestSchedulerCancelAllFromCallbackKeepsNewTasks(t *testing.T) {
	s := NewScheduler()
	staleCalls, freshCalls := 0, 0

	s.After(0.1, func() {
		s.CancelAll()
		s.After(0.5, func() { freshCalls++ })
	})
	s.Every(0.1, func() { staleCalls++ })

	s.Advance(0.1)
	assert.Zero(t, staleCalls, "tasks cancelled mid-advance are skipped")
	assert.Zero(t, freshCalls, "new tasks wait for the next advance")
	assert.Equal(t, 1, s.Pending())

	s.Advance(0.5)
	assert.Equal(t, 1, freshCalls)
	assert.Zero(t, staleCalls)
}

func TestSchedulerNilTaskIsCancelled(t *testing.T) {
	var task *Task
	assert.True(t, task.Cancelled())
	assert.NotPanics(t, func() { task.Cancel() })
}
