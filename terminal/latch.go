package terminal

import (
	"time"

	"github.com/lixenwraith/sombervale/input"
)

// Terminals report presses and auto-repeat but never releases.
// A latched key is released once no repeat arrives before its deadline.
const (
	// firstRepeatWait covers the initial auto-repeat delay of common terminals
	firstRepeatWait = 550 * time.Millisecond
	// repeatWait covers the gap between repeats once they are flowing
	repeatWait = 120 * time.Millisecond
)

type latchState struct {
	deadline time.Time
	repeated bool
}

type keyLatch struct {
	held map[input.Key]latchState
}

func newKeyLatch() *keyLatch {
	return &keyLatch{held: make(map[input.Key]latchState)}
}

// Press extends the latch for k and reports whether it is a new press
func (l *keyLatch) Press(k input.Key, now time.Time) bool {
	st, ok := l.held[k]
	if !ok {
		l.held[k] = latchState{deadline: now.Add(firstRepeatWait)}
		return true
	}
	st.repeated = true
	st.deadline = now.Add(repeatWait)
	l.held[k] = st
	return false
}

// Expire releases every key whose deadline has passed, in key order
func (l *keyLatch) Expire(now time.Time) []input.Key {
	var released []input.Key
	for k := input.KeyUp; k <= input.KeySelect; k++ {
		st, ok := l.held[k]
		if ok && !now.Before(st.deadline) {
			delete(l.held, k)
			released = append(released, k)
		}
	}
	return released
}

// Held reports whether k is currently latched
func (l *keyLatch) Held(k input.Key) bool {
	_, ok := l.held[k]
	return ok
}
