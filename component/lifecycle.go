package component

import (
	"sync"

	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/engine"
)

// DeathQueue collects deletions raised during the tick, drained once by cleanup
type DeathQueue struct {
	entities []engine.Entity
	queued   map[engine.Entity]struct{}
}

// Queue schedules e, reports false if it was already scheduled this tick
func (q *DeathQueue) Queue(e engine.Entity) bool {
	if q.queued == nil {
		q.queued = make(map[engine.Entity]struct{})
	}
	if _, ok := q.queued[e]; ok {
		return false
	}
	q.queued[e] = struct{}{}
	q.entities = append(q.entities, e)
	return true
}

// Queued reports whether e is scheduled
func (q *DeathQueue) Queued(e engine.Entity) bool {
	_, ok := q.queued[e]
	return ok
}

func (q *DeathQueue) Len() int { return len(q.entities) }

// Drain returns the scheduled entities in order and empties the queue
func (q *DeathQueue) Drain() []engine.Entity {
	out := q.entities
	q.entities = nil
	clear(q.queued)
	return out
}

// SoundPlayer is the fire-and-forget audio collaborator
type SoundPlayer interface {
	Play(sound core.SoundType)
}

// Audio wraps the sound player for systems
type Audio struct {
	Player SoundPlayer
}

// Play forwards a cue, a missing player is silence
func (a Audio) Play(sound core.SoundType) {
	if a.Player != nil {
		a.Player.Play(sound)
	}
}

// NopPlayer drops every cue, used for headless runs and tests
type NopPlayer struct{}

func (NopPlayer) Play(core.SoundType) {}

// RecordingPlayer keeps every cue it receives
type RecordingPlayer struct {
	mu     sync.Mutex
	Played []core.SoundType
}

func (r *RecordingPlayer) Play(sound core.SoundType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Played = append(r.Played, sound)
}

// Count returns how often sound was played
func (r *RecordingPlayer) Count(sound core.SoundType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.Played {
		if s == sound {
			n++
		}
	}
	return n
}
