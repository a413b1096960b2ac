package parameter

import "time"

// Movement speeds in pixels per second
const (
	JeanSpeed = 60.0
	FrogSpeed = 180.0
	BlobSpeed = 70.0
)

// EntityRadius is the collision circle radius of every creature
const EntityRadius = 5.0

// Creature contact, compared as squared distances
const (
	// ContactDistanceSq is two touching entity circles
	ContactDistanceSq = (2 * EntityRadius) * (2 * EntityRadius)

	// FrogShadowDetectionSq is how close a blob must be before a frog hunts it
	FrogShadowDetectionSq = 48 * 48
)

// Frog follow behaviour
const (
	// FrogThreshold is the leader distance a frog tolerates before hopping back
	FrogThreshold = 28.0
	// FrogThresholdJitter is the random slack added per decision so frogs do not move in lockstep
	FrogThresholdJitter = 4.0
	// FrogHopJitterTurns scales NDC noise into every hop angle, as a fraction of a turn
	FrogHopJitterTurns = 1.0 / 16
)

// Blob wander behaviour
const (
	// BlobBounceChance is the per-tick probability that a resting blob starts a bounce
	BlobBounceChance = 0.01
	// BlobRestVelocitySq is the squared speed under which a blob counts as resting
	BlobRestVelocitySq = 0.01
)

// Summon placement
const (
	// SummonRadius bounds the distance from the leader a new frog appears at
	SummonRadius = FrogThreshold
)

// OutroDuration is the fade to black before the world is rebuilt
const OutroDuration = 2 * time.Second
