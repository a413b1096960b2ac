package parameter

import "time"

// Sound effect timing
const (
	JumpSoundDuration = 90 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 40 * time.Millisecond

	SplatSoundDuration = 140 * time.Millisecond
	SplatSoundAttack   = 2 * time.Millisecond
	SplatSoundRelease  = 100 * time.Millisecond

	DeathSoundNote1Duration = 180 * time.Millisecond
	DeathSoundNote2Duration = 420 * time.Millisecond
	DeathSoundAttack        = 5 * time.Millisecond
	DeathSoundRelease       = 150 * time.Millisecond

	AmbienceCycle = 4 * time.Second
)
