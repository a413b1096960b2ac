package core

// SoundType represents the gameplay audio cues
type SoundType int

const (
	SoundJump  SoundType = iota // Frog hop launch
	SoundSplat                  // Blob bounce start
	SoundDeath                  // Leader touched by a blob
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"jump", "splat", "death"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
