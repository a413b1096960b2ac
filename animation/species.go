package animation

import (
	"time"

	"github.com/lixenwraith/sombervale/vmath"
)

// Sprite sheet row counts, one row per frame
const (
	JeanRows = 18
	FrogRows = 10
	BlobRows = 16
	FireRows = 6
)

// --- Jean ---

type JeanClip int

const (
	JeanIdleRight JeanClip = iota
	JeanIdleLeft
	JeanWalkRight
	JeanWalkLeft
)

const jeanWalkFrame = 80 * time.Millisecond

// Jean is the leader: idle and walking in two facings
type Jean struct {
	Player[JeanClip]
}

func NewJean(now time.Time) *Jean {
	return &Jean{newPlayer(now, JeanIdleRight, []Clip{
		JeanIdleRight: NewClip(Frame{0, time.Second}),
		JeanIdleLeft:  NewClip(Frame{9, time.Second}),
		JeanWalkRight: NewClip(Run(1, 8, jeanWalkFrame)...),
		JeanWalkLeft:  NewClip(Run(10, 17, jeanWalkFrame)...),
	})}
}

// Facing derives the drawn direction from the playing clip
func (j *Jean) Facing() Facing {
	switch j.Playing() {
	case JeanIdleLeft, JeanWalkLeft:
		return Left
	}
	return Right
}

// ToIdle stops walking and keeps the facing
func (j *Jean) ToIdle(now time.Time) {
	switch j.Playing() {
	case JeanWalkRight:
		j.Set(JeanIdleRight, now)
	case JeanWalkLeft:
		j.Set(JeanIdleLeft, now)
	}
}

// ToWalking starts the walk cycle for f, an ongoing walk in the same facing continues
func (j *Jean) ToWalking(f Facing, now time.Time) {
	want := JeanWalkRight
	if f == Left {
		want = JeanWalkLeft
	}
	if j.Playing() != want {
		j.Set(want, now)
	}
}

// Walking reports whether a walk clip plays
func (j *Jean) Walking() bool {
	p := j.Playing()
	return p == JeanWalkRight || p == JeanWalkLeft
}

// --- Frog ---

type FrogClip int

const (
	FrogIdleRight FrogClip = iota
	FrogIdleLeft
	FrogHopRight
	FrogHopLeft
)

const (
	frogHopFrame  = 100 * time.Millisecond
	frogLandFrame = 200 * time.Millisecond
)

// Frog hops in bursts and returns to idle after each hop
type Frog struct {
	Player[FrogClip]
}

func NewFrog(now time.Time) *Frog {
	f := &Frog{newPlayer(now, FrogIdleRight, []Clip{
		FrogIdleRight: NewClip(Frame{0, time.Second}),
		FrogIdleLeft:  NewClip(Frame{5, time.Second}),
		FrogHopRight:  NewClip(append(Run(0, 3, frogHopFrame), Frame{4, frogLandFrame})...),
		FrogHopLeft:   NewClip(append(Run(5, 8, frogHopFrame), Frame{9, frogLandFrame})...),
	})}
	f.OnWrap(FrogHopRight, FrogIdleRight)
	f.OnWrap(FrogHopLeft, FrogIdleLeft)
	return f
}

// Idle reports whether the frog is between hops
func (f *Frog) Idle() bool {
	p := f.Playing()
	return p == FrogIdleRight || p == FrogIdleLeft
}

// Hop starts a hop cycle facing f
func (f *Frog) Hop(facing Facing, now time.Time) {
	if facing == Left {
		f.Set(FrogHopLeft, now)
	} else {
		f.Set(FrogHopRight, now)
	}
}

// Airborne is true on hop frames between takeoff and landing, the only frames that move
func (f *Frog) Airborne() bool {
	if f.Idle() {
		return false
	}
	c := f.Clip()
	return c.Cursor() != 0 && c.Cursor() != c.Len()-1
}

// --- Blob ---

type BlobClip int

const (
	BlobIdleRight BlobClip = iota
	BlobIdleLeft
	BlobBounceRight
	BlobBounceLeft
)

const (
	blobBounceFrame = 80 * time.Millisecond
	blobLandFrame   = 120 * time.Millisecond
)

// Blob bounces in a random direction now and then
type Blob struct {
	Player[BlobClip]
}

func NewBlob(now time.Time, facing Facing) *Blob {
	initial := BlobIdleRight
	if facing == Left {
		initial = BlobIdleLeft
	}
	b := &Blob{newPlayer(now, initial, []Clip{
		BlobIdleRight:   NewClip(Frame{0, time.Second}),
		BlobIdleLeft:    NewClip(Frame{8, time.Second}),
		BlobBounceRight: NewClip(append(Run(1, 6, blobBounceFrame), Frame{7, blobLandFrame})...),
		BlobBounceLeft:  NewClip(append(Run(9, 14, blobBounceFrame), Frame{15, blobLandFrame})...),
	})}
	b.OnWrap(BlobBounceRight, BlobIdleRight)
	b.OnWrap(BlobBounceLeft, BlobIdleLeft)
	return b
}

// Idle reports whether the blob rests, idle blobs never move
func (b *Blob) Idle() bool {
	p := b.Playing()
	return p == BlobIdleRight || p == BlobIdleLeft
}

// Bounce starts a bounce cycle facing f
func (b *Blob) Bounce(facing Facing, now time.Time) {
	if facing == Left {
		b.Set(BlobBounceLeft, now)
	} else {
		b.Set(BlobBounceRight, now)
	}
}

// --- Fire ---

type FireClip int

const FireBurn FireClip = 0

// Fire loops forever from a random frame so neighbouring fires flicker out of phase
type Fire struct {
	Player[FireClip]
}

func NewFire(now time.Time, rng *vmath.FastRand) *Fire {
	f := &Fire{newPlayer(now, FireBurn, []Clip{
		FireBurn: NewClip(
			Frame{0, 30 * time.Millisecond},
			Frame{1, 40 * time.Millisecond},
			Frame{2, 30 * time.Millisecond},
			Frame{3, 50 * time.Millisecond},
			Frame{4, 35 * time.Millisecond},
			Frame{5, 40 * time.Millisecond},
		),
	})}
	f.Clip().Seek(rng.Intn(f.Clip().Len()))
	return f
}

// FacingFromX picks the drawn facing for a ground-plane heading
func FacingFromX(x float32) Facing {
	if x < 0 {
		return Left
	}
	return Right
}
