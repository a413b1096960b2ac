package input

// Key is a semantic key after scancode mapping by the frontend
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyUse
	KeySelect
	keyCount
)

// Direction is a bitmask of the directional keys that survive cancellation
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// NoDirection means no walking input
const NoDirection Direction = 0

func (d Direction) Has(o Direction) bool { return d&o != 0 }

// Diagonal is true when one vertical and one horizontal bit are set
func (d Direction) Diagonal() bool {
	return d&(DirUp|DirDown) != 0 && d&(DirLeft|DirRight) != 0
}

// Octant maps the direction onto k*Tau/8 with k=0 along +X (right) turning toward +Z (up)
func (d Direction) Octant() (int, bool) {
	switch d {
	case DirRight:
		return 0, true
	case DirUp | DirRight:
		return 1, true
	case DirUp:
		return 2, true
	case DirUp | DirLeft:
		return 3, true
	case DirLeft:
		return 4, true
	case DirDown | DirLeft:
		return 5, true
	case DirDown:
		return 6, true
	case DirDown | DirRight:
		return 7, true
	}
	return 0, false
}

// Power is a discrete action edge
type Power int

const (
	PowerNone Power = iota
	PowerUse
	PowerSelect
)

// Controls turns key edges into walk state and one-shot power edges
type Controls struct {
	held     [keyCount]bool
	power    Power
	diagonal bool
}

// Update consumes one key edge, repeated edges in the same state are ignored
func (c *Controls) Update(k Key, pressed bool) {
	if k < 0 || k >= keyCount || c.held[k] == pressed {
		return
	}
	wasDiagonal := c.Walk().Diagonal()
	c.held[k] = pressed

	if pressed {
		switch k {
		case KeyUse:
			c.power = PowerUse
		case KeySelect:
			c.power = PowerSelect
		}
	}
	if !wasDiagonal && c.Walk().Diagonal() {
		c.diagonal = true
	}
}

// Held reports the raw key state
func (c *Controls) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return c.held[k]
}

// Walk returns the held directions, opposite keys held together cancel on that axis
func (c *Controls) Walk() Direction {
	var d Direction
	if c.held[KeyUp] != c.held[KeyDown] {
		if c.held[KeyUp] {
			d |= DirUp
		} else {
			d |= DirDown
		}
	}
	if c.held[KeyLeft] != c.held[KeyRight] {
		if c.held[KeyLeft] {
			d |= DirLeft
		} else {
			d |= DirRight
		}
	}
	return d
}

// Power returns the latest press of a power key once, then PowerNone until the next press
func (c *Controls) Power() Power {
	p := c.power
	c.power = PowerNone
	return p
}

// BeginningDiagonal is true once after the walk direction turns diagonal
func (c *Controls) BeginningDiagonal() bool {
	d := c.diagonal
	c.diagonal = false
	return d
}

// Reset releases every key and drops pending edges
func (c *Controls) Reset() {
	*c = Controls{}
}
