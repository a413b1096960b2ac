package component

import (
	"time"

	"github.com/lixenwraith/sombervale/parameter"
)

// JeanStats are the leader's health and experience
type JeanStats struct {
	MaxHP, HP int
	MaxXP, XP int
}

func NewJeanStats() JeanStats {
	return JeanStats{
		MaxHP: parameter.JeanMaxHP,
		HP:    parameter.JeanMaxHP,
		MaxXP: parameter.JeanMaxXP,
	}
}

// IncXP adds one experience point. Reaching the cap levels up on this same call:
// XP resets, the cap doubles and max HP grows by one.
func (s *JeanStats) IncXP() {
	s.XP++
	if s.XP >= s.MaxXP {
		s.XP = 0
		s.MaxXP *= 2
		s.MaxHP++
	}
}

// FrogPower is the summoning meter: PP charges are spent to summon frogs and refill on a cooldown
type FrogPower struct {
	MaxXP, XP int
	MaxPP, PP int
	Cooldown  time.Duration
	start     time.Time
}

func NewFrogPower(now time.Time) FrogPower {
	return FrogPower{
		MaxXP:    parameter.FrogPowerMaxXP,
		MaxPP:    parameter.FrogPowerMaxPP,
		PP:       parameter.FrogPowerMaxPP,
		Cooldown: parameter.FrogPowerCooldown,
		start:    now,
	}
}

// Update refills one charge when the cooldown elapsed and fewer frogs are out than spare capacity
func (p *FrogPower) Update(now time.Time, frogs int) {
	if p.PP < p.MaxPP && frogs < p.MaxPP-p.PP && now.Sub(p.start) >= p.Cooldown {
		p.PP++
		p.start = now
	}
}

// UsePower spends one charge. The cooldown restarts only when the meter was full.
func (p *FrogPower) UsePower(now time.Time) bool {
	if p.PP <= 0 {
		return false
	}
	if p.PP == p.MaxPP {
		p.start = now
	}
	p.PP--
	return true
}

// IncXP levels the power like JeanStats.IncXP, raising max PP instead of max HP
func (p *FrogPower) IncXP() {
	p.XP++
	if p.XP >= p.MaxXP {
		p.XP = 0
		p.MaxXP *= 2
		p.MaxPP++
	}
}
