package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Unix(1700000000, 0)

func TestJeanStatsLevelUpOnReachingCap(t *testing.T) {
	s := NewJeanStats()
	maxXP, maxHP := s.MaxXP, s.MaxHP

	for i := 0; i < maxXP-1; i++ {
		s.IncXP()
	}
	assert.Equal(t, maxXP-1, s.XP)
	assert.Equal(t, maxXP, s.MaxXP, "no level before the cap")

	s.IncXP()
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, 2*maxXP, s.MaxXP)
	assert.Equal(t, maxHP+1, s.MaxHP)
}

func TestFrogPowerLevelUp(t *testing.T) {
	p := NewFrogPower(epoch)
	p.IncXP()
	assert.Equal(t, 1, p.XP)
	p.IncXP()
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 4, p.MaxXP)
	assert.Equal(t, 2, p.MaxPP)
}

func TestFrogPowerReachesCapExactly(t *testing.T) {
	const n = 4
	p := NewFrogPower(epoch)
	p.MaxPP = n
	p.PP = 0

	now := epoch
	for i := 0; i < n+3; i++ {
		now = now.Add(p.Cooldown)
		p.Update(now, 0)
	}
	assert.Equal(t, n, p.PP)
}

func TestFrogPowerWaitsForCooldown(t *testing.T) {
	p := NewFrogPower(epoch)
	require.True(t, p.UsePower(epoch))
	assert.Equal(t, 0, p.PP)
	assert.False(t, p.UsePower(epoch), "no charge left")

	p.Update(epoch.Add(p.Cooldown-time.Millisecond), 0)
	assert.Equal(t, 0, p.PP)
	p.Update(epoch.Add(p.Cooldown), 0)
	assert.Equal(t, 1, p.PP)
}

func TestFrogPowerBlockedByLiveFrogs(t *testing.T) {
	p := NewFrogPower(epoch)
	require.True(t, p.UsePower(epoch))

	// One frog out with one missing charge: 1 < 1-0 is false
	p.Update(epoch.Add(time.Hour), 1)
	assert.Equal(t, 0, p.PP)
}

func TestUsePowerRestartsCooldownOnlyWhenFull(t *testing.T) {
	p := NewFrogPower(epoch)
	p.MaxPP = 2
	p.PP = 2

	later := epoch.Add(10 * time.Second)
	require.True(t, p.UsePower(later))
	assert.Equal(t, later, p.start)

	evenLater := later.Add(time.Second)
	require.True(t, p.UsePower(evenLater))
	assert.Equal(t, later, p.start, "meter was not full")
}
