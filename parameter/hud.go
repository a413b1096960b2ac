package parameter

import "time"

// Jean starting stats
const (
	JeanMaxHP = 10
	JeanMaxXP = 10
)

// Frog power meter
const (
	FrogPowerMaxPP    = 1
	FrogPowerMaxXP    = 2
	FrogPowerCooldown = 3 * time.Second
)

// Meter layout in screen pixels
const (
	MeterWidth  = 20
	MeterHeight = 2

	HPMeterX      = 14
	HPMeterY      = 3
	XPMeterX      = 40
	XPMeterY      = 3
	PPMeterX      = 14
	PPMeterY      = 13
	PowerXPMeterX = 40
	PowerXPMeterY = 13
)
