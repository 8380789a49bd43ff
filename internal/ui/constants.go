package ui

// Window sizing
const (
	WindowWidth  float32 = 650
	WindowHeight float32 = 450
)

// Layout and progress
const (
	PercentMax      = 100
	PlatformJoinSep = ", "
)
