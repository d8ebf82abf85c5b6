package engine

import "time"

// FrameDuration is the length of one frame of the drop-speed table.
const FrameDuration = time.Second / 60

// framesPerDrop maps level to the number of frames between gravity steps.
var framesPerDrop = [30]int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
	5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
}

// DropInterval returns the gravity interval at the given level.
// Levels outside the table are clamped to [0, 29].
func DropInterval(level int) time.Duration {
	level = min(max(level, 0), len(framesPerDrop)-1)
	return time.Duration(framesPerDrop[level]) * FrameDuration
}

// Points returns the score for clearing n rows at once at the given level.
func Points(n, level int) int {
	switch n {
	case 1:
		return 40 * (level + 1)
	case 2:
		return 100 * (level + 1)
	case 3:
		return 300 * (level + 1)
	case 4:
		return 1200 * (level + 1)
	}
	return 0
}

// LinesForNextLevel returns the cumulative line count needed to leave level
// when the game started at startLevel.
func LinesForNextLevel(startLevel, level int) int {
	base := min(startLevel*10+10, max(100, startLevel*10-50))
	if level == startLevel {
		return base
	}
	return base + (level-startLevel)*10
}
