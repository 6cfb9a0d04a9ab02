// internal/event/types.go
package event

import "go-flappy-spin/internal/types"

const (
	WallPassed  EventType = "WallPassed"  // пара стен ушла за край, Data: WallPassedData
	BallCrashed EventType = "BallCrashed" // мяч врезался, Data: BallCrashedData
	Flapped     EventType = "Flapped"     // игрок подбросил мяч
)

// CrashCause причина проигрыша
type CrashCause string

const (
	CrashWall   CrashCause = "wall"
	CrashBounds CrashCause = "bounds"
)

type WallPassedData struct {
	Obstacle types.EntityID
}

type BallCrashedData struct {
	Cause CrashCause
}
