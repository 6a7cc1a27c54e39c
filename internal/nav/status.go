package nav

// Status is the navigation controller's current mode.
type Status int

const (
	StatusNormal Status = iota
	StatusLost
	StatusObstacleAvoid
	StatusStop
	StatusStandby
	StatusManual
	StatusLostRecovery
)

// String returns the mode name, or "unknown" for values outside the closed
// set. The fallback should be unreachable but keeps logs sane if a bad value
// ever crosses the boundary.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "NORMAL"
	case StatusLost:
		return "LOST"
	case StatusObstacleAvoid:
		return "OBSTACLE_AVOID"
	case StatusStop:
		return "STOP"
	case StatusStandby:
		return "STANDBY"
	case StatusManual:
		return "MANUAL"
	case StatusLostRecovery:
		return "LOST_RECOVERY"
	default:
		return "unknown"
	}
}
