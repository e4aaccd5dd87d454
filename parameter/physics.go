package parameter

// Simulation tick tuning, velocities are in layout units per frame
const (
	// Padding keeps every body this far inside the container edge
	Padding = 8.0

	// DampingSettling is applied per frame while a fresh layout calms down
	DampingSettling = 0.90

	// DampingSteady is applied per frame once a body has settled
	DampingSteady = 0.985

	// Restitution is the fraction of velocity kept after a wall bounce
	Restitution = 0.5

	// CollisionForce converts penetration depth into separating velocity
	CollisionForce = 0.05

	// PositionCorrection is the share of penetration each free body is moved out per frame
	PositionCorrection = 0.25

	// StagnationSpeed below which a body gets a random nudge
	StagnationSpeed = 0.1

	// StagnationNudge is the per-axis bound of that nudge
	StagnationNudge = 0.1

	// SettleSpeed below which a settling body switches to steady damping
	SettleSpeed = 0.12

	// MaxSpeed caps any body velocity, including released momentum
	MaxSpeed = 30.0
)
