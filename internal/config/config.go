package config

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Rotation speed per axis, radians per second
	RotationSpeedX = 0.6
	RotationSpeedY = 0.9
	RotationSpeedZ = 0.3

	// Projection parameters
	CameraDistance     = 5.0
	ProjectionScale    = 200.0
	MinProjectionDepth = 0.1

	// Color cycling parameters
	HueCycleSpeed    = 43.2 // degrees per second
	HueOffsetPerEdge = 12.0 // degrees, one full cycle over 30 edges
	Saturation       = 1.0
	Value            = 1.0

	LineWidth = 1.5

	// Clock advance per tick at ebiten's default 60 TPS
	ClockStep = 1.0 / 60.0
)
