package parameter

import "time"

// Simulation timing
const (
	// SimulationFPS is the fixed tick rate of the simulation
	SimulationFPS = 60

	// SimulationDeltaTime is the fixed delta time in seconds handed to every tick
	SimulationDeltaTime = 1.0 / SimulationFPS

	// FrameUpdateInterval is the rendering frame interval (~60 FPS), independent of the tick
	FrameUpdateInterval = 16 * time.Millisecond

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 100

	// PopupDuration is how long a debug notification stays visible
	PopupDuration = 2 * time.Second
)
