package ai

// Controller is anything the TickManager drives once per simulation frame.
type Controller interface {
	// Start starts the controller
	Start()

	// Stop stops the controller
	Stop()

	// Tick advances the controller by dt seconds
	Tick(dt float64)
}
