package main

const (
	screenWidth          = 320
	screenHeight         = 240
	screenSizeMultiplier = 3
	title                = "Drawing Pixels!!"

	fieldOfView  = 60.0 // degrees
	cubeSide     = 30.0
	cubeStep     = 1.0
	angularSpeed = 1.0 // radians per second

	// projectionWorkers splits the lattice projection across goroutines.
	projectionWorkers = 4
)
