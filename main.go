package main

import (
	"log"
	"runtime"

	"pointcube/internal/camera"
	"pointcube/internal/driver"
	"pointcube/internal/frameclock"
	"pointcube/internal/lattice"
	"pointcube/internal/projector"
	"pointcube/internal/rotation"
)

func init() {
	// window systems want every call on the main thread
	runtime.LockOSThread()
}

func main() {
	cube, err := lattice.Generate(cubeSide, cubeStep)
	if err != nil {
		log.Fatalln("failed to build cube:", err)
	}

	log.Printf("rendering %d points on the %s host", cube.Len(), hostName)

	h, err := openHost()
	if err != nil {
		log.Fatalln(err)
	}

	d := driver.New(driver.Config{
		Surface:   h,
		Events:    h,
		Clock:     frameclock.New(h, frameclock.TargetFrameMs),
		Camera:    camera.New(fieldOfView, screenWidth, screenHeight),
		Lattice:   cube,
		Rotation:  rotation.New(angularSpeed),
		Projector: projector.New(projectionWorkers),
	})
	d.Run()
}
