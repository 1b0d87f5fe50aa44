//go:build !sdl && !tcell

package main

import "pointcube/internal/surface/glwindow"

const hostName = "glfw"

func openHost() (platform, error) {
	w, err := glwindow.New(title, screenWidth, screenHeight, screenSizeMultiplier)
	if err != nil {
		return nil, err
	}
	return w, nil
}
