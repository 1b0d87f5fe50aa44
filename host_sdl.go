//go:build sdl && !tcell

package main

import "pointcube/internal/surface/sdlwindow"

const hostName = "sdl"

func openHost() (platform, error) {
	w, err := sdlwindow.New(title, screenWidth, screenHeight, screenSizeMultiplier)
	if err != nil {
		return nil, err
	}
	return w, nil
}
