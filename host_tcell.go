//go:build tcell

package main

import "pointcube/internal/surface/termscreen"

const hostName = "terminal"

func openHost() (platform, error) {
	w, err := termscreen.New(screenWidth, screenHeight)
	if err != nil {
		return nil, err
	}
	return w, nil
}
