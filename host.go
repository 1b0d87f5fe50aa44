package main

import (
	"pointcube/internal/frameclock"
	"pointcube/internal/host"
)

// platform is what a backend provides to the driver.
type platform interface {
	host.Surface
	host.EventSource
	frameclock.Source
}
