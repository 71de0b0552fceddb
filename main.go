package main

import (
	"log"

	"LayerBoard/internal/state"
	"LayerBoard/internal/ui"
)

const (
	initialWidth  = 1024
	initialHeight = 768
)

func main() {
	log.Println("Starting LayerBoard")
	session := state.NewSession(initialWidth, initialHeight)
	ui.RunApp(session)
}
