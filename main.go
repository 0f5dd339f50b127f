package main

import (
	"log"

	"artboardpro/internal/config"
	"artboardpro/internal/state"
	"artboardpro/internal/ui"
)

func main() {
	cfg := config.Load(config.Dir())
	log.Printf("[APP] starting with %dx%d canvas", cfg.CanvasWidth, cfg.CanvasHeight)

	board := state.NewBoard()
	board.SetThickness(cfg.Thickness)

	ui.RunApp(cfg, board)
	log.Println("[APP] window closed, exiting")
}
