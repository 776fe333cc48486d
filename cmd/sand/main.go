//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandbox/internal/app"
	"sandbox/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := sand.New(cfg.Sand())
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game := app.New(world, cfg.HUD)
	w, h := world.Canvas()

	ebiten.SetWindowTitle("sandbox — falling sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w+game.HUDWidth(), h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
