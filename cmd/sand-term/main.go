package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandbox/internal/app"
	"sandbox/internal/sims/sand"
	"sandbox/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	charPx := flag.Int("char-px", 5, "canvas pixels covered by one terminal character")
	flag.Parse()

	world, err := sand.New(cfg.Sand())
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	term.NewSession(screen, world, *charPx).Run(time.Second / time.Duration(tps))
}
