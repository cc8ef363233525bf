package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"lurch/internal/audio"
	"lurch/internal/game"
	"lurch/internal/sim"
	"lurch/internal/term"
)

var (
	termFlag    = flag.Bool("term", false, "Run in the terminal instead of a window")
	seedFlag    = flag.Uint64("seed", 0, "Food placement seed (0 = clock)")
	upsFlag     = flag.Float64("ups", sim.BaseRate, "Base logical updates per second")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
	catchUpFlag = flag.Int("catchup", 0, "Max logical steps per frame (0 = uncapped)")
)

func main() {
	flag.Parse()

	cfg := sim.DefaultConfig()
	cfg.BaseRate = *upsFlag
	cfg.MaxCatchUp = *catchUpFlag

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	bus := sim.NewEventBus()
	round, err := sim.NewRound(cfg, sim.NewSession(), sim.NewRand(seed), bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lurch: %v\n", err)
		os.Exit(1)
	}

	if !*muteFlag {
		if snd, err := audio.New(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			snd.Attach(bus)
		}
	}

	if *termFlag {
		err = term.Run(round)
	} else {
		logScores(bus)
		fmt.Println("Press SPACE to start")
		err = game.Run(round, bus)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lurch: %v\n", err)
		os.Exit(1)
	}
}

// logScores prints score lines to stdout. The terminal frontend owns stdout,
// so only the desktop frontend uses this.
func logScores(bus *sim.EventBus) {
	bus.Subscribe(sim.EventFoodEaten, func(e sim.Event) {
		fmt.Printf("Score: %d | High Score: %d\n", e.Score, e.HighScore)
	})
	bus.Subscribe(sim.EventRoundEnded, func(e sim.Event) {
		fmt.Printf("Game over. Score: %d | High Score: %d\n", e.Score, e.HighScore)
	})
}
