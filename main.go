package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"cave-dungeons/config"
	"cave-dungeons/ecs"
	"cave-dungeons/generation"
	"cave-dungeons/systems"
	"cave-dungeons/terminal"
)

func main() {
	seed := flag.Int64("seed", 0, "level generation seed (0 = time based)")
	term := flag.Bool("term", false, "play in the terminal instead of a window")
	fullscreen := flag.Bool("fullscreen", false, "run the window fullscreen")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	generator := generation.NewLevelGenerator()
	generator.SetSeed(*seed)
	events := ecs.NewEventManager()
	clock := systems.NewMonotonicClock()
	rng := rand.New(rand.NewSource(*seed + 1))

	if *term {
		runTerminal(generator, events, clock, rng)
		return
	}

	movement := systems.NewMovementSystem(systems.NewEbitenInput(), rng, events)
	loop := systems.NewGameStateSystem(generator, movement, events, clock)
	if err := loop.Start(); err != nil {
		log.Fatal(err)
	}
	systems.GetMessageLog().Add("Find the exit. WASD or arrow keys to move, F1 for the debug log.")

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowTitle("Cave Dungeons")
	if err := ebiten.RunGame(NewGame(loop)); err != nil {
		log.Fatal(err)
	}
}

func runTerminal(generator *generation.LevelGenerator, events *ecs.EventManager, clock systems.Clock, rng *rand.Rand) {
	input := terminal.NewKeyHold(clock)
	movement := systems.NewMovementSystem(input, rng, events)
	loop := systems.NewGameStateSystem(generator, movement, events, clock)
	if err := loop.Start(); err != nil {
		log.Fatal(err)
	}
	systems.GetMessageLog().Add("Find the exit. WASD or arrow keys to move, q to quit.")

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = terminal.Run(ctx, screen, loop, input)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
