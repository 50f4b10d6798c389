package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Bastczuak/bytepath/config"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/input"
	"github.com/Bastczuak/bytepath/render"
	"github.com/Bastczuak/bytepath/system"
)

func main() {
	configPath := flag.String("config", "bytepath.toml", "path to a TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "bytepath: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	world := engine.NewWorld()
	cfg.ApplyTo(world.Resources)
	system.RegisterAll(world)

	game := engine.NewGame(world)
	game.RunStartup()

	renderer := render.New(screen)
	keys := input.NewState()

	quit := make(chan struct{})
	go pollEvents(screen, keys, quit)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case now := <-ticker.C:
			frameTime := now.Sub(last)
			last = now

			keys.Snapshot(now, world.Resources.Input.Pressed)
			game.Advance(frameTime)
			renderer.Draw(world)
		}
	}
}

// pollEvents translates terminal events into held-key state on its own
// goroutine so a blocked PollEvent never stalls the simulation
func pollEvents(screen tcell.Screen, keys *input.State, quit chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			k, ok := input.FromTcell(ev)
			if !ok {
				continue
			}
			if k == input.KeyQuit {
				close(quit)
				return
			}
			keys.Press(k, time.Now())
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
