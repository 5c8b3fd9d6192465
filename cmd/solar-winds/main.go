package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/solar-winds/audio"
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/config"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/engine"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/input"
	"github.com/lixenwraith/solar-winds/logging"
	"github.com/lixenwraith/solar-winds/render"
)

var configFlag = flag.String("config", "", "Path to a config file (json, yaml or toml)")

func main() {
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "solar-winds: %v\n", err)
		os.Exit(1)
	}
}

// settingsFromConfig maps loaded config onto game knobs
func settingsFromConfig(cfg *config.Config) engine.Settings {
	s := engine.DefaultSettings()
	s.TimeScale = cfg.Game.TimeScale
	s.PlayerSpeedMultiplier = cfg.Game.PlayerSpeedMultiplier
	s.EnemySpeedMultiplier = cfg.Game.EnemySpeedMultiplier
	s.BrakePower = cfg.Game.BrakePower
	s.WeaponSeeking = cfg.Game.WeaponSeeking
	s.StartingCredits = cfg.Game.StartingCredits
	s.Power.Set(component.PowerEngines, cfg.Power.Engines)
	s.Power.Set(component.PowerShields, cfg.Power.Shields)
	s.Power.Set(component.PowerWeapons, cfg.Power.Weapons)
	s.Power.Set(component.PowerSensors, cfg.Power.Sensors)
	s.Director = engine.DirectorConfig{
		MaxEnemies:  cfg.Spawner.MaxEnemies,
		Interval:    cfg.Spawner.Interval,
		MinDistance: cfg.Spawner.MinDistance,
		MaxDistance: cfg.Spawner.MaxDistance,
	}
	return s
}

// openAudio returns the music backend and, when a device is available, the device itself
func openAudio(cfg config.Audio, log zerolog.Logger) (audio.Backend, *audio.Device) {
	if !cfg.Enabled {
		log.Info().Msg("Audio disabled by config")
		return audio.NewSilentBackend(), nil
	}
	dev, err := audio.OpenDevice(cfg.SampleRate, cfg.MusicVolume, cfg.SFXVolume)
	if err != nil {
		if errors.Is(err, audio.ErrNoAudioDevice) {
			log.Warn().Err(err).Msg("Continuing without audio")
		} else {
			log.Error().Err(err).Msg("Audio init failed")
		}
		return audio.NewSilentBackend(), nil
	}
	return dev.Music(), dev
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Msg("Starting")

	bus := event.NewBus()

	backend, dev := openAudio(cfg.Audio, log)
	var sfx *audio.SFX
	if dev != nil {
		defer dev.Close()
		sfx = audio.NewSFX(dev, dev.Rate())
		bus.Register(sfx)
	}

	music, err := audio.NewScheduler(backend, rand.New(rand.NewSource(seed+1)), log,
		audio.WithLookahead(cfg.Audio.Lookahead),
		audio.WithScheduleAhead(cfg.Audio.ScheduleAhead),
	)
	if err != nil {
		return fmt.Errorf("creating music scheduler: %w", err)
	}
	if err := music.SwitchTrack(core.TrackID(cfg.Audio.Track)); err != nil {
		log.Warn().Err(err).Msg("Falling back to the first track")
	}
	music.Start()
	defer music.Stop()

	game, err := engine.NewGame(settingsFromConfig(cfg), bus, rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before the stack trace reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error().Interface("panic", r).Msg("Crashed")
			fmt.Fprintf(os.Stderr, "\nSOLAR WINDS CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()

	a := &app{
		game:     game,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, rand.New(rand.NewSource(seed+2))),
		keys:     input.NewKeyboard(),
		music:    music,
		sfx:      sfx,
		log:      log,
		audioOK:  dev != nil,
	}

	loop := engine.NewLoop(game, engine.NewMonotonicTimeProvider(), cfg.Game.TickInterval(), log)
	loop.Start()
	defer loop.Stop()

	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.frame(time.Now())
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev, time.Now()) {
				log.Info().Uint64("ticks", loop.Ticks()).Msg("Quit")
				return nil
			}
		case <-loop.Frames():
			a.frame(time.Now())
		}
	}
}
