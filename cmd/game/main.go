package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cosmochess/cosmochess/internal/ai"
	"github.com/cosmochess/cosmochess/internal/config"
	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
	"github.com/cosmochess/cosmochess/internal/game/events"
	"github.com/cosmochess/cosmochess/internal/game/mapgen"
	"github.com/cosmochess/cosmochess/internal/game/rules"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Game seed (0 to use config default, falling back to time)")
	difficulty := flag.String("difficulty", "", "AI difficulty (easy, medium, hard) (empty to use config default)")
	maxRounds := flag.Int("max-rounds", -1, "Round limit (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *seed == 0 {
		*seed = cfg.Demo.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *difficulty == "" {
		*difficulty = cfg.AI.Difficulty
	}
	if *maxRounds == -1 {
		*maxRounds = cfg.Demo.MaxRounds
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}

	setupLogging(*logLevel, cfg.Log.Format)

	diff, err := ai.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid difficulty")
	}

	log.Info().
		Int64("seed", *seed).
		Str("difficulty", diff.String()).
		Int("max_rounds", *maxRounds).
		Msg("Starting self-play game")

	gs := mapgen.NewGameState(game.RulesFromConfig(), *seed)

	bus := events.NewBus(log.Logger)
	events.AttachLogger(bus, log.Logger, zerolog.DebugLevel)
	engine := game.NewEngine(gs, log.Logger, bus)

	tun := ai.DefaultTunables()
	players := map[string]*ai.Player{
		"white": ai.NewPlayer(core.White, diff, tun, rand.New(rand.NewSource(*seed)), log.Logger),
		"black": ai.NewPlayer(core.Black, diff, tun, rand.New(rand.NewSource(*seed+1)), log.Logger),
	}

	fmt.Println(engine.Render())

	outcome := rules.Undecided
	for round := 0; round < *maxRounds && !outcome.GameOver(); round++ {
		for _, name := range []string{"white", "black"} {
			p := players[name]
			decision, ok := p.Decide(engine.State())
			if !ok {
				log.Warn().Str("side", name).Msg("No legal action available")
				continue
			}
			if !p.Commit(engine, decision) {
				log.Warn().Str("side", name).Msg("Decision discarded")
				continue
			}
			engine.CompleteHazardPhase()

			if outcome = rules.WinnerIfAny(engine.State()); outcome.GameOver() {
				break
			}
		}
		fmt.Printf("After round %d:\n%s\n", round+1, engine.Render())
	}

	bus.Publish(events.NewGameEndedEvent(engine.ID(), outcome.String(), engine.State().Ply))
	log.Info().
		Str("outcome", outcome.String()).
		Int("final_ply", engine.State().Ply).
		Msg("Game finished")
}

func setupLogging(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
