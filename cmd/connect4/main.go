package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/repository/csvlog"
	"github.com/iamasit07/connect4-engine/internal/repository/postgres"
	"github.com/iamasit07/connect4-engine/internal/repository/redis"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/selfplay"
	"github.com/iamasit07/connect4-engine/internal/transport/terminal"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <command> [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  play      play against the engine in the terminal")
	fmt.Fprintln(os.Stderr, "  selfplay  run random-vs-engine games and log every move")
}

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("no .env file found")
		}
	}

	cfg := config.LoadConfig()
	setupLogging(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(cfg, os.Args[2:])
	case "selfplay":
		err = runSelfPlay(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if commandFailed(err) {
		log.Fatal().Err(err).Msg(os.Args[1] + " failed")
	}
}

// commandFailed reports whether err should end the process with an error;
// asking a subcommand for -h is not a failure.
func commandFailed(err error) bool {
	return err != nil && !errors.Is(err, flag.ErrHelp)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func runPlay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	depth := fs.Int("depth", cfg.InteractiveDepth, "search depth of the engine (0 uses -difficulty)")
	difficulty := fs.String("difficulty", cfg.Difficulty, "easy, medium or hard; used when -depth is 0")
	aiFirst := fs.Bool("ai-first", false, "let the engine make the first move")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var ply bot.Player = bot.MinimaxPlayer{Depth: *depth, Parallel: true}
	if *depth <= 0 {
		ply = bot.PlayerForDifficulty(*difficulty)
	}

	sh, err := terminal.NewShell(ply, *aiFirst)
	if err != nil {
		return err
	}
	sh.Loop()
	return nil
}

func runSelfPlay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	games := fs.Int("games", cfg.SelfPlayGames, "number of games to play")
	depth := fs.Int("depth", cfg.SelfPlayDepth, "search depth of the engine")
	workers := fs.Int("workers", cfg.SelfPlayWorkers, "games played concurrently")
	out := fs.String("out", cfg.SelfPlayOutput, "CSV move log path, empty to disable")
	usePostgres := fs.Bool("postgres", false, "also store games in DATABASE_URL")
	useRedis := fs.Bool("redis", false, "also tally outcomes in REDIS_URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorders []selfplay.Recorder

	if *out != "" {
		moveLog, err := csvlog.Create(*out)
		if err != nil {
			return err
		}
		defer func() {
			if err := moveLog.Close(); err != nil {
				log.Error().Err(err).Str("path", *out).Msg("failed to close move log")
			}
		}()
		recorders = append(recorders, moveLog)
	}

	if *usePostgres {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("-postgres needs DATABASE_URL")
		}
		db, err := postgres.Open(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			return err
		}
		defer db.Close()
		recorders = append(recorders, postgres.NewSelfPlayRepo(db))
	}

	if *useRedis {
		client, enabled := redis.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if enabled {
			defer client.Close()
			recorders = append(recorders, redis.NewOutcomeTally(redis.NewRedisCache(client)))
		}
	}

	svc := selfplay.NewService(selfplay.Options{Depth: *depth, Workers: *workers}, recorders...)
	summary, err := svc.Run(ctx, *games)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d games, random wins %d, engine wins %d, draws %d\n",
		summary.RunID, summary.Games, summary.WinsA, summary.WinsB, summary.Draws)
	return nil
}
