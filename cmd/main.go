package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("blackjack: %v", err)
	}
	level, _ := cfg.Level()
	pterm.DefaultLogger.Level = logLevel(level)

	// Create a new slog logger backed by the default PTerm logger
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []application.SessionOption{
		application.WithLogger(logger),
		application.WithMaxRounds(cfg.MaxRounds),
	}
	if cfg.Seeded() {
		logger.Info("dealing from a seeded shoe", "seed", cfg.Seed)
		opts = append(opts, application.WithStream(deck.SeededStream([]byte(cfg.Seed))))
	}
	table := newConsole(cfg.ConfirmStand)
	session := application.NewSession(blackjack.NewBankroll(cfg.StartingChips), table, table, opts...)

	pterm.Info.Printfln("Welcome to Blackjack! You start with %d chips.", cfg.StartingChips)
	stats, err := session.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		pterm.Println()
		pterm.Warning.Println("Interrupted, leaving the table.")
	case errors.Is(err, application.ErrInternal):
		logger.Error("unexpected internal error", "error", err)
	case err != nil:
		logger.Error("session ended", "error", err)
	}
	if err := session.Journal().Verify(); err != nil {
		logger.Error("journal verification failed", "error", err)
	}

	pterm.Println()
	if session.Bankroll().Broke() {
		pterm.Error.Println("You're out of chips! Game over!")
	}
	if stats.Rounds > 0 {
		_ = pterm.DefaultTable.WithHasHeader().WithData(summaryTable(stats)).Render()
	}
	pterm.Success.Printfln("You're leaving with %d chips. Thanks for playing!", stats.Closing)
	if err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}

func logLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l < slog.LevelInfo:
		return pterm.LogLevelDebug
	case l < slog.LevelWarn:
		return pterm.LogLevelInfo
	case l < slog.LevelError:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
