package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arielf-camacho/cold-stream/internal/config"
	"github.com/arielf-camacho/cold-stream/internal/logger"
	"github.com/arielf-camacho/cold-stream/internal/server"
	"github.com/arielf-camacho/cold-stream/internal/telemetry"
	"github.com/arielf-camacho/cold-stream/internal/wordlist"
	"github.com/arielf-camacho/cold-stream/scrabble"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/arielf-camacho/cold-stream/sources"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "scrabble:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load("scrabble", args)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging)
	ctx = log.WithContext(ctx)

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()

	instruments, err := telemetry.NewGlobalInstruments()
	if err != nil {
		return err
	}

	if cfg.Serve {
		if log.GetLevel() > zerolog.DebugLevel {
			gin.SetMode(gin.ReleaseMode)
		}
		srv, err := server.New(server.Config{
			Addr:        cfg.Addr,
			Tables:      cfg.ScrabbleTables(),
			Top:         cfg.Top,
			Instruments: instruments,
		}, log)
		if err != nil {
			return err
		}
		return srv.Run(ctx)
	}

	return play(ctx, cfg, instruments, out)
}

func play(
	ctx context.Context,
	cfg *config.Config,
	instruments *telemetry.Instruments,
	out io.Writer,
) error {
	dictionary, err := wordlist.LoadSet(ctx, cfg.Dictionary)
	if err != nil {
		return err
	}
	corpus, err := wordlist.LoadSet(ctx, cfg.Corpus)
	if err != nil {
		return err
	}

	player, err := scrabble.NewPlayer(cfg.ScrabbleTables()).Top(cfg.Top).Build()
	if err != nil {
		return err
	}

	ctx, end := instruments.StartPlay(ctx, corpus.Len())
	ranks, err := player.Play(ctx, corpus.Values(), dictionary)
	end(len(ranks), err)
	if err != nil {
		return err
	}

	printer := sinks.Writer[scrabble.Rank](out).Format(func(r scrabble.Rank) []byte {
		return fmt.Appendf(nil, "%d\t%s\n", r.Score, strings.Join(r.Words, " "))
	}).Build()

	return sources.Slice(ranks).Build().Collect(ctx, printer)
}
