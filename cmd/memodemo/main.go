package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ive_go/internal/demo"
	"github.com/on-the-ground/memo_ive_go/shared/logging"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, vcfg := demo.Init(args)
	cfg, err := demo.Parse(flags, vcfg, args)
	if err != nil || cfg == nil {
		return err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logging.Sync(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	db, err := demo.NewPersonDB()
	if err != nil {
		return err
	}
	if err := db.Insert(demo.SamplePeople...); err != nil {
		return err
	}

	// one unknown email shows that failed lookups are retried, not cached
	emails := append(demo.Emails(demo.SamplePeople), "unknown")
	report, err := demo.Run(ctx, *cfg, logger, db, emails)
	if err != nil {
		return err
	}

	logger.Info("memo demo finished",
		zap.String("store", cfg.Store),
		zap.Uint64("db_lookups", report.DBLookups),
		zap.Int("found", report.Found),
		zap.Int("missing", report.Missing),
		zap.Int("warm_failures", report.WarmErrs),
		zap.Uint64("memo_hits", report.Memo.Hits),
		zap.Uint64("memo_misses", report.Memo.Misses),
		zap.Int("memo_len", report.Memo.Len),
	)
	return nil
}
