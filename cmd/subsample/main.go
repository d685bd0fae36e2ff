// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/subsample/config"
	"github.com/ava-labs/subsample/utils/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "subsample failed: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subsample",
		Short: "Rarefy a table of count vectors to a common sampling depth",
		Long: `Reads a table mapping sample IDs to count vectors and subsamples every
vector to the same number of items, either without replacement or, with
--with-replacement, multinomially. The rarefied table is written to stdout as
JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFunc,
	}
	cmd.Flags().AddFlagSet(config.BuildFlagSet())
	return cmd
}

func runFunc(cmd *cobra.Command, _ []string) error {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.GetConfig(v)
	if err != nil {
		return err
	}

	log := logging.New("subsample", cfg.Logging, nopCloser{cmd.ErrOrStderr()})
	defer log.Stop()

	if err := run(cmd.Context(), log, cfg, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		log.Error("failed to rarefy table",
			zap.String("input", cfg.Input),
			zap.Error(err),
		)
		return err
	}
	return nil
}
