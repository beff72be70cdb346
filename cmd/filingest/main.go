// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/filingest"
	"github.com/poiesic/filingest/config"
	"github.com/poiesic/filingest/core"
	"github.com/poiesic/filingest/logging"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "filingest",
		Usage:     "Ingest SEC filings for a ticker into a Qdrant vector index",
		ArgsUsage: "ticker doctype",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "save-dir",
				Usage: "Directory to save the downloaded filings",
				Value: ".",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		cli.ShowAppHelp(c)
		return fmt.Errorf("expected exactly two arguments: ticker doctype")
	}

	ticker := core.NormalizeTicker(c.Args().Get(0))
	if ticker == "" {
		return core.ErrEmptyTicker
	}
	docType, err := core.ParseDocType(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("doctype must be one of 10-K, 10-Q, 8-K: %w", err)
	}

	level, err := logging.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}

	cfg := config.Load()
	if _, err := logging.Setup(level, cfg.LogPath); err != nil {
		return err
	}

	slog.Info("---------- Starting pipeline ----------")

	svc, err := filingest.NewService(cfg)
	if err != nil {
		return err
	}
	defer func() {
		svc.Close()
		slog.Info("exit")
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Pipeline failures are logged with full context, not surfaced as a
	// process error; the store teardown above runs either way.
	if err := svc.Run(ctx, ticker, docType, c.String("save-dir")); err != nil {
		slog.Error("problem executing the pipeline", "ticker", ticker, "docType", docType, "err", err)
	}
	return nil
}
