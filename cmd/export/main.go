// Command export renders the stored budget document to a PDF or Excel file
// using the same storage configuration as the API server.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dafibh/fortuna/budget-backend/internal/config"
	"github.com/dafibh/fortuna/budget-backend/internal/repository"
	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	format := flag.String("format", "pdf", "output format: pdf or xlsx")
	output := flag.String("o", "", "output path (defaults to the download file name)")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(context.Background(), *format, *output); err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}
}

func run(ctx context.Context, formatName, output string) error {
	format, err := service.ParseExportFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	repo, closeRepo, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeRepo()

	// Loading never writes, so exporting leaves the stored document untouched
	store := service.NewBudgetStore(repo)
	store.Load(ctx)

	exports := service.NewExportService()
	file, err := exports.File(format)
	if err != nil {
		return err
	}
	if output == "" {
		output = file.Name
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := exports.Render(w, format, store.Snapshot()); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}
