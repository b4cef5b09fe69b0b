// seeddrugs loads a drug catalog CSV into the configured database.
// Usage: go run ./cmd/seeddrugs -file drugs.csv [-encoding windows-874]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"pharmastock/internal/config"
	"pharmastock/internal/infra"
	"pharmastock/internal/repository"
	"pharmastock/internal/seed"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	file := flag.String("file", "", "CSV file with a header row")
	encoding := flag.String("encoding", seed.EncodingUTF8, "utf8 or windows-874")
	flag.Parse()
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("open csv")
	}
	defer f.Close()

	r, err := seed.Reader(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("decoder")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := seed.Load(ctx, repository.NewDrugRepository(db), r)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	for _, rej := range res.Rejected {
		log.Warn().Int("line", rej.Line).Err(rej.Err).Msg("row rejected")
	}
}
