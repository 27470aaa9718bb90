package cmd

import (
	"context"
	"os"

	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/db/seeders"
	"github.com/adrinata/go-catalog/app/models/migrations"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Info().Msg("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Populate the database with sample catalog data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Info().Msg("✅ Seeding complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
