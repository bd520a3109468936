package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the reservation schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					cfg, log, err := setup()
					if err != nil {
						return err
					}
					st, err := openStorage(c.Context, cfg, log)
					if err != nil {
						return err
					}
					defer st.close()
					return st.migrateUp(c.Context, log)
				},
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: func(c *cli.Context) error {
					cfg, log, err := setup()
					if err != nil {
						return err
					}
					st, err := openStorage(c.Context, cfg, log)
					if err != nil {
						return err
					}
					defer st.close()
					p, err := st.provider()
					if err != nil {
						return err
					}
					r, err := p.Down(c.Context)
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					log.Info("migration rolled back", "version", r.Source.Version)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "list migrations and whether they are applied",
				Action: func(c *cli.Context) error {
					cfg, log, err := setup()
					if err != nil {
						return err
					}
					st, err := openStorage(c.Context, cfg, log)
					if err != nil {
						return err
					}
					defer st.close()
					p, err := st.provider()
					if err != nil {
						return err
					}
					statuses, err := p.Status(c.Context)
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					for _, s := range statuses {
						log.Info("migration", "version", s.Source.Version, "path", s.Source.Path, "state", string(s.State))
					}
					return nil
				},
			},
		},
	}
}
