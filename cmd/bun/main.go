package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/padelcoach/coach-api/app"
	"github.com/padelcoach/coach-api/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "bun",
		Usage: "coach-api database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "Path to the configuration file"},
		},
		Commands: []*cli.Command{
			newMultiModuleDBCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openDB connects using the postgres section of the config file, with
// DATABASE_URL taking precedence.
func openDB(c *cli.Context) (*bun.DB, error) {
	cfg, err := config.LoadDatabaseConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	return bun.NewDB(pgdb, pgdialect.New()), nil
}

// withMigrators opens the database, narrows the migrators to the modules
// named by --module (all when empty) and runs fn for each in order.
func withMigrators(c *cli.Context, fn func(c *cli.Context, m app.ModuleMigrator) error) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	selected, err := selectModules(app.Migrators(db), c.StringSlice("module"))
	if err != nil {
		return err
	}
	for _, m := range selected {
		if err := fn(c, m); err != nil {
			return fmt.Errorf("%s: %w", m.Module, err)
		}
	}
	return nil
}

func selectModules(all []app.ModuleMigrator, names []string) ([]app.ModuleMigrator, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]app.ModuleMigrator, len(all))
	for _, m := range all {
		byName[m.Module] = m
	}
	out := make([]app.ModuleMigrator, 0, len(names))
	for _, name := range names {
		m, ok := byName[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("invalid module name: %s", name)
		}
		out = append(out, m)
	}
	return out, nil
}

// reversed runs fn over the selected modules last to first, so dependents
// roll back before the tables they reference.
func reversed(fn func(c *cli.Context, m app.ModuleMigrator) error) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		db, err := openDB(c)
		if err != nil {
			return err
		}
		defer db.Close()

		selected, err := selectModules(app.Migrators(db), c.StringSlice("module"))
		if err != nil {
			return err
		}
		for i := len(selected) - 1; i >= 0; i-- {
			if err := fn(c, selected[i]); err != nil {
				return fmt.Errorf("%s: %w", selected[i].Module, err)
			}
		}
		return nil
	}
}

func newMultiModuleDBCommand() *cli.Command {
	moduleFlag := &cli.StringSliceFlag{Name: "module", Usage: "limit to these modules (auth, student, exercise, plan, evaluation)"}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Flags: []cli.Flag{moduleFlag},
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(c *cli.Context, m app.ModuleMigrator) error {
						fmt.Printf("Initializing migrations for module: %s\n", m.Module)
						return m.Init(c.Context)
					})
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Flags: []cli.Flag{moduleFlag},
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(c *cli.Context, m app.ModuleMigrator) error {
						if err := m.Lock(c.Context); err != nil {
							return err
						}
						defer m.Unlock(c.Context) //nolint:errcheck

						group, err := m.Migrate(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", m.Module)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", m.Module, group)
						}
						return nil
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Flags: []cli.Flag{moduleFlag},
				Action: reversed(func(c *cli.Context, m app.ModuleMigrator) error {
					if err := m.Lock(c.Context); err != nil {
						return err
					}
					defer m.Unlock(c.Context) //nolint:errcheck

					group, err := m.Rollback(c.Context)
					if err != nil {
						return err
					}
					if group.IsZero() {
						fmt.Printf("No groups to roll back for module: %s\n", m.Module)
					} else {
						fmt.Printf("Rolled back module: %s to %s\n", m.Module, group)
					}
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Flags: []cli.Flag{moduleFlag},
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(c *cli.Context, m app.ModuleMigrator) error {
						ms, err := m.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations for module: %s\n", m.Module)
						fmt.Printf("  %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
						return nil
					})
				},
			},
		},
	}
}
