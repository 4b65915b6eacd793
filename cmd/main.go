package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrutik5321/mechanicshop/internal/app"
	"github.com/hrutik5321/mechanicshop/internal/config"
	"github.com/hrutik5321/mechanicshop/internal/db"
	"github.com/hrutik5321/mechanicshop/internal/db/postgres"
	"github.com/hrutik5321/mechanicshop/internal/logger"
)

// errReported marks failures already explained to the operator.
var errReported = errors.New("reported")

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mechanicshop <dbname> <port> <user>",
		Short: "Interactive front end for the mechanic shop database",
		Long: `mechanicshop connects to the shop's PostgreSQL database and offers a
numbered menu for registering customers, mechanics and cars, closing
service requests and running the shop's reports.

Host, password, sslmode and logging can be set through MECHANICSHOP_
environment variables or a .env file.`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), config.Args{DBName: args[0], Port: args[1], User: args[2]})
		},
	}
}

func run(ctx context.Context, args config.Args) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging, os.Stderr)

	opts := []postgres.Option{
		postgres.WithOutput(os.Stdout),
		postgres.WithLogger(log),
	}
	if cfg.Logging.TraceSQL {
		opts = append(opts, postgres.WithSQLTrace(logger.PgxTraceLogLevel(log.GetLevel())))
	}
	pg := postgres.New(opts...)

	connCfg := db.ConnConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}

	fmt.Print("Connecting to database...")
	fmt.Println("Connection URL: " + connCfg.Redacted() + "\n")
	if err := pg.Connect(ctx, connCfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error - Unable to Connect to Database: "+err.Error())
		fmt.Fprintln(os.Stderr, "Make sure you started postgres on this machine")
		return errReported
	}
	fmt.Println("Done")

	defer func() {
		fmt.Print("Disconnecting from database...")
		_ = pg.Close()
		fmt.Println("Done\n\nBye !")
	}()

	return app.New(pg, os.Stdin, os.Stdout, os.Stderr, log).Run(ctx)
}
