package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/hrutik5321/mechanicshop/internal/db"
	"github.com/hrutik5321/mechanicshop/internal/prompt"
)

// App is one interactive session against the shop database.
type App struct {
	db     db.DB
	prompt *prompt.Prompter
	out    io.Writer
	errOut io.Writer
	log    zerolog.Logger

	state state
}

func New(dbClient db.DB, in io.Reader, out, errOut io.Writer, logger zerolog.Logger) *App {
	return &App{
		db:     dbClient,
		prompt: prompt.New(in, out, errOut),
		out:    out,
		errOut: errOut,
		log:    logger,
		state:  stateRunning,
	}
}
