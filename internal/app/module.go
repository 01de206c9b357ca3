package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/emailotp/internal/emailotp"
)

func (a *App) initModules() {
	runner, err := emailotp.New(emailotp.Dependency{
		Directory:  a.directory,
		Mail:       a.mail,
		Config:     a.config,
		Instrument: a.ins,
		Validator:  a.validator,
		Clock:      a.clock,
		UUID:       a.uuid,
		Generator:  a.generator,
		In:         os.Stdin,
		Out:        os.Stdout,
	})
	if err != nil {
		slog.Error("failed to init module emailotp", "error", err)
		os.Exit(1)
	}

	a.runner = runner
}
