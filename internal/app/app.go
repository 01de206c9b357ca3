package app

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/emailotp/internal/emailotp"
	"github.com/shandysiswandi/emailotp/internal/emailotp/outbound/directory"
	"github.com/shandysiswandi/emailotp/internal/pkg/clock"
	"github.com/shandysiswandi/emailotp/internal/pkg/config"
	"github.com/shandysiswandi/emailotp/internal/pkg/goroutine"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
	"github.com/shandysiswandi/emailotp/internal/pkg/mail"
	"github.com/shandysiswandi/emailotp/internal/pkg/otp"
	"github.com/shandysiswandi/emailotp/internal/pkg/uid"
	"github.com/shandysiswandi/emailotp/internal/pkg/validator"
)

// App wires dependencies and manages the console lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	generator otp.Generator

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	directory directory.Directory
	mail      mail.Mail

	// console
	runner    emailotp.Runner
	terminate chan struct{}
	closeOnce sync.Once

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:       ctx,
		cancel:    cancel,
		terminate: make(chan struct{}),
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDirectory()
	app.initMail()
	app.initModules()
	app.initClosers()

	return app
}
