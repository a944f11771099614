// The initialization package contains functions that set up required
// dependencies such as the local SQLite database and the task queue.
package initialization

import (
	"database/sql"
	"time"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/config"
)

// SetupDB creates the local database, if it does not yet exist, and applies all
// remaining migrations.
func SetupDB(cfg *config.Configuration, db *sql.DB) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+cfg.MigrationsFolder,
		cfg.DbUrl,
		driver,
	)

	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
	}
	return db, err
}

// InitQueue builds the backlite client over the same database file. Install is
// idempotent, so running it on every start is fine.
func InitQueue(db *sql.DB) (*backlite.Client, error) {
	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		Logger:          queueLogger{},
		NumWorkers:      1,
		ReleaseAfter:    10 * time.Minute,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}

// queueLogger adapts zerolog to the logger backlite expects.
type queueLogger struct{}

func (queueLogger) Info(message string, params ...any) {
	log.Info().Fields(params).Msg(message)
}

func (queueLogger) Error(message string, params ...any) {
	log.Error().Fields(params).Msg(message)
}
