package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/api"
	"github.com/sidereusnuntius/moviedeck/internal/bootstrap"
	"github.com/sidereusnuntius/moviedeck/internal/collection"
	"github.com/sidereusnuntius/moviedeck/internal/config"
	"github.com/sidereusnuntius/moviedeck/internal/initialization"
	"github.com/sidereusnuntius/moviedeck/internal/localstore/sqlitestore"
	"github.com/sidereusnuntius/moviedeck/internal/queue"
	"github.com/sidereusnuntius/moviedeck/internal/review"
	"github.com/sidereusnuntius/moviedeck/internal/session"
	"github.com/sidereusnuntius/moviedeck/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	godotenv.Load()

	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("local database opened")

	if err = initialization.SetupDB(&config, d); err != nil {
		log.Fatal(err)
	}

	q, err := initialization.InitQueue(d)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to set up the task queue")
		os.Exit(1)
	}

	settings := sqlitestore.New(d)
	client := api.New(config, &http.Client{})

	sessionStore := session.New(client, settings)
	collections := collection.New()
	reviews := review.New(client, sessionStore)

	ctx := context.Background()
	reconciler := queue.New(ctx, sessionStore, client, q)

	bootstrapper := bootstrap.New(sessionStore, collections)
	if err = bootstrapper.Run(ctx, ""); err != nil {
		zero.Warn().Err(err).Msg("starting signed out")
	}

	handler := web.New(&config, bootstrapper, collections, reviews, reconciler)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.CallbackPort),
		Handler: router,
	}

	zero.Info().Uint16("port", config.CallbackPort).Msg("started callback listener")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
