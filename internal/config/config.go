package config

import (
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const (
	Light = "light"
	Dark  = "dark"
)

type Configuration struct {
	// ApiUrl is the base url of the remote movie backend every request is issued against.
	ApiUrl *url.URL
	// HttpTimeout bounds every request to the backend. A request that exceeds it fails
	// like any other transport error; nothing in the core waits forever.
	HttpTimeout time.Duration
	// DbUrl is the path to the local database file holding the settings table and the
	// task queue.
	DbUrl string
	// MigrationsFolder holds the local schema migrations.
	MigrationsFolder string
	// CallbackPort is the port of the loopback listener that catches the token query
	// parameter at the end of the external authentication redirect.
	CallbackPort uint16
	// Debug, if true, makes the application log every request it issues.
	Debug bool
}

// ReadConfig loads the configuration file, if one exists, and applies environment
// overrides. Every field has a usable default so the application can start with no
// configuration at all.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("moviedeck")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/moviedeck")
	v.SetEnvPrefix("moviedeck")
	v.AutomaticEnv()

	v.SetDefault("api_url", "https://mad4movies.onrender.com")
	v.SetDefault("http_timeout", "15s")
	v.SetDefault("db_url", "moviedeck.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("callback_port", 8347)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Configuration{}, err
		}
	}

	api, err := url.Parse(v.GetString("api_url"))
	if err != nil {
		return Configuration{}, err
	}

	return Configuration{
		ApiUrl:           api,
		HttpTimeout:      v.GetDuration("http_timeout"),
		DbUrl:            v.GetString("db_url"),
		MigrationsFolder: v.GetString("migrations_folder"),
		CallbackPort:     v.GetUint16("callback_port"),
		Debug:            v.GetBool("debug"),
	}, nil
}
