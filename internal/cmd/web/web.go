// Package web parses the site command configuration and runs the server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brightfieldschool/site/internal/content/sqlite"
	"github.com/brightfieldschool/site/internal/platform/config"
	"github.com/brightfieldschool/site/internal/platform/otel"
	"github.com/brightfieldschool/site/internal/suggestion"
	"github.com/brightfieldschool/site/internal/web"
)

// Config holds the site command configuration.
type Config struct {
	HTTPAddr           string `env:"BRIGHTFIELD_HTTP_ADDR"           envDefault:"localhost:8080"`
	DBPath             string `env:"BRIGHTFIELD_DB_PATH"             envDefault:"brightfield.db"`
	SuggestionEndpoint string `env:"BRIGHTFIELD_SUGGESTION_ENDPOINT" envDefault:"https://forms.brightfield.edu.br/suggestions"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the content SQLite database")
	fs.StringVar(&cfg.SuggestionEndpoint, "suggestion-endpoint", cfg.SuggestionEndpoint, "URL that receives relayed suggestions")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run wires the content store, the suggestion relay, and the HTTP server,
// then serves until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "web")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}

	relay, err := suggestion.NewRelay(cfg.SuggestionEndpoint, nil)
	if err != nil {
		return fmt.Errorf("init suggestion relay: %w", err)
	}
	sessions, err := web.NewSessions(func() (*suggestion.Form, error) {
		return suggestion.NewForm(suggestion.Config{Submitter: relay})
	}, 0)
	if err != nil {
		return fmt.Errorf("init suggestion sessions: %w", err)
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		Sessions: sessions,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
