// Command profilectl demonstrates the validated profile accessors: it creates
// a few profiles, shows accepted and rejected writes, and optionally seeds
// profiles from a YAML file.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/attrkit/pkg/profile"
	"github.com/dmitrymomot/attrkit/pkg/validate"
)

type config struct {
	SeedFile string     `env:"SEED_FILE"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "profilectl: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, logger); err != nil {
		logger.Error("profilectl failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	registry := profile.NewRegistry()

	p := profile.New()
	registry.Add(p)

	if err := p.SetUsername("John_Doe"); err != nil {
		return err
	}
	if err := p.SetEmail("john@example.com"); err != nil {
		return err
	}

	// Rejected writes surface the field, the offending value and the reason;
	// the stored state stays untouched.
	if err := p.SetEmail("invalid_email"); err != nil {
		var fields validate.FieldErrors
		if errors.As(err, &fields) {
			for _, fe := range fields {
				logger.Warn("write rejected",
					slog.String("field", fe.Field),
					slog.String("value", fe.Value),
					slog.String("reason", fe.Reason),
				)
			}
		}
	}

	if err := p.Touch(); err != nil {
		return err
	}

	name, err := p.Username()
	if err != nil {
		return err
	}
	email, err := p.Email()
	if err != nil {
		return err
	}
	login, err := p.LastLogin()
	if err != nil {
		return err
	}

	logger.Info("profile ready",
		slog.String("id", p.ID().String()),
		slog.String("username", name),
		slog.String("email", email),
		slog.Time("last_login", *login),
	)

	if cfg.SeedFile != "" {
		f, err := os.Open(cfg.SeedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		seeded, err := profile.Seed(f)
		if err != nil {
			return err
		}
		for _, sp := range seeded {
			registry.Add(sp)
		}
		logger.Info("profiles seeded",
			slog.String("file", cfg.SeedFile),
			slog.Int("count", len(seeded)),
		)
	}

	logger.Info("registry state", slog.Int("live_profiles", registry.Len()))
	return nil
}
