package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/gameserver"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
)

// Config is read from the environment, flags may override the logging part
type Config struct {
	TelegramToken string        `env:"TELEGRAM_APITOKEN"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty     bool          `env:"LOG_PRETTY" envDefault:"false"`
	BotDebug      bool          `env:"BOT_DEBUG" envDefault:"false"`
	TickInterval  time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	Trials        int           `env:"TRIALS" envDefault:"3"`
	MaxDay        int           `env:"MAX_DAY" envDefault:"255"`
	Phases        PhaseConfig   `envPrefix:"PHASE_"`
}

type PhaseConfig struct {
	Morning    time.Duration `env:"MORNING" envDefault:"5s"`
	Discussion time.Duration `env:"DISCUSSION" envDefault:"46s"`
	Voting     time.Duration `env:"VOTING" envDefault:"30s"`
	Testimony  time.Duration `env:"TESTIMONY" envDefault:"24s"`
	Judgement  time.Duration `env:"JUDGEMENT" envDefault:"20s"`
	Evening    time.Duration `env:"EVENING" envDefault:"7s"`
	Night      time.Duration `env:"NIGHT" envDefault:"39s"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, oops.Wrapf(err, "parse environment")
	}
	if cfg.TickInterval <= 0 {
		return cfg, oops.Errorf("TICK_INTERVAL must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}

func (p PhaseConfig) phaseTimes() game.PhaseTimes {
	return game.PhaseTimes{
		Morning:    p.Morning,
		Discussion: p.Discussion,
		Voting:     p.Voting,
		Testimony:  p.Testimony,
		Judgement:  p.Judgement,
		Evening:    p.Evening,
		Night:      p.Night,
	}
}

func (c Config) serverOptions(log zerolog.Logger) gameserver.Options {
	return gameserver.Options{
		PhaseTimes:   c.Phases.phaseTimes(),
		Trials:       c.Trials,
		MaxDay:       c.MaxDay,
		TickInterval: c.TickInterval,
		Logger:       log,
	}
}
