package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/jejutic/mafia_server/pkg/gameserver"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_defaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, 255, cfg.MaxDay)
	assert.Equal(t, 39*time.Second, cfg.Phases.Night)
	assert.Equal(t, 46*time.Second, cfg.Phases.Discussion)
}

func TestLoadConfig_env(t *testing.T) {
	t.Setenv("TELEGRAM_APITOKEN", "token")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PHASE_NIGHT", "1m")
	t.Setenv("TICK_INTERVAL", "250ms")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.TelegramToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.Phases.Night)

	opts := cfg.serverOptions(zerolog.Nop())
	assert.Equal(t, time.Minute, opts.PhaseTimes.Night)
	assert.Equal(t, 5*time.Second, opts.PhaseTimes.Morning)
	assert.Equal(t, 250*time.Millisecond, opts.TickInterval)
}

func TestLoadConfig_errors(t *testing.T) {
	t.Setenv("PHASE_VOTING", "soon")
	_, err := loadConfig()
	assert.Error(t, err)

	t.Setenv("PHASE_VOTING", "30s")
	t.Setenv("TICK_INTERVAL", "0s")
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "warn", false)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	_, err = newLogger(&buf, "loud", false)
	assert.Error(t, err)
}

func TestMessageConfig(t *testing.T) {
	plain := messageConfig(gameserver.ServerMessage{User: 1, Text: "hi"})
	assert.Equal(t, int64(1), plain.ChatID)
	assert.Nil(t, plain.ReplyMarkup)

	removed := messageConfig(gameserver.ServerMessage{User: 1, Text: "hi", Options: []string{}})
	assert.NotNil(t, removed.ReplyMarkup)

	keyboard := messageConfig(gameserver.ServerMessage{User: 1, Text: "vote", Options: []string{"/vote a", "/vote b"}})
	assert.NotNil(t, keyboard.ReplyMarkup)
}

func TestSimulateCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"simulate", "--log-level", "error", "pkg/scenario/testdata/lynch.yaml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "grave: alice died on day 2")
	assert.Contains(t, out.String(), "game over: town")
}

func TestServeCmd_noToken(t *testing.T) {
	t.Setenv("TELEGRAM_APITOKEN", "")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve"})

	assert.ErrorContains(t, cmd.Execute(), "TELEGRAM_APITOKEN")
}
