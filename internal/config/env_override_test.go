package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides_Session(t *testing.T) {
	t.Run("CONTACTS_BIRTHDAY_WINDOW sets window", func(t *testing.T) {
		t.Setenv("CONTACTS_BIRTHDAY_WINDOW", "30")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 30, cfg.Session.BirthdayWindowDays)
	})

	t.Run("unparsable window is ignored", func(t *testing.T) {
		t.Setenv("CONTACTS_BIRTHDAY_WINDOW", "a week")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 7, cfg.Session.BirthdayWindowDays)
	})

	t.Run("empty value leaves config alone", func(t *testing.T) {
		t.Setenv("CONTACTS_BIRTHDAY_WINDOW", "")

		cfg := &Config{Session: SessionConfig{BirthdayWindowDays: 3}}
		cfg.applyEnvOverrides()

		assert.Equal(t, 3, cfg.Session.BirthdayWindowDays)
	})
}

func TestEnvOverrides_Logging(t *testing.T) {
	t.Setenv("CONTACTS_LOG_LEVEL", "debug")
	t.Setenv("CONTACTS_LOG_FILE", "/tmp/contacts.log")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/contacts.log", cfg.Logging.File)
}

func TestEnvOverrides_AppliedByLoad(t *testing.T) {
	t.Setenv("CONTACTS_BIRTHDAY_WINDOW", "10")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Session.BirthdayWindowDays)
}
