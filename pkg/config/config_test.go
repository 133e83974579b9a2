package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "padaria-api", cfg.App.Name)
	assert.Equal(t, 30, cfg.Dashboard.PeriodDays)
	assert.Equal(t, 60*time.Second, cfg.Sheets.CacheTTL)
	assert.False(t, cfg.Sheets.Enabled())
	assert.Empty(t, cfg.Auth.AllowedEmails)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Empty(t, cfg.DB.Resolver)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ALLOWED_EMAILS", " Ana@Padaria.com , joao@padaria.com,")
	t.Setenv("SHEETS_SPREADSHEET_ID", "abc123")
	t.Setenv("DASHBOARD_PERIOD_DAYS", "7")
	t.Setenv("DB_FORCE_IPV4", "true")
	t.Setenv("DB_RESOLVER", "1.1.1.1:53")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, []string{"ana@padaria.com", "joao@padaria.com"}, cfg.Auth.AllowedEmails)
	assert.True(t, cfg.Sheets.Enabled())
	assert.Equal(t, 7, cfg.Dashboard.PeriodDays)
	assert.True(t, cfg.DB.ForceIPv4)
	assert.Equal(t, "1.1.1.1:53", cfg.DB.Resolver)
}

func TestLoad_ChurnMenorQueActivo_Error(t *testing.T) {
	t.Setenv("DASHBOARD_ACTIVE_DAYS", "90")
	t.Setenv("DASHBOARD_CHURN_DAYS", "30")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "padaria", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/padaria?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestLoad_TimezoneDeLaApp(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "America/Manaus")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "America/Manaus", cfg.App.Timezone)
	assert.Equal(t, "America/Manaus", cfg.Dashboard.Timezone, "el dashboard hereda la zona de la app")

	cfg.App.Timezone = "Marte/Olympus"
	assert.Equal(t, time.UTC, cfg.App.Location())
}
