package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "catalog-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "/media", cfg.Media.URLPrefix)
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "739412274")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.Telegram.Enabled())
}

func TestLoad_ProduccionSinSecretFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestMediaConfig_BackgroundRGB(t *testing.T) {
	r, g, b := MediaConfig{Background: "10, 20,30"}.BackgroundRGB()
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})

	r, g, b = MediaConfig{Background: "300,0,0"}.BackgroundRGB()
	assert.Equal(t, [3]uint8{247, 243, 230}, [3]uint8{r, g, b}, "valor fuera de rango usa el color por defecto")

	r, g, b = MediaConfig{}.BackgroundRGB()
	assert.Equal(t, [3]uint8{247, 243, 230}, [3]uint8{r, g, b})
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "catalog", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/catalog?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
