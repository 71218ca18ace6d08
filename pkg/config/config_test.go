package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_API_URL", "")
	t.Setenv("GROQ_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "briefly", cfg.Mongo.Database)
	require.Equal(t, "https://api.groq.com", cfg.Groq.BaseURL)
	require.Equal(t, "llama3-70b-8192", cfg.Groq.Model)
	require.False(t, cfg.MongoConfigured())
}

func TestLoad_MongoConfigured(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.MongoConfigured())
	require.Equal(t, 5*time.Second, cfg.Mongo.ConnectTimeout)
}

func TestGetServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", Port: "9090"}}
	require.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
}
