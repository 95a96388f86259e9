package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToml = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "queueskip"
password = "secret"
dbname = "queueskip"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/queueskip.log"
level = "info"

[metrics]
enabled = false

[checkout]
api_base_url = "https://api.stripe.com"
secret_key = "sk_test_123"
public_base_url = "https://example.com"
currency = "aud"
timeout = 15

[email]
smtp_host = "smtp.example.com"
smtp_port = 587
username = "bookings@example.com"
password = "mailpass"
sender = "bookings@example.com"

[webhook]
token = ""
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validToml))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "aud", cfg.Checkout.Currency)
	assert.Contains(t, cfg.Database.DSN(), "dbname=queueskip")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name    string
		drop    string
		replace string
	}{
		{name: "no checkout secret", drop: `secret_key = "sk_test_123"`, replace: `secret_key = ""`},
		{name: "no database host", drop: `host = "localhost"`, replace: `host = ""`},
		{name: "no smtp sender", drop: `sender = "bookings@example.com"`, replace: `sender = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := strings.Replace(validToml, tt.drop, tt.replace, 1)

			_, err := Load(writeConfig(t, broken))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required field")
		})
	}
}

func TestLoad_MetricsRequireNameAndPath(t *testing.T) {
	broken := strings.Replace(validToml, "enabled = false", "enabled = true", 1)

	_, err := Load(writeConfig(t, broken))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-db-pass")
	t.Setenv("CHECKOUT_SECRET_KEY", "sk_live_env")
	t.Setenv("SMTP_PASSWORD", "env-mail-pass")
	t.Setenv("WEBHOOK_TOKEN", "env-token")

	cfg, err := Load(writeConfig(t, validToml))

	require.NoError(t, err)
	assert.Equal(t, "env-db-pass", cfg.Database.Password)
	assert.Equal(t, "sk_live_env", cfg.Checkout.SecretKey)
	assert.Equal(t, "env-mail-pass", cfg.Email.Password)
	assert.Equal(t, "env-token", cfg.Webhook.Token)
}
