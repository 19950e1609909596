package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("STORE", "")
	t.Setenv("SCOPE_LOCKS", "")
	t.Setenv("LOCK_TTL", "")
	t.Setenv("PAGE_SIZE_DEFAULT", "")
	t.Setenv("PAGE_SIZE_MAX", "")
	t.Setenv("DB_AUTO_MIGRATE", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, LocksMemory, cfg.ScopeLocks)
	assert.Equal(t, 5*time.Second, cfg.LockTTL)
	assert.Equal(t, 20, cfg.PageSizeDefault)
	assert.Equal(t, 100, cfg.PageSizeMax)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "require", cfg.DB.SSLMode)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestFromEnvReadsSelectedEnvironment(t *testing.T) {
	t.Setenv("ENV", "qc")
	t.Setenv("QC_DB_USER", "app")
	t.Setenv("QC_DB_HOST", "db.internal")
	t.Setenv("QC_DB_NAME", "backoffice")
	t.Setenv("QC_DB_PORT", "")
	t.Setenv("QC_DB_PASSWORD", "")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("CORS_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("SCOPE_LOCKS", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOCK_TTL", "2s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "host=db.internal user=app password= dbname=backoffice port=5432 sslmode=disable TimeZone=UTC", cfg.DB.DSN())
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.LockTTL)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown env":      {"ENV": "staging"},
		"unknown store":    {"STORE": "mysql"},
		"redis locks":      {"SCOPE_LOCKS": "redis", "REDIS_ADDR": ""},
		"bad ttl":          {"LOCK_TTL": "soon"},
		"default over max": {"PAGE_SIZE_DEFAULT": "50", "PAGE_SIZE_MAX": "10"},
		"bad bool":         {"DB_AUTO_MIGRATE": "maybe"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"ENV", "STORE", "SCOPE_LOCKS", "LOCK_TTL", "PAGE_SIZE_DEFAULT", "PAGE_SIZE_MAX", "DB_AUTO_MIGRATE"} {
				t.Setenv(k, "")
			}
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestCORSAllowList(t *testing.T) {
	open := corsConfig(nil)
	assert.True(t, open.AllowOriginFunc("https://anything.test"))

	closed := corsConfig([]string{"https://a.test"})
	assert.True(t, closed.AllowOriginFunc("https://a.test"))
	assert.False(t, closed.AllowOriginFunc("https://b.test"))
}
