package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.False(t, cfg.Feed.Enabled)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 2.0, cfg.Scoring.SearchRadius)
				assert.Equal(t, 30.0, cfg.Scoring.PriceBandPct)
				assert.Equal(t, 25, cfg.Scoring.MaxComparables)
				assert.Equal(t, 3, cfg.Scoring.MinComparables)
				assert.Equal(t, 180, cfg.Scoring.ClosedWindowDays)
				assert.Equal(t, 2.0, cfg.Scoring.GradeWeights["A"])
				assert.Equal(t, 0.25, cfg.Scoring.GradeWeights["F"])
				assert.Equal(t, 0.30, cfg.Scoring.HeatWeights.SPLP)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.FeedSyncInterval)
				assert.Equal(t, 12*time.Hour, cfg.Schedule.SnapshotInterval)
				assert.Equal(t, 15*time.Second, cfg.Schedule.StaggerOffset)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing database host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "feed enabled requires credentials",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
feed:
  enabled: true
  base_url: https://api.example-mls.test/odata
  token_url: https://auth.example-mls.test/token
`,
			wantErr: "feed.client_id and feed.client_secret are required",
		},
		{
			name: "heat weights must sum to one",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scoring:
  heat_weights:
    dom: 0.5
    sp_lp: 0.5
    inventory: 0.5
    absorption: 0.5
`,
			wantErr: "heat_weights must sum to 1.0",
		},
		{
			name: "negative grade weight rejected",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scoring:
  grade_weights:
    A: -1.0
`,
			wantErr: "grade_weights[A] must be non-negative",
		},
		{
			name: "custom scoring overrides survive",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scoring:
  search_radius_miles: 5
  grade_weights:
    A: 3.0
    B: 2.0
    C: 1.0
    D: 0.5
    F: 0.1
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 5.0, cfg.Scoring.SearchRadius)
				assert.Equal(t, 3.0, cfg.Scoring.GradeWeights["A"])
				assert.Equal(t, 0.1, cfg.Scoring.GradeWeights["F"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host: "db.local", Port: 5433, Name: "mls", User: "app",
		Password: "pw", SSLMode: "require",
	}
	assert.Equal(t,
		"host=db.local port=5433 dbname=mls user=app password=pw sslmode=require",
		d.DSN(),
	)
}
