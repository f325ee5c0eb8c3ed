package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "keep",
		},
		"secretKey": map[string]any{
			"token": "",
		},
		"auth": map[string]any{
			"tokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "SECRETKEY_TOKEN", want: "secretKey.token"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		UserName: "keep",
		Password: "secret",
		DBName:   "keepdb",
	}

	got := cfg.DSN()
	want := "host=localhost port=5432 user=keep password=secret dbname=keepdb sslmode=disable"
	if got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestPostgresConfig_ReplicaDSN_FallsBackToPrimary(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "primary",
		Port:     "5432",
		UserName: "keep",
		Password: "secret",
		DBName:   "keepdb",
		SSLMode:  "require",
	}

	got := cfg.ReplicaDSN(ConnectionConfig{Host: "replica-0"})
	want := "host=replica-0 port=5432 user=keep password=secret dbname=keepdb sslmode=require"
	if got != want {
		t.Fatalf("ReplicaDSN() = %q, want %q", got, want)
	}
}
