package config

import (
	"strings"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "DB_USER", "DB_HOST", "DB_NAME", "DB_MAX_OPEN_CONNS", "STRICT_AMOUNT", "LOCATIONS_FILE"} {
		t.Setenv(k, "")
	}

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q, want :8080", env.AppAddr)
	}
	if env.DBName != "parking_db" || env.DBUser != "root" {
		t.Fatalf("unexpected db defaults: %+v", env)
	}
	if env.DBMaxOpenConns != 25 {
		t.Fatalf("DBMaxOpenConns = %d", env.DBMaxOpenConns)
	}
	if env.StrictAmount {
		t.Fatalf("StrictAmount should default to false")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_NAME", "parking_test")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("STRICT_AMOUNT", "true")
	t.Setenv("LOCATIONS_FILE", " /etc/techpark/locations.yaml ")

	env := LoadEnv()
	if env.AppAddr != ":9090" || env.DBName != "parking_test" || env.DBMaxOpenConns != 5 {
		t.Fatalf("overrides not applied: %+v", env)
	}
	if !env.StrictAmount {
		t.Fatalf("StrictAmount not parsed")
	}
	if env.LocationsFile != "/etc/techpark/locations.yaml" {
		t.Fatalf("LocationsFile = %q", env.LocationsFile)
	}
}

func TestLoadEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("STRICT_AMOUNT", "maybe")

	env := LoadEnv()
	if env.DBMaxIdleConns != 25 || env.StrictAmount {
		t.Fatalf("bad values should fall back to defaults: %+v", env)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(Env{DBUser: "root", DBPassword: "secret", DBHost: "db:3306", DBName: "parking_db"})
	if !strings.HasPrefix(dsn, "root:secret@tcp(db:3306)/parking_db?") {
		t.Fatalf("unexpected dsn %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") || !strings.Contains(dsn, "charset=utf8mb4") {
		t.Fatalf("dsn missing params: %q", dsn)
	}
}
