package server

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.DBPath != "symbl.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "symbl.db")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestParseConfigFlagsOverride(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", ":9000", "-db", "/tmp/data.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9000")
	}
	if cfg.DBPath != "/tmp/data.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "/tmp/data.db")
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("SYMBL_HTTP_ADDR", ":7070")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":7070")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	t.Parallel()

	if _, err := newLogger("shout"); err == nil {
		t.Fatal("newLogger(shout) error = nil, want error")
	}
}
