package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TMDB_BEARER", "")
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("YT_API_KEY", "")
	t.Setenv("CINEAI_DEMO", "")
	t.Setenv("CINEAI_LOG_FILE", "")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("port = %q, want 5000", cfg.Port)
	}
	if cfg.Demo {
		t.Fatal("demo should default off")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TMDB_BEARER", "tok")
	t.Setenv("YT_API_KEY", "yt")
	t.Setenv("CINEAI_DEMO", "true")
	t.Setenv("CINEAI_LOG_FILE", "/var/log/cineai.log")

	cfg := Load()
	if cfg.Port != "8080" || cfg.TMDBBearer != "tok" || cfg.YouTubeKey != "yt" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !cfg.Demo {
		t.Fatal("demo should be on")
	}
	if cfg.LogFile != "/var/log/cineai.log" {
		t.Fatalf("log file = %q", cfg.LogFile)
	}
}

func TestLoadDemoInvalidValue(t *testing.T) {
	t.Setenv("CINEAI_DEMO", "yes please")
	if Load().Demo {
		t.Fatal("unparseable demo flag should read as false")
	}
}
