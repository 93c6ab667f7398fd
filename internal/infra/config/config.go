package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	APIBase       string // base de la API de estadísticas
	SessionDBPath string // sqlite local con la sesión
	PageLimit     int    // tamaño fijo de página de las listas
	HTTPTimeout   time.Duration

	// claves bajo las que se persisten token y juego seleccionado
	TokenKey  string
	GameIDKey string
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	getInt := func(k string, def int) int {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("env %s invalido: %q", k, v)
		}
		return n
	}

	cfg := Config{
		APIBase:       get("STATS_API_BASE", "http://localhost:8000/api"),
		SessionDBPath: get("SESSION_DB_PATH", ""),
		PageLimit:     getInt("PAGE_LIMIT", 20),
		HTTPTimeout:   time.Duration(getInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		TokenKey:      get("SESSION_TOKEN_KEY", "access_token"),
		GameIDKey:     get("SESSION_GAME_ID_KEY", "selected_game_id"),
	}
	if cfg.SessionDBPath == "" {
		cfg.SessionDBPath = defaultSessionDBPath()
	}
	return cfg
}

func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "statsdash.db"
	}
	dir := filepath.Join(home, ".statsdash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "statsdash.db"
	}
	return filepath.Join(dir, "session.db")
}
