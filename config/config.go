package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	SourceType string // wordpress | inmemory
	LogLevel   string
	HTTP       HTTPConfig
	CMS        CMSConfig
	Site       SiteConfig
	Dashboard  DashboardConfig
}

type HTTPConfig struct {
	Port string
}

type CMSConfig struct {
	BaseURL string
	// Application-password credentials; reads work without them.
	Username       string
	AppPassword    string
	TimeoutSeconds int
}

type SiteConfig struct {
	Title       string
	Link        string
	Description string
}

type DashboardConfig struct {
	// CustomTypes lists extra post-shaped collections to watch,
	// e.g. "projects,portfolio" becomes /projects and /portfolio.
	CustomTypes []string
}

func LoadConfig() Config {
	sourceType := mustGetEnv("SOURCE_TYPE")

	cfg := Config{
		SourceType: sourceType,
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Port: mustGetEnv("HTTP_PORT"),
		},
		Site: SiteConfig{
			Title:       getEnv("SITE_TITLE", "Pressdeck"),
			Link:        getEnv("SITE_LINK", ""),
			Description: getEnv("SITE_DESCRIPTION", ""),
		},
		Dashboard: DashboardConfig{
			CustomTypes: splitCSV(os.Getenv("DASHBOARD_CUSTOM_TYPES")),
		},
	}

	if sourceType == "wordpress" {
		cfg.CMS = CMSConfig{
			BaseURL:        mustGetEnv("CMS_BASE_URL"),
			Username:       os.Getenv("CMS_USERNAME"),
			AppPassword:    os.Getenv("CMS_APP_PASSWORD"),
			TimeoutSeconds: getInt("CMS_TIMEOUT_SECONDS", 15),
		}
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
