package config

import (
	"os"
	"strconv"
)

// Config holds all externally supplied settings. It is built once at
// startup and passed by reference; nothing reads the environment later.
type Config struct {
	Port           string
	UserToken      string
	GatewayBaseURL string

	// PublicBaseURL overrides the callback base derived from the inbound
	// request, for deployments behind a proxy.
	PublicBaseURL string

	StaticDir string

	// GatewayInsecureSkipVerify disables TLS certificate verification on
	// gateway calls. Opt-in for controlled environments with self-signed
	// certificates only; verification stays on unless set.
	GatewayInsecureSkipVerify bool
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	gatewayBaseURL := os.Getenv("API_BASE_URL")
	if gatewayBaseURL == "" {
		gatewayBaseURL = "https://imb.org.in/api"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./dist"
	}

	insecure, _ := strconv.ParseBool(os.Getenv("GATEWAY_INSECURE_SKIP_VERIFY"))

	return &Config{
		Port:                      port,
		UserToken:                 os.Getenv("USER_TOKEN"),
		GatewayBaseURL:            gatewayBaseURL,
		PublicBaseURL:             os.Getenv("PUBLIC_BASE_URL"),
		StaticDir:                 staticDir,
		GatewayInsecureSkipVerify: insecure,
	}
}
