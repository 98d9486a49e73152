package mcpsrv

import (
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Stateless      bool
	APIKey         string
	RPS            float64
	Burst          int
	SessionTimeout time.Duration
}

const (
	defaultRPS   = 2
	defaultBurst = 5
)

// LoadConfig reads the server settings from the environment. PORT is read
// unprefixed; everything else uses the CARTUI_MCP_ prefix.
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("cartui_mcp")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("stateless", false)
	v.SetDefault("rps", defaultRPS)
	v.SetDefault("burst", defaultBurst)
	v.SetDefault("session-timeout", 15*time.Minute)

	_ = v.BindEnv("port", "PORT")
	v.SetDefault("port", "8080")

	port := strings.TrimSpace(v.GetString("port"))
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Port:           port,
		AllowedOrigins: parseCSV(v.GetString("allowed-origins")),
		Stateless:      v.GetBool("stateless"),
		APIKey:         strings.TrimSpace(v.GetString("api-key")),
		RPS:            v.GetFloat64("rps"),
		Burst:          v.GetInt("burst"),
		SessionTimeout: v.GetDuration("session-timeout"),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if cfg.SessionTimeout < 0 {
		cfg.SessionTimeout = 0
	}

	return cfg
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}

func parseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
