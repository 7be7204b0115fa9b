package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

// Module provides *Config loaded from the process environment and arguments.
var Module = fx.Provide(Load)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	Currency              string
	GatewayTimeout        time.Duration
	GatewayLatency        time.Duration
	ShutdownTimeout       time.Duration
	TransactionIDAttempts int
	LogLevel              string
}

const (
	defaultRunAddress            = ":8080"
	defaultCurrency              = "CAD"
	defaultGatewayTimeout        = 5 * time.Second
	defaultShutdownTimeout       = 10 * time.Second
	defaultTransactionIDAttempts = 5
	defaultLogLevel              = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		Currency:              getString(lookup, "CURRENCY", defaultCurrency),
		GatewayTimeout:        getDuration(lookup, "GATEWAY_TIMEOUT", defaultGatewayTimeout),
		GatewayLatency:        getDuration(lookup, "GATEWAY_LATENCY", 0),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		TransactionIDAttempts: getInt(lookup, "TRANSACTION_ID_ATTEMPTS", defaultTransactionIDAttempts),
		LogLevel:              getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		gatewayTimeoutStr  = cfg.GatewayTimeout.String()
		gatewayLatencyStr  = cfg.GatewayLatency.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "ISO currency code for payments")
	fs.StringVar(&gatewayTimeoutStr, "gateway-timeout", gatewayTimeoutStr, "Payment gateway call timeout")
	fs.StringVar(&gatewayLatencyStr, "gateway-latency", gatewayLatencyStr, "Simulated gateway processing delay")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.TransactionIDAttempts, "txid-attempts", cfg.TransactionIDAttempts, "Attempts to draw a unique transaction id")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.GatewayTimeout, err = time.ParseDuration(gatewayTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid gateway timeout: %w", err)
	}

	if cfg.GatewayLatency, err = time.ParseDuration(gatewayLatencyStr); err != nil {
		return nil, fmt.Errorf("invalid gateway latency: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}

	if cfg.GatewayLatency < 0 {
		cfg.GatewayLatency = 0
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TransactionIDAttempts <= 0 {
		cfg.TransactionIDAttempts = defaultTransactionIDAttempts
	}

	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if !isCurrencyCode(cfg.Currency) {
		return nil, fmt.Errorf("currency must be a three-letter code, got %q", cfg.Currency)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return cfg, nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
