package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	Device  Device
	Server  Server
	Storage Storage
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Device struct {
	SaveDelay  time.Duration
	SleepAfter time.Duration
	Battery    int
	Width      int
	Height     int
}

type Server struct {
	ListenAddr string
}

type Storage struct {
	DataFile    string
	SnapshotDir string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataFile    = "GRINDPAD_DATA_FILE"
	envSnapshotDir = "GRINDPAD_SNAPSHOT_DIR"
	envListenAddr  = "GRINDPAD_LISTEN_ADDR"
	envSaveDelay   = "GRINDPAD_SAVE_DELAY_MS"
	envSleepAfter  = "GRINDPAD_SLEEP_AFTER_MS"
	envBattery     = "GRINDPAD_BATTERY"
	envWidth       = "GRINDPAD_WIDTH"
	envHeight      = "GRINDPAD_HEIGHT"
	envTrace       = "GRINDPAD_TRACE"
	envLogFile     = "GRINDPAD_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
// A .env file in the working directory is folded in first; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("grindpad", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataFile := fs.String("data-file", envOrDefault(env, envDataFile, "settings.txt"), "path to the settings file")
	snapshotDir := fs.String("snapshot-dir", envOrDefault(env, envSnapshotDir, ""), "directory for settings snapshots (empty disables archiving)")
	listenAddr := fs.String("listen", envOrDefault(env, envListenAddr, ":8080"), "address for the HTTP API")
	saveDelayMS := fs.Int("save-delay-ms", envOrInt(env, envSaveDelay, 3000), "quiet period before an edit is written to storage")
	sleepAfterMS := fs.Int("sleep-after-ms", envOrInt(env, envSleepAfter, 300000), "idle period before the device sleeps")
	battery := fs.Int("battery", envOrInt(env, envBattery, -1), "fixed battery percentage for the simulator (-1 reads the meter)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired panel width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired panel height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *saveDelayMS <= 0 {
		return Config{}, fmt.Errorf("save-delay-ms must be > 0 (got %d)", *saveDelayMS)
	}
	if *sleepAfterMS <= 0 {
		return Config{}, fmt.Errorf("sleep-after-ms must be > 0 (got %d)", *sleepAfterMS)
	}
	if *battery > 100 {
		return Config{}, fmt.Errorf("battery must be <= 100 (got %d)", *battery)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		Device: Device{
			SaveDelay:  time.Duration(*saveDelayMS) * time.Millisecond,
			SleepAfter: time.Duration(*sleepAfterMS) * time.Millisecond,
			Battery:    *battery,
			Width:      *width,
			Height:     *height,
		},
		Server: Server{
			ListenAddr: *listenAddr,
		},
		Storage: Storage{
			DataFile:    *dataFile,
			SnapshotDir: *snapshotDir,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"dataFile":     *dataFile,
			"snapshotDir":  *snapshotDir,
			"listen":       *listenAddr,
			"saveDelayMS":  strconv.Itoa(*saveDelayMS),
			"sleepAfterMS": strconv.Itoa(*sleepAfterMS),
			"battery":      strconv.Itoa(*battery),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
