package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/mergechat/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth        = "MERGECHAT_WIDTH"
	envHeight       = "MERGECHAT_HEIGHT"
	envShowFooter   = "MERGECHAT_FOOTER"
	envTrace        = "MERGECHAT_TRACE"
	envLogFile      = "MERGECHAT_LOG_FILE"
	envMaxWindows   = "MERGECHAT_MAX_WINDOWS"
	envOpenInterval = "MERGECHAT_OPEN_INTERVAL"
	envPreset       = "MERGECHAT_PRESET"
	envIcon         = "MERGECHAT_ICON"

	defaultIcon = "assets/icon.png"
)

// LoadArgs parses configuration from CLI arguments and environment entries.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("mergechat", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	maxWindows := fs.Int("max-windows", envOrInt(env, envMaxWindows, 0), "maximum number of open windows (0 means unlimited)")
	openInterval := fs.Duration("open-interval", envOrDuration(env, envOpenInterval, 0), "minimum delay between window opens")
	presetPath := fs.String("preset", envOrDefault(env, envPreset, ""), "path to a YAML preset with window options and field values")
	icon := fs.String("icon", envOrDefault(env, envIcon, ""), "window icon path, overriding the preset (default "+defaultIcon+")")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *maxWindows < 0 {
		return Config{}, fmt.Errorf("max-windows must be >= 0 (got %d)", *maxWindows)
	}
	if *openInterval < 0 {
		return Config{}, fmt.Errorf("open-interval must be >= 0 (got %s)", *openInterval)
	}

	var preset Preset
	if *presetPath != "" {
		loaded, err := LoadPreset(*presetPath)
		if err != nil {
			return Config{}, err
		}
		preset = loaded
	}
	fields, err := preset.GlobalFields()
	if err != nil {
		return Config{}, fmt.Errorf("preset %s: %w", *presetPath, err)
	}

	presets := preset.Presets(*icon)
	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			MaxWindows:   *maxWindows,
			OpenInterval: *openInterval,
			Presets:      presets,
			Fields:       fields,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
			"maxWindows":   strconv.Itoa(*maxWindows),
			"openInterval": openInterval.String(),
			"preset":       *presetPath,
			"icon":         preset.resolveIcon(*icon),
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects window presets the host could never open.
func Validate(cfg Config) error {
	presets := cfg.App.Presets
	if err := validateOptions("initial", presets.Initial); err != nil {
		return err
	}
	if err := validateOptions("main", presets.Main); err != nil {
		return err
	}
	return validateOptions("settings", presets.Settings)
}
