package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-application directory created under the user's
// config directory (Application Support on macOS, ~/.config elsewhere).
const AppDirName = "QuoteWall"

func defaults() *Config {
	outputDir := "wallpapers"
	if dir, err := os.UserConfigDir(); err == nil {
		outputDir = filepath.Join(dir, AppDirName)
	}

	return &Config{
		QuotesFile:     "quotes.txt",
		OutputDir:      outputDir,
		TextColor:      "#363636",
		ShadowColor:    "#000000",
		MinFontSize:    14,
		MaxFontSize:    128,
		JPEGQuality:    95,
		KeepPerDisplay: 5,
	}
}

// Path returns the config file location: QUOTEWALL_CONFIG if set, otherwise
// config.yaml inside the application directory.
func Path() string {
	if p := os.Getenv("QUOTEWALL_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDirName, "config.yaml")
}

func Load(logger *log.Logger) *Config {
	cfg := defaults()

	if path := Path(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				logger.Fatalf("parse config %s: %v", path, err)
			}
		}
	}

	cfg.QuotesFile = getEnv(logger, "QUOTES_FILE", cfg.QuotesFile, parseString)
	cfg.OutputDir = getEnv(logger, "OUTPUT_DIR", cfg.OutputDir, parseString)
	cfg.BackgroundImage = getEnv(logger, "BACKGROUND_IMAGE", cfg.BackgroundImage, parseString)
	cfg.FontFile = getEnv(logger, "FONT_FILE", cfg.FontFile, parseString)
	cfg.TextColor = getEnv(logger, "TEXT_COLOR", cfg.TextColor, parseString)
	cfg.ShadowColor = getEnv(logger, "SHADOW_COLOR", cfg.ShadowColor, parseString)
	cfg.MinFontSize = getEnv(logger, "MIN_FONT_SIZE", cfg.MinFontSize, parseFloat)
	cfg.MaxFontSize = getEnv(logger, "MAX_FONT_SIZE", cfg.MaxFontSize, parseFloat)
	cfg.JPEGQuality = getEnv(logger, "JPEG_QUALITY", cfg.JPEGQuality, parseInt)
	cfg.KeepPerDisplay = getEnv(logger, "KEEP_PER_DISPLAY", cfg.KeepPerDisplay, parseInt)

	return cfg
}

func getEnv[T any](logger *log.Logger, key string, defaultValue T, parser func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := parser(val)
	if err != nil {
		logger.Printf("[WARN]: invalid value for %s (%s). Using default: %v\n", key, val, defaultValue)
		return defaultValue
	}

	return parsed
}

func parseString(val string) (string, error) {
	return val, nil
}

func parseInt(val string) (int, error) {
	return strconv.Atoi(val)
}

func parseFloat(val string) (float64, error) {
	return strconv.ParseFloat(val, 64)
}

// ParseHexColor parses a "#rrggbb" color value.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
