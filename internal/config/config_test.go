package config

import (
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUOTEWALL_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := Load(testLogger())

	assert.Equal(t, "quotes.txt", cfg.QuotesFile)
	assert.Equal(t, "#363636", cfg.TextColor)
	assert.Equal(t, "#000000", cfg.ShadowColor)
	assert.Equal(t, 95, cfg.JPEGQuality)
	assert.Equal(t, 5, cfg.KeepPerDisplay)
	assert.Empty(t, cfg.BackgroundImage)
	assert.NotEmpty(t, cfg.OutputDir)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "text_color: \"#ffffff\"\nbackground_image: /tmp/bg.jpg\njpeg_quality: 80\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("QUOTEWALL_CONFIG", path)

	cfg := Load(testLogger())

	assert.Equal(t, "#ffffff", cfg.TextColor)
	assert.Equal(t, "/tmp/bg.jpg", cfg.BackgroundImage)
	assert.Equal(t, 80, cfg.JPEGQuality)
	assert.Equal(t, "quotes.txt", cfg.QuotesFile, "unset keys keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quotes_file: from_file.txt\n"), 0644))
	t.Setenv("QUOTEWALL_CONFIG", path)
	t.Setenv("QUOTES_FILE", "from_env.txt")
	t.Setenv("JPEG_QUALITY", "70")

	cfg := Load(testLogger())

	assert.Equal(t, "from_env.txt", cfg.QuotesFile)
	assert.Equal(t, 70, cfg.JPEGQuality)
}

func TestInvalidEnvValueFallsBack(t *testing.T) {
	t.Setenv("QUOTEWALL_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("JPEG_QUALITY", "not-a-number")

	cfg := Load(testLogger())

	assert.Equal(t, 95, cfg.JPEGQuality)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#363636")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{54, 54, 54, 255}, c)

	c, err = ParseHexColor(" ffd700 ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 215, 0, 255}, c)
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, bad := range []string{"", "#fff", "#zzzzzz", "white"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
