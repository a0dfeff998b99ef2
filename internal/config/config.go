package config

// Config holds every recognized option. Values start from defaults, are
// overridden by the YAML config file when present, then by environment
// variables.
type Config struct {
	QuotesFile      string  `yaml:"quotes_file"`
	OutputDir       string  `yaml:"output_dir"`
	BackgroundImage string  `yaml:"background_image"`
	FontFile        string  `yaml:"font_file"`
	TextColor       string  `yaml:"text_color"`
	ShadowColor     string  `yaml:"shadow_color"`
	MinFontSize     float64 `yaml:"min_font_size"`
	MaxFontSize     float64 `yaml:"max_font_size"`
	JPEGQuality     int     `yaml:"jpeg_quality"`
	KeepPerDisplay  int     `yaml:"keep_per_display"`
}
