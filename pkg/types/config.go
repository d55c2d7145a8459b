package types

import "time"

// PointsPerInch is the number of PDF points per inch (72 exactly).
const PointsPerInch = 72.0

// DefaultGapInches is the vertical gap between the two copies when the user
// does not specify one.
const DefaultGapInches = 0.12

// StackConfig holds settings for the page duplication operation.
type StackConfig struct {
	// Page is the zero-based index of the page to duplicate (default 0).
	Page int `json:"page" yaml:"page"`

	// GapInches is the vertical gap between the two copies, in inches (default 0.12).
	GapInches float64 `json:"gap" yaml:"gap"`

	// UseCropBox sizes and places content by the CropBox instead of the
	// MediaBox when the page has one.
	UseCropBox bool `json:"use_cropbox" yaml:"use_cropbox"`
}

// ServeConfig holds settings for the web UI server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// MaxUploadMB caps the size of an uploaded PDF in megabytes (default 50).
	MaxUploadMB int64 `json:"max_upload_mb" yaml:"max_upload_mb"`

	// RequestTimeout bounds a single request (default 30s).
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// Config groups all labelstack settings.
type Config struct {
	Stack StackConfig `json:"stack" yaml:"stack"`
	Serve ServeConfig `json:"serve" yaml:"serve"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Stack: StackConfig{
			GapInches: DefaultGapInches,
		},
		Serve: ServeConfig{
			Addr:           ":8080",
			MaxUploadMB:    50,
			RequestTimeout: 30 * time.Second,
		},
	}
}
