package config

// Bounds for the user-configurable stream parameters. The dashboard clamps
// its settings form to the same limits.
const (
	MinInterval = 0.1
	MaxInterval = 5.0
	MinWindow   = 100
	MaxWindow   = 1000
)

// Config represents the complete .vatwatch.yaml configuration file.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Stream StreamConfig `yaml:"stream" mapstructure:"stream"`
}

// ServerConfig locates the sensor stream endpoint. Host and port are
// free-text and interpolated into http://{host}:{port}/stream.
type ServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port string `yaml:"port" mapstructure:"port"`
}

// StreamConfig controls consumption and display of the stream.
type StreamConfig struct {
	// Interval is the pause between renders, in seconds.
	Interval float64 `yaml:"interval" mapstructure:"interval"`

	// Window is the number of samples retained for the charts.
	Window int `yaml:"window" mapstructure:"window"`
}

// DefaultConfig returns a Config with the stock connection parameters.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: "8000",
		},
		Stream: StreamConfig{
			Interval: 1.0,
			Window:   300,
		},
	}
}
