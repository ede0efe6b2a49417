package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Live struct {
	Speed         float64       `yaml:"speed"`
	FrameInterval time.Duration `yaml:"frameInterval"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`

	History struct {
		Driver string `yaml:"driver"` // memory | mysql | postgres
	} `yaml:"history"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Minio struct {
		Enabled    bool   `yaml:"enabled"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	Upload struct {
		AllowedFormats   []string      `yaml:"allowedFormats"`
		MaxSizeMB        int           `yaml:"maxSizeMB"`
		ProgressStep     int           `yaml:"progressStep"`
		ProgressInterval time.Duration `yaml:"progressInterval"`
		SpoolDir         string        `yaml:"spoolDir"`
	} `yaml:"upload"`

	Auth struct {
		Delay time.Duration `yaml:"delay"`
	} `yaml:"auth"`

	Signal struct {
		SamplingRate    int     `yaml:"samplingRate"`
		DurationSeconds float64 `yaml:"durationSeconds"`
		BeatPeriod      float64 `yaml:"beatPeriod"`
		Jitter          float64 `yaml:"jitter"`
		ViewWidth       int     `yaml:"viewWidth"`
		ViewHeight      int     `yaml:"viewHeight"`
		Live            Live    `yaml:"live"`
	} `yaml:"signal"`

	RateLimit struct {
		Capacity        int     `yaml:"capacity"`
		RefillPerSecond float64 `yaml:"refillPerSecond"`
	} `yaml:"rateLimit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Default config, dipakai kalau config.yaml tidak ada
func Default() *Config {
	var c Config
	c.Server.Port = 8080
	c.Log.Level = "info"
	c.Log.Format = "json"
	c.History.Driver = "memory"
	c.Database.Port = 3306
	c.Database.SSLMode = "disable"
	c.Minio.BucketName = "ecg-uploads"
	c.Upload.AllowedFormats = []string{".csv", ".mat", ".txt"}
	c.Upload.MaxSizeMB = 50
	c.Upload.ProgressStep = 10
	c.Upload.ProgressInterval = 200 * time.Millisecond
	c.Upload.SpoolDir = os.TempDir()
	c.Auth.Delay = 1500 * time.Millisecond
	c.Signal.SamplingRate = 360
	c.Signal.DurationSeconds = 10
	c.Signal.BeatPeriod = 0.8
	c.Signal.Jitter = 0.02
	c.Signal.ViewWidth = 800
	c.Signal.ViewHeight = 400
	c.Signal.Live = Live{Speed: 2, FrameInterval: 16 * time.Millisecond, Width: 600, Height: 150}
	c.RateLimit.Capacity = 20
	c.RateLimit.RefillPerSecond = 5
	c.CORS.AllowedOrigins = []string{"*"}
	return &c
}

// Load baca file config.yaml. Field yang kosong diisi dari Default().
// Kalau file tidak ada, Default() langsung dipakai.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server can't run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.History.Driver {
	case "memory", "mysql", "postgres":
	default:
		return fmt.Errorf("history.driver %q not supported", c.History.Driver)
	}
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload.maxSizeMB must be positive")
	}
	if len(c.Upload.AllowedFormats) == 0 {
		return fmt.Errorf("upload.allowedFormats must not be empty")
	}
	if c.Upload.ProgressStep <= 0 || c.Upload.ProgressStep > 100 {
		return fmt.Errorf("upload.progressStep must be in 1..100")
	}
	if c.Upload.ProgressInterval <= 0 {
		return fmt.Errorf("upload.progressInterval must be positive")
	}
	if c.Auth.Delay < 0 {
		return fmt.Errorf("auth.delay must not be negative")
	}
	if c.Signal.SamplingRate <= 0 || c.Signal.DurationSeconds <= 0 || c.Signal.BeatPeriod <= 0 || c.Signal.Jitter < 0 {
		return fmt.Errorf("signal parameters must be positive")
	}
	if c.Signal.ViewWidth <= 0 || c.Signal.ViewHeight <= 0 {
		return fmt.Errorf("signal view size must be positive")
	}
	if c.Signal.Live.Width <= 0 || c.Signal.Live.Height <= 0 || c.Signal.Live.FrameInterval <= 0 {
		return fmt.Errorf("signal.live size and frameInterval must be positive")
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.RefillPerSecond <= 0 {
		return fmt.Errorf("rateLimit capacity and refillPerSecond must be positive")
	}
	if c.Minio.Enabled && (c.Minio.Endpoint == "" || c.Minio.BucketName == "") {
		return fmt.Errorf("minio.endpoint and minio.bucketName are required when minio is enabled")
	}
	return nil
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// Helper untuk build DSN Postgres (lib/pq)
func (c *Config) PostgresDSN() string {
	mode := c.Database.SSLMode
	if mode == "" {
		mode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		mode,
	)
}
