package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Security  SecurityConfig  `yaml:"security" json:"security"`
	Processor ProcessorConfig `yaml:"processor" json:"processor"`
	GRPC      GRPCConfig      `yaml:"grpc" json:"grpc"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
	Audit     AuditConfig     `yaml:"audit" json:"audit"`
	Metrics   MetricsConfig   `yaml:"metrics" json:"metrics"`
	Client    ClientConfig    `yaml:"client" json:"client"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Address string `yaml:"address" json:"address"`
	Port    int    `yaml:"port" json:"port"`
	// ShutdownTimeout bounds GracefulStop before the server is stopped hard.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" json:"shutdownTimeout"`
}

// SecurityConfig enables TLS on both ends. Off by default.
type SecurityConfig struct {
	TLSEnabled     bool   `yaml:"tlsEnabled" json:"tlsEnabled"`
	ServerCertPath string `yaml:"serverCertPath" json:"serverCertPath"`
	ServerKeyPath  string `yaml:"serverKeyPath" json:"serverKeyPath"`
	CACertPath     string `yaml:"caCertPath" json:"caCertPath"`
	ClientCertPath string `yaml:"clientCertPath" json:"clientCertPath"`
	ClientKeyPath  string `yaml:"clientKeyPath" json:"clientKeyPath"`
}

// ProcessorConfig controls transformation sessions
type ProcessorConfig struct {
	ScratchDir            string        `yaml:"scratchDir" json:"scratchDir"`
	ChunkSize             int           `yaml:"chunkSize" json:"chunkSize"`
	CommandTimeout        time.Duration `yaml:"commandTimeout" json:"commandTimeout"`
	KillGracePeriod       time.Duration `yaml:"killGracePeriod" json:"killGracePeriod"`
	MaxOutputBytes        int           `yaml:"maxOutputBytes" json:"maxOutputBytes"`
	MaxConcurrentSessions int           `yaml:"maxConcurrentSessions" json:"maxConcurrentSessions"`
	// SweepMaxAge is the age above which leftover scratch files are
	// removed at startup. Zero disables the sweep.
	SweepMaxAge time.Duration `yaml:"sweepMaxAge" json:"sweepMaxAge"`
	Tools       ToolsConfig   `yaml:"tools" json:"tools"`
}

// ToolsConfig names the external binaries; bare names are resolved via PATH.
type ToolsConfig struct {
	Ghostscript string `yaml:"ghostscript" json:"ghostscript"`
	PDFToText   string `yaml:"pdftotext" json:"pdftotext"`
	ImageMagick string `yaml:"imagemagick" json:"imagemagick"`
}

// GRPCConfig holds gRPC-specific configuration
type GRPCConfig struct {
	MaxRecvMsgSize    int32         `yaml:"maxRecvMsgSize" json:"maxRecvMsgSize"`
	MaxSendMsgSize    int32         `yaml:"maxSendMsgSize" json:"maxSendMsgSize"`
	MaxHeaderListSize int32         `yaml:"maxHeaderListSize" json:"maxHeaderListSize"`
	KeepAliveTime     time.Duration `yaml:"keepAliveTime" json:"keepAliveTime"`
	KeepAliveTimeout  time.Duration `yaml:"keepAliveTimeout" json:"keepAliveTimeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
}

// AuditConfig controls the per-session audit trail
type AuditConfig struct {
	Enabled   bool           `yaml:"enabled" json:"enabled"`
	FilePath  string         `yaml:"filePath" json:"filePath"`
	Console   bool           `yaml:"console" json:"console"`
	QueueSize int            `yaml:"queueSize" json:"queueSize"`
	Rotation  RotationConfig `yaml:"rotation" json:"rotation"`
	Kafka     KafkaConfig    `yaml:"kafka" json:"kafka"`
}

// RotationConfig rolls the audit file over by size when enabled.
type RotationConfig struct {
	Enabled    bool `yaml:"enabled" json:"enabled"`
	MaxSizeMB  int  `yaml:"maxSizeMB" json:"maxSizeMB"`
	MaxBackups int  `yaml:"maxBackups" json:"maxBackups"`
	MaxAgeDays int  `yaml:"maxAgeDays" json:"maxAgeDays"`
	Compress   bool `yaml:"compress" json:"compress"`
}

type KafkaConfig struct {
	Enabled  bool     `yaml:"enabled" json:"enabled"`
	Brokers  []string `yaml:"brokers" json:"brokers"`
	Topic    string   `yaml:"topic" json:"topic"`
	ClientID string   `yaml:"clientId" json:"clientId"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Address string `yaml:"address" json:"address"`
	Path    string `yaml:"path" json:"path"`
}

// ClientConfig is read by the fpx client
type ClientConfig struct {
	ServerAddr string        `yaml:"serverAddr" json:"serverAddr"`
	ChunkSize  int           `yaml:"chunkSize" json:"chunkSize"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	OutputDir  string        `yaml:"outputDir" json:"outputDir"`
}

// DefaultConfig Default configuration values
var DefaultConfig = Config{
	Server: ServerConfig{
		Address:         "0.0.0.0",
		Port:            50051,
		ShutdownTimeout: 30 * time.Second,
	},
	Security: SecurityConfig{
		TLSEnabled:     false,
		ServerCertPath: "./certs/server-cert.pem",
		ServerKeyPath:  "./certs/server-key.pem",
		CACertPath:     "./certs/ca-cert.pem",
		ClientCertPath: "./certs/client-cert.pem",
		ClientKeyPath:  "./certs/client-key.pem",
	},
	Processor: ProcessorConfig{
		ScratchDir:            os.TempDir(),
		ChunkSize:             64 * 1024,
		CommandTimeout:        2 * time.Minute,
		KillGracePeriod:       2 * time.Second,
		MaxOutputBytes:        1024 * 1024,
		MaxConcurrentSessions: 0,
		SweepMaxAge:           1 * time.Hour,
		Tools: ToolsConfig{
			Ghostscript: "gs",
			PDFToText:   "pdftotext",
			ImageMagick: "convert",
		},
	},
	GRPC: GRPCConfig{
		MaxRecvMsgSize:    16 * 1024 * 1024, // 16MB, bounds inline requests
		MaxSendMsgSize:    16 * 1024 * 1024,
		MaxHeaderListSize: 1 * 1024 * 1024, // 1MB
		KeepAliveTime:     30 * time.Second,
		KeepAliveTimeout:  5 * time.Second,
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
		Output: "stdout",
	},
	Audit: AuditConfig{
		Enabled:   true,
		FilePath:  "server.log",
		Console:   true,
		QueueSize: 1024,
		Rotation: RotationConfig{
			Enabled:    false,
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Kafka: KafkaConfig{
			Enabled:  false,
			Topic:    "fileproc-audit",
			ClientID: "fileproc",
		},
	},
	Metrics: MetricsConfig{
		Enabled: true,
		Address: ":9090",
		Path:    "/metrics",
	},
	Client: ClientConfig{
		ServerAddr: "localhost:50051",
		ChunkSize:  64 * 1024,
		Timeout:    5 * time.Minute,
		OutputDir:  ".",
	},
}

// LoadConfig loads configuration from multiple sources in order of precedence:
// 1. Environment variables (highest precedence)
// 2. Configuration file (explicit path, or the first one found on the search path)
// 3. Default values (lowest precedence)
func LoadConfig(explicitPath string) (*Config, string, error) {
	config := DefaultConfig

	path, err := loadFromFile(&config, explicitPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	if e := loadFromEnv(&config); e != nil {
		return nil, "", fmt.Errorf("failed to load environment variables: %w", e)
	}

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

func searchPaths() []string {
	return []string{
		os.Getenv("FILEPROC_CONFIG_PATH"), // Custom path from environment
		"./config.yaml",
		"./config/config.yaml",
		"/etc/fileproc/config.yaml",
		"/opt/fileproc/config.yaml",
	}
}

func loadFromFile(config *Config, explicitPath string) (string, error) {
	if explicitPath != "" {
		if err := decodeFile(config, explicitPath); err != nil {
			return "", err
		}
		return explicitPath, nil
	}

	for _, path := range searchPaths() {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		if err := decodeFile(config, path); err != nil {
			return "", err
		}
		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

func decodeFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// envReader collects the first parse failure so loadFromEnv stays flat.
type envReader struct {
	err error
}

func (r *envReader) str(key string, dst *string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func (r *envReader) integer(key string, dst *int) {
	val := os.Getenv(key)
	if val == "" || r.err != nil {
		return
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = n
}

func (r *envReader) i32(key string, dst *int32) {
	val := os.Getenv(key)
	if val == "" || r.err != nil {
		return
	}
	n, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = int32(n)
}

func (r *envReader) duration(key string, dst *time.Duration) {
	val := os.Getenv(key)
	if val == "" || r.err != nil {
		return
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = d
}

func (r *envReader) boolean(key string, dst *bool) {
	if val := os.Getenv(key); val != "" {
		*dst = val == "true" || val == "1"
	}
}

func (r *envReader) list(key string, dst *[]string) {
	val := os.Getenv(key)
	if val == "" {
		return
	}
	var items []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*dst = items
}

func loadFromEnv(config *Config) error {
	r := &envReader{}

	// Server config
	r.str("FILEPROC_SERVER_ADDRESS", &config.Server.Address)
	r.integer("FILEPROC_SERVER_PORT", &config.Server.Port)
	r.duration("FILEPROC_SHUTDOWN_TIMEOUT", &config.Server.ShutdownTimeout)

	// Security config
	r.boolean("FILEPROC_TLS_ENABLED", &config.Security.TLSEnabled)
	r.str("FILEPROC_SERVER_CERT_PATH", &config.Security.ServerCertPath)
	r.str("FILEPROC_SERVER_KEY_PATH", &config.Security.ServerKeyPath)
	r.str("FILEPROC_CA_CERT_PATH", &config.Security.CACertPath)
	r.str("FILEPROC_CLIENT_CERT_PATH", &config.Security.ClientCertPath)
	r.str("FILEPROC_CLIENT_KEY_PATH", &config.Security.ClientKeyPath)

	// Processor config
	r.str("FILEPROC_SCRATCH_DIR", &config.Processor.ScratchDir)
	r.integer("FILEPROC_CHUNK_SIZE", &config.Processor.ChunkSize)
	r.duration("FILEPROC_COMMAND_TIMEOUT", &config.Processor.CommandTimeout)
	r.duration("FILEPROC_KILL_GRACE_PERIOD", &config.Processor.KillGracePeriod)
	r.integer("FILEPROC_MAX_OUTPUT_BYTES", &config.Processor.MaxOutputBytes)
	r.integer("FILEPROC_MAX_CONCURRENT_SESSIONS", &config.Processor.MaxConcurrentSessions)
	r.duration("FILEPROC_SWEEP_MAX_AGE", &config.Processor.SweepMaxAge)
	r.str("FILEPROC_GS_PATH", &config.Processor.Tools.Ghostscript)
	r.str("FILEPROC_PDFTOTEXT_PATH", &config.Processor.Tools.PDFToText)
	r.str("FILEPROC_CONVERT_PATH", &config.Processor.Tools.ImageMagick)

	// GRPC config
	r.i32("FILEPROC_GRPC_MAX_RECV_MSG_SIZE", &config.GRPC.MaxRecvMsgSize)
	r.i32("FILEPROC_GRPC_MAX_SEND_MSG_SIZE", &config.GRPC.MaxSendMsgSize)
	r.i32("FILEPROC_GRPC_MAX_HEADER_LIST_SIZE", &config.GRPC.MaxHeaderListSize)
	r.duration("FILEPROC_GRPC_KEEPALIVE_TIME", &config.GRPC.KeepAliveTime)
	r.duration("FILEPROC_GRPC_KEEPALIVE_TIMEOUT", &config.GRPC.KeepAliveTimeout)

	// Logging config
	r.str("LOG_LEVEL", &config.Logging.Level)
	r.str("LOG_FORMAT", &config.Logging.Format)
	r.str("LOG_OUTPUT", &config.Logging.Output)

	// Audit config
	r.boolean("FILEPROC_AUDIT_ENABLED", &config.Audit.Enabled)
	r.str("FILEPROC_AUDIT_FILE", &config.Audit.FilePath)
	r.boolean("FILEPROC_AUDIT_CONSOLE", &config.Audit.Console)
	r.integer("FILEPROC_AUDIT_QUEUE_SIZE", &config.Audit.QueueSize)
	r.boolean("FILEPROC_AUDIT_ROTATE", &config.Audit.Rotation.Enabled)
	r.integer("FILEPROC_AUDIT_MAX_SIZE_MB", &config.Audit.Rotation.MaxSizeMB)
	r.boolean("FILEPROC_KAFKA_ENABLED", &config.Audit.Kafka.Enabled)
	r.list("FILEPROC_KAFKA_BROKERS", &config.Audit.Kafka.Brokers)
	r.str("FILEPROC_KAFKA_TOPIC", &config.Audit.Kafka.Topic)

	// Metrics config
	r.boolean("FILEPROC_METRICS_ENABLED", &config.Metrics.Enabled)
	r.str("FILEPROC_METRICS_ADDRESS", &config.Metrics.Address)
	r.str("FILEPROC_METRICS_PATH", &config.Metrics.Path)

	// Client config
	r.str("FILEPROC_SERVER_ADDR", &config.Client.ServerAddr)
	r.integer("FILEPROC_CLIENT_CHUNK_SIZE", &config.Client.ChunkSize)
	r.duration("FILEPROC_CLIENT_TIMEOUT", &config.Client.Timeout)

	return r.err
}

var toolNamePattern = regexp.MustCompile(`^[A-Za-z0-9_./-]+$`)

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Security.TLSEnabled {
		if c.Security.ServerCertPath == "" {
			return fmt.Errorf("server certificate path required when TLS is enabled")
		}
		if c.Security.ServerKeyPath == "" {
			return fmt.Errorf("server key path required when TLS is enabled")
		}
		if c.Security.CACertPath == "" {
			return fmt.Errorf("CA certificate path required when TLS is enabled")
		}
	}

	p := c.Processor
	if p.ScratchDir == "" {
		return fmt.Errorf("scratch directory is required")
	}
	if p.ChunkSize <= 0 {
		return fmt.Errorf("invalid chunk size: %d", p.ChunkSize)
	}
	if c.GRPC.MaxSendMsgSize > 0 && p.ChunkSize >= int(c.GRPC.MaxSendMsgSize) {
		return fmt.Errorf("chunk size %d must be below grpc maxSendMsgSize %d", p.ChunkSize, c.GRPC.MaxSendMsgSize)
	}
	if p.CommandTimeout <= 0 {
		return fmt.Errorf("invalid command timeout: %s", p.CommandTimeout)
	}
	if p.KillGracePeriod < 0 {
		return fmt.Errorf("invalid kill grace period: %s", p.KillGracePeriod)
	}
	if p.MaxOutputBytes <= 0 {
		return fmt.Errorf("invalid max output bytes: %d", p.MaxOutputBytes)
	}
	if p.MaxConcurrentSessions < 0 {
		return fmt.Errorf("invalid max concurrent sessions: %d", p.MaxConcurrentSessions)
	}
	for name, tool := range map[string]string{
		"ghostscript": p.Tools.Ghostscript,
		"pdftotext":   p.Tools.PDFToText,
		"imagemagick": p.Tools.ImageMagick,
	} {
		if !toolNamePattern.MatchString(tool) {
			return fmt.Errorf("invalid %s tool path: %q", name, tool)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Audit.Enabled && c.Audit.QueueSize <= 0 {
		return fmt.Errorf("invalid audit queue size: %d", c.Audit.QueueSize)
	}
	if c.Audit.Rotation.Enabled && c.Audit.Rotation.MaxSizeMB <= 0 {
		return fmt.Errorf("invalid audit rotation size: %d MB", c.Audit.Rotation.MaxSizeMB)
	}
	if c.Audit.Kafka.Enabled {
		if len(c.Audit.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka audit sink enabled without brokers")
		}
		if c.Audit.Kafka.Topic == "" {
			return fmt.Errorf("kafka audit sink enabled without topic")
		}
	}

	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("metrics address required when metrics are enabled")
	}

	return nil
}

func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) SaveToFile(path string) error {
	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a specific configuration file without env overrides
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig

	if err := decodeFile(&config, path); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// GenerateDefaultConfig creates a default configuration file
func GenerateDefaultConfig(path string) error {
	config := DefaultConfig
	return config.SaveToFile(path)
}

// IsDevelopmentMode returns true if running in development mode
func (c *Config) IsDevelopmentMode() bool {
	return strings.EqualFold(c.Logging.Level, "DEBUG")
}
