// Package logging provides structured logging channels for PageMint
// operations with performance correlation capabilities.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Business logic channels
	ChannelAuth    Channel = "auth"    // Authentication and authorization
	ChannelContent Channel = "content" // Landing page and product management
	ChannelRender  Channel = "render"  // Visual rendering and template compilation
	ChannelOrder   Channel = "order"   // Order intake and notification
	ChannelCache   Channel = "cache"   // Cache operations and management

	// Infrastructure channels
	ChannelDatabase Channel = "database" // Database operations and queries
	ChannelMedia    Channel = "media"    // Image processing and media storage
	ChannelPreview  Channel = "preview"  // Live preview connections

	// Performance and monitoring channels
	ChannelPerf      Channel = "performance" // Performance monitoring and metrics
	ChannelSlowQuery Channel = "slow-query"  // Slow database queries

	// Development and debugging channels
	ChannelDebug Channel = "debug" // Debug information
)

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
	configMu sync.RWMutex
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool   `json:"outputToFile"`    // Whether to write logs to files
	OutputToConsole bool   `json:"outputToConsole"` // Whether to write logs to console
	LogDirectory    string `json:"logDirectory"`    // Directory for log files

	JSONFormat    bool `json:"jsonFormat"`    // Use JSON format for structured logging
	IncludeSource bool `json:"includeSource"` // Include source file and line in logs

	DefaultLevel  slog.Level             `json:"defaultLevel"`  // Default log level
	ChannelLevels map[Channel]slog.Level `json:"channelLevels"` // Per-channel log levels
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    true,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      true,
		IncludeSource:   true,
		DefaultLevel:    slog.LevelInfo,
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	channels := []Channel{
		ChannelSystem, ChannelStartup, ChannelShutdown,
		ChannelAuth, ChannelContent, ChannelRender, ChannelOrder, ChannelCache,
		ChannelDatabase, ChannelMedia, ChannelPreview,
		ChannelPerf, ChannelSlowQuery,
		ChannelDebug,
	}

	for _, channel := range channels {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

// createChannelLogger creates a slog.Logger for a specific channel
func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	cl.configMu.RLock()
	defer cl.configMu.RUnlock()

	level := cl.config.DefaultLevel
	if channelLevel, exists := cl.config.ChannelLevels[channel]; exists {
		level = channelLevel
	}

	var writers []io.Writer
	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}
	if cl.config.OutputToFile {
		filename := fmt.Sprintf("%s.log", string(channel))
		path := filepath.Join(cl.config.LogDirectory, filename)

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stdout
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cl.config.IncludeSource,
	}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler).With(slog.String("channel", string(channel))), nil
}

func (cl *ChanneledLogger) System() *slog.Logger    { return cl.channels[ChannelSystem] }
func (cl *ChanneledLogger) Startup() *slog.Logger   { return cl.channels[ChannelStartup] }
func (cl *ChanneledLogger) Shutdown() *slog.Logger  { return cl.channels[ChannelShutdown] }
func (cl *ChanneledLogger) Auth() *slog.Logger      { return cl.channels[ChannelAuth] }
func (cl *ChanneledLogger) Content() *slog.Logger   { return cl.channels[ChannelContent] }
func (cl *ChanneledLogger) Render() *slog.Logger    { return cl.channels[ChannelRender] }
func (cl *ChanneledLogger) Order() *slog.Logger     { return cl.channels[ChannelOrder] }
func (cl *ChanneledLogger) Cache() *slog.Logger     { return cl.channels[ChannelCache] }
func (cl *ChanneledLogger) Database() *slog.Logger  { return cl.channels[ChannelDatabase] }
func (cl *ChanneledLogger) Media() *slog.Logger     { return cl.channels[ChannelMedia] }
func (cl *ChanneledLogger) Preview() *slog.Logger   { return cl.channels[ChannelPreview] }
func (cl *ChanneledLogger) Perf() *slog.Logger      { return cl.channels[ChannelPerf] }
func (cl *ChanneledLogger) SlowQuery() *slog.Logger { return cl.channels[ChannelSlowQuery] }
func (cl *ChanneledLogger) Debug() *slog.Logger     { return cl.channels[ChannelDebug] }

// GetChannel returns the logger for a specific channel
func (cl *ChanneledLogger) GetChannel(channel Channel) *slog.Logger {
	if logger, exists := cl.channels[channel]; exists {
		return logger
	}
	return cl.channels[ChannelSystem]
}

// WithOperation returns a channel logger with operation context
func (cl *ChanneledLogger) WithOperation(channel Channel, operation string) *slog.Logger {
	return cl.GetChannel(channel).With(slog.String("operation", operation))
}

// LogSlowQuery logs a slow database query
func (cl *ChanneledLogger) LogSlowQuery(query string, duration time.Duration) {
	cl.SlowQuery().Warn("Slow query detected",
		slog.String("query", cl.sanitizeQuery(query)),
		slog.Duration("duration", duration),
	)
}

// LogCacheOperation logs cache operations with performance context
func (cl *ChanneledLogger) LogCacheOperation(operation, key string, hit bool, duration time.Duration) {
	logger := cl.Cache().With(
		slog.String("operation", operation),
		slog.String("key", key),
		slog.Bool("hit", hit),
		slog.Duration("duration", duration),
	)

	if hit {
		logger.Debug("Cache hit")
	} else {
		logger.Debug("Cache miss")
	}
}

// LogAuthOperation logs authentication operations with security context
func (cl *ChanneledLogger) LogAuthOperation(operation, userID string, success bool) {
	logger := cl.Auth().With(
		slog.String("operation", operation),
		slog.String("userId", cl.sanitizeUserID(userID)),
		slog.Bool("success", success),
	)

	if success {
		logger.Info("Authentication operation completed")
	} else {
		logger.Warn("Authentication operation failed")
	}
}

// LogError logs an error with appropriate context and channel
func (cl *ChanneledLogger) LogError(channel Channel, operation string, err error, metadata map[string]any) {
	logger := cl.GetChannel(channel).With(
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)

	for key, value := range metadata {
		logger = logger.With(slog.Any(key, value))
	}

	logger.Error("Operation failed")
}

// LogStartupPhase logs application startup phases
func (cl *ChanneledLogger) LogStartupPhase(phase string, duration time.Duration, success bool, metadata map[string]any) {
	logger := cl.Startup().With(
		slog.String("phase", phase),
		slog.Duration("duration", duration),
		slog.Bool("success", success),
	)

	for key, value := range metadata {
		logger = logger.With(slog.Any(key, value))
	}

	if success {
		logger.Info("Startup phase completed")
	} else {
		logger.Error("Startup phase failed")
	}
}

// sanitizeQuery removes noise from SQL queries for logging
func (cl *ChanneledLogger) sanitizeQuery(query string) string {
	query = strings.ReplaceAll(query, "\n", " ")
	query = strings.ReplaceAll(query, "\t", " ")

	if len(query) > 500 {
		query = query[:500] + "..."
	}
	return query
}

// sanitizeUserID partially masks user IDs for privacy
func (cl *ChanneledLogger) sanitizeUserID(userID string) string {
	if len(userID) <= 4 {
		return "****"
	}
	return userID[:2] + "****" + userID[len(userID)-2:]
}

// SetChannelLevel dynamically sets the log level for a specific channel
func (cl *ChanneledLogger) SetChannelLevel(channel Channel, level slog.Level) error {
	cl.configMu.Lock()
	cl.config.ChannelLevels[channel] = level
	cl.configMu.Unlock()

	channelLogger, err := cl.createChannelLogger(channel)
	if err != nil {
		return err
	}
	cl.channels[channel] = channelLogger
	return nil
}

// Close closes the logger and flushes pending output
func (cl *ChanneledLogger) Close() error {
	cl.System().Info("Channeled logger shutting down")
	return nil
}
