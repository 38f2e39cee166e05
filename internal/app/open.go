package app

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/edconf/internal/config"
	"github.com/dshills/edconf/internal/config/loader"
)

// Options adjust how Open builds the registry.
type Options struct {
	// LogOutput receives diagnostics. Defaults to os.Stderr.
	LogOutput io.Writer
	// UserFS replaces the disk for user files.
	UserFS loader.FileSystem
}

// Open builds a registry from s and loads every domain.
func Open(s Settings, opts Options) (*config.Registry, error) {
	ext, err := s.UserExt()
	if err != nil {
		return nil, err
	}

	logger := Logger(s, opts.LogOutput)

	regOpts := []config.Option{
		config.WithLogger(logger),
		config.WithUserFormat(ext),
	}
	if s.DefaultsDir != "" {
		regOpts = append(regOpts, config.WithDefaultsDir(s.DefaultsDir))
	}
	if s.UserDir != "" {
		regOpts = append(regOpts, config.WithUserDir(s.UserDir))
	}
	if opts.UserFS != nil {
		regOpts = append(regOpts, config.WithUserFS(opts.UserFS))
	}

	reg, err := config.New(regOpts...)
	if err != nil {
		return nil, NewOperationError("creating registry", s.UserDir, err)
	}
	if err := reg.LoadAll(); err != nil {
		return nil, NewOperationError("loading configuration", reg.UserDir(), err)
	}
	logger.Debug("configuration ready", "user_dir", reg.UserDir(), "format", ext)
	return reg, nil
}

// Logger returns the logger Open uses for s.
func Logger(s Settings, output io.Writer) *log.Logger {
	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(s.LogLevel)
	cfg.Output = output
	return NewLogger(cfg)
}
