package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/goopsie/vtfx360/internal/config"
	"github.com/goopsie/vtfx360/internal/fileio"
	"github.com/goopsie/vtfx360/internal/logger"
)

// settings collects flag destinations shared by every command.
type settings struct {
	configPath string
	logLevel   string
	logFormat  string

	compress  string
	level     int
	noClobber bool
	asJSON    bool
}

func globalFlags(s *settings) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: user config dir)",
			Destination: &s.configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "debug, info, warn or error",
			Value:       "info",
			Destination: &s.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "text or json",
			Value:       "text",
			Destination: &s.logFormat,
		},
	}
}

// convertFlags returns the conversion flags. The root command marks its
// copies local so they do not clash with the convert subcommand's.
func convertFlags(s *settings, local bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "compress",
			Local:       local,
			Aliases:     []string{"c"},
			Usage:       "output container: none, zstd or gzip",
			Value:       string(fileio.CompressionNone),
			Destination: &s.compress,
		},
		&cli.IntFlag{
			Name:        "level",
			Local:       local,
			Usage:       "compression level (0 = container default)",
			Destination: &s.level,
		},
		&cli.BoolFlag{
			Name:        "no-clobber",
			Local:       local,
			Aliases:     []string{"n"},
			Usage:       "fail instead of replacing an existing output file",
			Destination: &s.noClobber,
		},
	}
}

// prepare applies config file defaults to flags the user did not set and
// stores the resulting logger in the context.
func prepare(ctx context.Context, cmd *cli.Command, s *settings) (context.Context, error) {
	path := s.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, err
	}
	applyConfig(cmd, cfg, s)

	level, err := logger.ParseLevel(s.logLevel)
	if err != nil {
		return ctx, err
	}
	format, err := logger.ParseFormat(s.logFormat)
	if err != nil {
		return ctx, err
	}
	return logger.WithContext(ctx, logger.New(stderr(cmd), level, format)), nil
}

func applyConfig(cmd *cli.Command, cfg config.Config, s *settings) {
	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		s.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !cmd.IsSet("log-format") {
		s.logFormat = cfg.LogFormat
	}
	if cfg.Compress != "" && !cmd.IsSet("compress") {
		s.compress = cfg.Compress
	}
	if cfg.CompressLevel != nil && !cmd.IsSet("level") {
		s.level = *cfg.CompressLevel
	}
	if cfg.NoClobber != nil && !cmd.IsSet("no-clobber") {
		s.noClobber = *cfg.NoClobber
	}
}

func (s *settings) compression() (fileio.Compression, error) {
	c, err := fileio.ParseCompression(s.compress)
	if err != nil {
		return c, fmt.Errorf("invalid --compress: %w", err)
	}
	return c, nil
}
