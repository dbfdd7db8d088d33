package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/goopsie/vtfx360/internal/fileio"
	"github.com/goopsie/vtfx360/internal/logger"
	"github.com/goopsie/vtfx360/pkg/vtf"
)

func convertCmd(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a console VTF to a PC VTF 7.1 file",
		ArgsUsage: "<input> <output>",
		Flags:     convertFlags(s, false),
		Action:    convertAction(s),
	}
}

func convertAction(s *settings) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() < 2 {
			return &ArgumentError{Want: "<input> <output>", Got: cmd.Args().Len()}
		}

		ctx, err := prepare(ctx, cmd, s)
		if err != nil {
			return err
		}
		compression, err := s.compression()
		if err != nil {
			return err
		}

		return runConvert(ctx, cmd.Args().Get(0), cmd.Args().Get(1),
			fileio.WithCompression(compression, s.level),
			fileio.WithNoClobber(s.noClobber),
		)
	}
}

// runConvert loads input, converts it and writes output. Nothing is
// written unless conversion succeeds.
func runConvert(ctx context.Context, input, output string, opts ...fileio.WriteOption) error {
	log := logger.FromContext(ctx).With("input", input)

	data, err := fileio.Load(input)
	if err != nil {
		return err
	}

	res, err := vtf.Convert(data, vtf.WithLogger(log))
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}

	if err := fileio.Write(output, res.Bytes(), opts...); err != nil {
		return err
	}

	log.Info("converted",
		"output", output,
		"size", fmt.Sprintf("%dx%d", res.Header.Width, res.Header.Height),
		"format", res.Header.ImageFormat.String(),
		"mips", res.Header.NumMipLevels,
		"bytes", res.Size(),
		"payload_xxhash", fmt.Sprintf("%016x", res.PayloadHash()),
	)
	if res.Header.ImageFormat.ConsoleOnly() {
		log.Warn("image format has no PC equivalent", "format", res.Header.ImageFormat.String())
	}
	return nil
}
