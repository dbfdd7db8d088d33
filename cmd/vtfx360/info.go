package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/goopsie/vtfx360/internal/fileio"
	"github.com/goopsie/vtfx360/pkg/vtf"
)

type resourceReport struct {
	Type         string `json:"type"`
	DataOrOffset uint32 `json:"data_or_offset"`
	InlineData   bool   `json:"inline_data,omitempty"`
}

type infoReport struct {
	Variant       string           `json:"variant"`
	Version       string           `json:"version"`
	Width         uint16           `json:"width"`
	Height        uint16           `json:"height"`
	Depth         uint16           `json:"depth,omitempty"`
	Frames        uint16           `json:"frames"`
	Format        string           `json:"format"`
	Flags         []string         `json:"flags"`
	MipLevels     uint8            `json:"mip_levels"`
	Resources     []resourceReport `json:"resources,omitempty"`
	PayloadBytes  int              `json:"payload_bytes,omitempty"`
	PayloadXXHash string           `json:"payload_xxhash,omitempty"`
	ConvertError  string           `json:"convert_error,omitempty"`
}

func infoCmd(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Show the header and resources of a VTF file",
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the report as JSON", Destination: &s.asJSON},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return &ArgumentError{Want: "<input>", Got: cmd.Args().Len()}
			}
			if _, err := prepare(ctx, cmd, s); err != nil {
				return err
			}

			input := cmd.Args().Get(0)
			data, err := fileio.Load(input)
			if err != nil {
				return err
			}
			report, err := inspect(data)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", input, err)
			}

			if s.asJSON {
				out, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				_, err = fmt.Fprintln(stdout(cmd), string(out))
				return err
			}
			return printReport(stdout(cmd), report)
		},
	}
}

// inspect builds a report for either header variant. Console files are
// also run through the converter so the report shows what would be written.
func inspect(data []byte) (*infoReport, error) {
	console, err := vtf.ParseConsoleHeader(data)
	if err == nil && console.Validate() == nil {
		return inspectConsole(data, console), nil
	}

	host := &vtf.HostHeader{}
	if hostErr := host.UnmarshalBinary(data); hostErr != nil {
		if err == nil {
			err = console.Validate()
		}
		return nil, fmt.Errorf("not a console or PC VTF: %w", err)
	}
	return &infoReport{
		Variant:   "pc",
		Version:   fmt.Sprintf("%d.%d", host.VersionMajor, host.VersionMinor),
		Width:     host.Width,
		Height:    host.Height,
		Frames:    host.NumFrames,
		Format:    host.ImageFormat.String(),
		Flags:     flagList(host.Flags),
		MipLevels: host.NumMipLevels,
	}, nil
}

func inspectConsole(data []byte, h *vtf.ConsoleHeader) *infoReport {
	report := &infoReport{
		Variant:   "x360",
		Version:   fmt.Sprintf("0x%x.%d", h.VersionMajor, h.VersionMinor),
		Width:     h.Width,
		Height:    h.Height,
		Depth:     h.Depth,
		Frames:    h.NumFrames,
		Format:    h.ImageFormat.String(),
		Flags:     flagList(h.Flags),
		MipLevels: vtf.ComputeMipLevels(h.Width, h.Height, h.Flags.Has(vtf.FlagNoMip)),
	}

	entries, err := vtf.ScanResources(data, h)
	if err != nil {
		report.ConvertError = err.Error()
		return report
	}
	for _, e := range entries {
		report.Resources = append(report.Resources, resourceReport{
			Type:         e.Type.String(),
			DataOrOffset: e.DataOrOffset,
			InlineData:   e.HasNoDataChunk(),
		})
	}

	res, err := vtf.Convert(data)
	if err != nil {
		report.ConvertError = err.Error()
		return report
	}
	report.PayloadBytes = len(res.Payload)
	report.PayloadXXHash = fmt.Sprintf("%016x", res.PayloadHash())
	return report
}

func flagList(f vtf.TextureFlags) []string {
	names := f.Names()
	if names == nil {
		return []string{}
	}
	return names
}

func printReport(w io.Writer, r *infoReport) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("Variant:    %s (version %s)\n", r.Variant, r.Version)
	p("Size:       %dx%d", r.Width, r.Height)
	if r.Depth > 1 {
		p("x%d", r.Depth)
	}
	p("\nFrames:     %d\n", r.Frames)
	p("Format:     %s\n", r.Format)
	p("Flags:      %v\n", r.Flags)
	p("Mip levels: %d\n", r.MipLevels)
	for i, res := range r.Resources {
		p("Resource %d: %s at 0x%08x\n", i, res.Type, res.DataOrOffset)
	}
	if r.PayloadXXHash != "" {
		p("Payload:    %d bytes, xxhash64 %s\n", r.PayloadBytes, r.PayloadXXHash)
	}
	if r.ConvertError != "" {
		p("Cannot convert: %s\n", r.ConvertError)
	}
	return err
}
