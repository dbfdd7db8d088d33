package vtf

import (
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/goopsie/vtfx360/internal/logger"
)

// Result is a converted file: a 7.1 header followed by the payload.
type Result struct {
	Console     *ConsoleHeader
	Resources   []ResourceEntry
	Header      *HostHeader
	HeaderBytes []byte
	Payload     []byte
}

// Size returns the length of the converted file.
func (r *Result) Size() int {
	return len(r.HeaderBytes) + len(r.Payload)
}

// Bytes returns the header and payload concatenated.
func (r *Result) Bytes() []byte {
	out := make([]byte, 0, r.Size())
	out = append(out, r.HeaderBytes...)
	return append(out, r.Payload...)
}

// WriteTo writes the header then the payload to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.HeaderBytes)
	total := int64(n)
	if err != nil {
		return total, fmt.Errorf("write header: %w", err)
	}
	n, err = w.Write(r.Payload)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("write payload: %w", err)
	}
	return total, nil
}

// PayloadHash returns the xxhash64 of the converted payload.
func (r *Result) PayloadHash() uint64 {
	return xxhash.Sum64(r.Payload)
}

// Option configures Convert.
type Option func(*converter)

// WithLogger sets the logger used to trace each conversion stage.
func WithLogger(l logger.Logger) Option {
	return func(c *converter) {
		c.log = l
	}
}

type converter struct {
	log logger.Logger
}

// Convert turns a console VTF held entirely in data into a 7.1 file.
// Nothing is produced unless every stage succeeds.
func Convert(data []byte, opts ...Option) (*Result, error) {
	c := &converter{log: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	console, err := ParseConsoleHeader(data)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	if err := console.Validate(); err != nil {
		return nil, err
	}
	c.log.Debug("parsed console header",
		"width", console.Width,
		"height", console.Height,
		"depth", console.Depth,
		"frames", console.NumFrames,
		"format", console.ImageFormat.String(),
		"flags", console.Flags.String(),
		"resources", console.NumResources,
	)

	entries, err := ScanResources(data, console)
	if err != nil {
		return nil, fmt.Errorf("scan resources: %w", err)
	}
	for i, e := range entries {
		c.log.Debug("resource", "index", i, "type", e.Type.String(), "offset", e.DataOrOffset)
	}
	if len(entries) == 1 && entries[0].Type.ID() != ResourceImage {
		c.log.Warn("single resource is not image data", "type", entries[0].Type.String())
	}

	mips := ComputeMipLevels(console.Width, console.Height, console.Flags.Has(FlagNoMip))
	host := BuildHostHeader(console, mips)
	c.log.Debug("built host header", "mips", mips)

	payload, err := ConvertPayload(data, entries, len(data))
	if err != nil {
		return nil, fmt.Errorf("convert payload: %w", err)
	}

	headerBytes, err := host.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal header: %w", err)
	}

	return &Result{
		Console:     console,
		Resources:   entries,
		Header:      host,
		HeaderBytes: headerBytes,
		Payload:     payload,
	}, nil
}
