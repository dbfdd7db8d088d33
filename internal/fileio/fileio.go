// Package fileio reads and writes whole texture files.
//
// Inputs may be plain, wrapped in a ZSTD archive, or gzip compressed; Load
// returns the plain bytes. Write never leaves a partial output behind: data
// goes to a temporary file in the target directory which is moved into
// place once complete. Existing outputs are replaced unless WithNoClobber
// is given.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/goopsie/vtfx360/pkg/archive"
)

// ErrExists is returned by Write in no-clobber mode when the output exists.
var ErrExists = errors.New("output file already exists")

// MaxDecodedSize caps the plain size of a compressed input.
const MaxDecodedSize = archive.MaxLength

// IOError reports a failed file operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Compression selects the container used for output files.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionGzip Compression = "gzip"
)

// ParseCompression validates a compression name. Empty means none.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(s)); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionZstd, CompressionGzip:
		return c, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression %q (want none, zstd or gzip)", s)
	}
}

var gzipMagic = []byte{0x1f, 0x8b}

// Detect reports the container data is stored in.
func Detect(data []byte) Compression {
	switch {
	case archive.IsArchive(data):
		return CompressionZstd
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// Load reads the file at path and strips any compression container.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: unwrapPathError(err)}
	}

	plain, err := Decode(data)
	if err != nil {
		return nil, &IOError{Op: "decode", Path: path, Err: err}
	}
	return plain, nil
}

// Decode strips the compression container from data, if any.
func Decode(data []byte) ([]byte, error) {
	switch Detect(data) {
	case CompressionZstd:
		return archive.Unwrap(data)
	case CompressionGzip:
		return decodeGzip(data, MaxDecodedSize)
	default:
		return data, nil
	}
}

func decodeGzip(data []byte, limit int64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer zr.Close()

	plain, err := io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read gzip: %w", err)
	}
	if int64(len(plain)) > limit {
		return nil, fmt.Errorf("gzip data exceeds limit of %d bytes", limit)
	}
	return plain, nil
}

// Encode wraps data in the given container. A level of 0 selects the
// container's default.
func Encode(data []byte, c Compression, level int) ([]byte, error) {
	switch c {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		if level == 0 {
			level = archive.DefaultCompressionLevel
		}
		return archive.Wrap(data, level)
	case CompressionGzip:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("create gzip writer: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("write gzip: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("close gzip: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", c)
	}
}

// WriteOption configures Write.
type WriteOption func(*writeOptions)

type writeOptions struct {
	compression Compression
	level       int
	noClobber   bool
}

// WithCompression wraps the output in the given container.
func WithCompression(c Compression, level int) WriteOption {
	return func(o *writeOptions) {
		o.compression = c
		o.level = level
	}
}

// WithNoClobber makes Write fail with ErrExists instead of replacing an
// existing file.
func WithNoClobber(noClobber bool) WriteOption {
	return func(o *writeOptions) {
		o.noClobber = noClobber
	}
}

// Write stores data at path atomically.
func Write(path string, data []byte, opts ...WriteOption) error {
	o := &writeOptions{compression: CompressionNone}
	for _, opt := range opts {
		opt(o)
	}

	encoded, err := Encode(data, o.compression, o.level)
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	tmp := tempPath(path)
	if err := writeSynced(tmp, encoded); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "write", Path: tmp, Err: unwrapPathError(err)}
	}

	if o.noClobber {
		// Link refuses an existing path, unlike Rename.
		err := os.Link(tmp, path)
		os.Remove(tmp)
		if errors.Is(err, fs.ErrExist) {
			return &IOError{Op: "write", Path: path, Err: ErrExists}
		}
		if err != nil {
			return &IOError{Op: "link", Path: path, Err: unwrapPathError(err)}
		}
		return nil
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "rename", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

func tempPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// unwrapPathError drops the *os.PathError or *os.LinkError layer since
// IOError carries the operation and path itself.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err
	}
	return err
}
