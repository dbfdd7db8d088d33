package fileio

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goopsie/vtfx360/pkg/archive"
)

var sample = bytes.Repeat([]byte{'V', 'T', 'F', 0, 1, 2, 3, 4}, 32)

func TestWriteLoad(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionGzip} {
		t.Run(string(c), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.vtf")

			if err := Write(path, sample, WithCompression(c, 0)); err != nil {
				t.Fatalf("write: %v", err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read raw: %v", err)
			}
			if got := Detect(raw); got != c {
				t.Errorf("expected container %s, got %s", c, got)
			}

			data, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !bytes.Equal(data, sample) {
				t.Error("data mismatch after round trip")
			}
		})
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.vtf")
	if err := Write(path, sample); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.vtf" {
		t.Errorf("expected only out.vtf, got %v", entries)
	}
}

func TestWriteExisting(t *testing.T) {
	t.Run("Overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.vtf")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := Write(path, sample); err != nil {
			t.Fatalf("write over existing file: %v", err)
		}
		if data, _ := os.ReadFile(path); !bytes.Equal(data, sample) {
			t.Error("file not replaced")
		}
	})

	t.Run("NoClobber", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.vtf")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}

		err := Write(path, sample, WithNoClobber(true))
		if !errors.Is(err, ErrExists) {
			t.Fatalf("expected ErrExists, got %v", err)
		}
		if data, _ := os.ReadFile(path); string(data) != "old" {
			t.Error("existing file was modified")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("temp file left behind: %v", entries)
		}
	})

	t.Run("NoClobberNewFile", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.vtf")
		if err := Write(path, sample, WithNoClobber(true)); err != nil {
			t.Fatalf("write: %v", err)
		}
		if data, _ := os.ReadFile(path); !bytes.Equal(data, sample) {
			t.Error("data mismatch")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Name() != "out.vtf" {
			t.Errorf("expected only out.vtf, got %v", entries)
		}
	})
}

func TestWriteMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.vtf")
	err := Write(path, sample)

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist cause, got %v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Error("output exists after failed write")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.vtf"))
		var ioErr *IOError
		if !errors.As(err, &ioErr) || ioErr.Op != "read" {
			t.Fatalf("expected read IOError, got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected not-exist cause, got %v", err)
		}
	})

	t.Run("CorruptArchive", func(t *testing.T) {
		wrapped, err := archive.Wrap(sample, archive.DefaultCompressionLevel)
		if err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(t.TempDir(), "bad.vtf")
		if err := os.WriteFile(path, wrapped[:archive.HeaderSize+2], 0644); err != nil {
			t.Fatal(err)
		}
		_, err = Load(path)
		var ioErr *IOError
		if !errors.As(err, &ioErr) || ioErr.Op != "decode" {
			t.Fatalf("expected decode IOError, got %v", err)
		}
	})

	t.Run("OversizedArchive", func(t *testing.T) {
		data := make([]byte, archive.HeaderSize+4)
		archive.NewHeader(1<<62, 4).EncodeTo(data)
		path := filepath.Join(t.TempDir(), "huge.vtf")
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		var ioErr *IOError
		if !errors.As(err, &ioErr) || ioErr.Op != "decode" {
			t.Fatalf("expected decode IOError, got %v", err)
		}
	})

	t.Run("GzipOverLimit", func(t *testing.T) {
		packed, err := Encode(sample, CompressionGzip, 0)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := decodeGzip(packed, int64(len(sample))-1); err == nil {
			t.Error("expected error for gzip data over limit")
		}
		plain, err := decodeGzip(packed, int64(len(sample)))
		if err != nil || !bytes.Equal(plain, sample) {
			t.Errorf("gzip data at limit rejected: %v", err)
		}
	})

	t.Run("CorruptGzip", func(t *testing.T) {
		if _, err := Decode([]byte{0x1f, 0x8b, 0x00}); err == nil {
			t.Error("expected error for corrupt gzip")
		}
	})
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		input   string
		want    Compression
		wantErr bool
	}{
		{"", CompressionNone, false},
		{"none", CompressionNone, false},
		{"ZSTD", CompressionZstd, false},
		{"gzip", CompressionGzip, false},
		{"lz4", CompressionNone, true},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseCompression(%q): got %q, %v", tt.input, got, err)
		}
	}
}

func TestDetectPlain(t *testing.T) {
	if got := Detect(sample); got != CompressionNone {
		t.Errorf("expected none, got %s", got)
	}
	data, err := Decode(sample)
	if err != nil || !bytes.Equal(data, sample) {
		t.Errorf("plain data altered by Decode: %v", err)
	}
}
