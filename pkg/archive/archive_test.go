package archive

import (
	"bytes"
	"testing"
)

func TestHeader(t *testing.T) {
	t.Run("MarshalUnmarshal", func(t *testing.T) {
		original := NewHeader(1024, 512)

		data, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		decoded := &Header{}
		if err := decoded.UnmarshalBinary(data); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		if *decoded != *original {
			t.Errorf("mismatch: got %+v, want %+v", decoded, original)
		}
	})

	t.Run("InvalidMagic", func(t *testing.T) {
		h := NewHeader(1024, 512)
		h.Magic = [4]byte{'V', 'T', 'F', 0}
		if err := h.Validate(); err == nil {
			t.Error("expected error for invalid magic")
		}
	})

	t.Run("ZeroLength", func(t *testing.T) {
		if err := NewHeader(0, 512).Validate(); err == nil {
			t.Error("expected error for zero length")
		}
	})

	t.Run("TooShort", func(t *testing.T) {
		if err := (&Header{}).UnmarshalBinary(make([]byte, HeaderSize-1)); err == nil {
			t.Error("expected error for short header")
		}
	})
}

func TestWrapUnwrap(t *testing.T) {
	original := bytes.Repeat([]byte("VTF\x00 texture payload "), 64)

	wrapped, err := Wrap(original, DefaultCompressionLevel)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if !IsArchive(wrapped) {
		t.Fatal("wrapped data not recognised as archive")
	}
	if len(wrapped) >= len(original) {
		t.Errorf("expected repetitive data to compress, got %d >= %d", len(wrapped), len(original))
	}

	unwrapped, err := Unwrap(wrapped)
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if !bytes.Equal(unwrapped, original) {
		t.Error("data mismatch after round trip")
	}
}

func TestUnwrapErrors(t *testing.T) {
	wrapped, err := Wrap([]byte("some texture bytes"), DefaultCompressionLevel)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}

	t.Run("Truncated", func(t *testing.T) {
		if _, err := Unwrap(wrapped[:len(wrapped)-1]); err == nil {
			t.Error("expected error for truncated archive")
		}
	})

	t.Run("NotArchive", func(t *testing.T) {
		if IsArchive([]byte("VTF\x00")) {
			t.Error("short VTF data recognised as archive")
		}
		if _, err := Unwrap(make([]byte, 64)); err == nil {
			t.Error("expected error for zero header")
		}
	})

	t.Run("OversizedLength", func(t *testing.T) {
		data := make([]byte, HeaderSize+4)
		NewHeader(1<<62, 4).EncodeTo(data)
		if _, err := Unwrap(data); err == nil {
			t.Error("expected error for length beyond MaxLength")
		}

		data = make([]byte, HeaderSize+4)
		NewHeader(MaxLength+1, 4).EncodeTo(data)
		if _, err := Unwrap(data); err == nil {
			t.Error("expected error for length of MaxLength+1")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := Wrap(nil, DefaultCompressionLevel); err == nil {
			t.Error("expected error wrapping empty data")
		}
	})
}
