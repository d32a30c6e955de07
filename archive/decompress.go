// Package archive provides the pluggable byte-in/byte-out decompression
// step the engine applies to a response body based on its Content-Encoding.
package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Encoding identifies a supported Content-Encoding value.
type Encoding string

const (
	Gzip    Encoding = "gzip"
	XGzip   Encoding = "x-gzip"
	Deflate Encoding = "deflate"
	Zstd    Encoding = "zstd"
	Brotli  Encoding = "br"
)

// Supported reports whether encoding is one Decode understands.
func Supported(encoding string) bool {
	switch Encoding(encoding) {
	case Gzip, XGzip, Deflate, Zstd, Brotli:
		return true
	default:
		return false
	}
}

// Decode decompresses body according to encoding. An unsupported or
// malformed encoding is reported as an error; the caller (the engine) treats
// that as an invalid response.
func Decode(encoding string, body []byte) ([]byte, error) {
	switch Encoding(encoding) {
	case Gzip, XGzip:
		r, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("archive: gzip: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)

	case Deflate:
		r := flate.NewReader(bytes.NewReader(body))
		defer r.Close()
		return io.ReadAll(r)

	case Zstd:
		r, err := zstd.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("archive: zstd: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)

	case Brotli:
		r := brotli.NewReader(bytes.NewReader(body))
		return io.ReadAll(r)

	default:
		return nil, fmt.Errorf("archive: unsupported content-encoding %q", encoding)
	}
}
