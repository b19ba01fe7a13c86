package codec

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/zoobzio/bijectz"
)

// Names of the compression codecs.
const (
	GZipName          bijectz.Name = "gzip"
	GZippedBase64Name bijectz.Name = "gzip → base64"
)

// DefaultMaxDecompressed bounds what GZip inflates from a single input.
const DefaultMaxDecompressed int64 = 64 << 20

// ErrDecompressedTooLarge is the cause when a gzip stream inflates past
// its limit.
var ErrDecompressedTooLarge = errors.New("decompressed data exceeds limit")

// GZip compresses bytes. Any valid gzip stream inverts, including ones
// produced at other compression levels, as long as it inflates to at most
// DefaultMaxDecompressed bytes.
func GZip() bijectz.Injection[[]byte, []byte] {
	return GZipLimit(DefaultMaxDecompressed)
}

// GZipLimit is GZip with inversion bounded to limit decompressed bytes.
// Inputs that Apply produced from more than limit bytes will not invert.
func GZipLimit(limit int64) bijectz.Injection[[]byte, []byte] {
	return bijectz.NewInjection(GZipName, compress, func(data []byte) ([]byte, error) {
		return decompress(data, limit)
	})
}

// GZippedBase64 compresses and then base64-encodes, giving a text-safe
// form of arbitrary bytes.
func GZippedBase64() bijectz.Injection[[]byte, string] {
	return bijectz.AndThenInjection(GZip(), Base64Std())
}

func compress(data []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	// Writes to a bytes.Buffer cannot fail.
	_, _ = zw.Write(data) //nolint:errcheck
	_ = zw.Close()        //nolint:errcheck
	return buf.Bytes()
}

func decompress(data []byte, limit int64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrDecompressedTooLarge, limit)
	}
	return out, nil
}
