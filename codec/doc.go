// Package codec provides ready-made bijectz injections for common
// representations: decimal and boolean text, UTF-8, base64, hex, gzip and
// the structured encodings msgpack, YAML and JSON.
//
// Every codec's forward direction is total. Inversion parses untrusted input
// and fails with a *bijectz.InversionFailure naming the codec and carrying
// the parser's own error as its cause:
//
//	n, err := codec.Int64String().Invert("21")   // 21, nil
//	_, err = codec.Int64String().Invert("hello") // errors.Is(err, strconv.ErrSyntax)
//
// Byte-to-byte codecs can be registered by name and chained at runtime:
//
//	reg := codec.Default()
//	chain, err := reg.Chain("gzip", "base64")
//	encoded := chain.Apply(payload)
//	decoded, err := chain.Invert(encoded)
//
// Codecs hold no state and are safe for concurrent use.
package codec
