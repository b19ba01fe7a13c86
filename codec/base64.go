package codec

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/zoobzio/bijectz"
)

// Names of the binary-to-text codecs.
const (
	Base64Name bijectz.Name = "base64"
	HexName    bijectz.Name = "hex"
)

// Base64 maps bytes to text using enc. Strict encodings reject the
// non-canonical padding bits that would otherwise make decoding many-to-one.
func Base64(enc *base64.Encoding) bijectz.Injection[[]byte, string] {
	return bijectz.NewInjection(Base64Name, enc.EncodeToString, enc.DecodeString)
}

// Base64Std is Base64 over the strict padded standard alphabet.
func Base64Std() bijectz.Injection[[]byte, string] {
	return Base64(base64.StdEncoding.Strict())
}

// Hex maps bytes to lower-case hexadecimal. Inversion also accepts upper
// case.
func Hex() bijectz.Injection[[]byte, string] {
	return bijectz.NewInjection(HexName, hex.EncodeToString, hex.DecodeString)
}
