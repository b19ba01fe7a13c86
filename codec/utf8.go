package codec

import (
	"errors"
	"unicode/utf8"

	"github.com/zoobzio/bijectz"
)

// UTF8Name names the UTF8 codec.
const UTF8Name bijectz.Name = "utf8"

// ErrInvalidUTF8 is the cause when UTF8 inversion meets malformed bytes.
var ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")

// UTF8 maps a string to its bytes. Go strings may hold arbitrary bytes, so
// the forward direction is only injective over valid UTF-8 text; inversion
// rejects anything else rather than produce a string Apply would never see.
func UTF8() bijectz.Injection[string, []byte] {
	return bijectz.NewInjection(UTF8Name,
		func(s string) []byte { return []byte(s) },
		func(b []byte) (string, error) {
			if !utf8.Valid(b) {
				return "", ErrInvalidUTF8
			}
			return string(b), nil
		},
	)
}
