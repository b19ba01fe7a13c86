package codec

import (
	"strconv"

	"github.com/zoobzio/bijectz"
)

// Names of the text codecs.
const (
	Int64StringName bijectz.Name = "int64-string"
	IntStringName   bijectz.Name = "int-string"
	BoolStringName  bijectz.Name = "bool-string"
)

// Int64String maps an int64 to its base-10 text. Inversion accepts anything
// ParseInt accepts, including "+7" and "007", which Apply never produces.
func Int64String() bijectz.Injection[int64, string] {
	return bijectz.NewInjection(Int64StringName,
		func(n int64) string { return strconv.FormatInt(n, 10) },
		func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	)
}

// IntString maps an int to its base-10 text.
func IntString() bijectz.Injection[int, string] {
	return bijectz.NewInjection(IntStringName, strconv.Itoa, strconv.Atoi)
}

// BoolString maps a bool to "true" or "false".
func BoolString() bijectz.Injection[bool, string] {
	return bijectz.NewInjection(BoolStringName, strconv.FormatBool, strconv.ParseBool)
}
