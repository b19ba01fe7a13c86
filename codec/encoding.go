package codec

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/bijectz"
)

// Names of the structured codecs.
const (
	MsgPackName bijectz.Name = "msgpack"
	YAMLName    bijectz.Name = "yaml"
	JSONName    bijectz.Name = "json"
)

// MsgPack serializes T with msgpack. T must be a type msgpack can encode;
// Apply panics otherwise, since a forward mapping cannot fail.
//
// The round trip holds for values whose every field survives encoding:
// exported struct fields, maps, slices and scalars.
func MsgPack[T any]() bijectz.Injection[T, []byte] {
	return structured[T](MsgPackName, msgpack.Marshal, msgpack.Unmarshal)
}

// YAML serializes T as a YAML document.
func YAML[T any]() bijectz.Injection[T, []byte] {
	return structured[T](YAMLName, yaml.Marshal, yaml.Unmarshal)
}

// JSON serializes T as compact JSON.
func JSON[T any]() bijectz.Injection[T, []byte] {
	return structured[T](JSONName, json.Marshal, json.Unmarshal)
}

func structured[T any](name bijectz.Name, marshal func(any) ([]byte, error), unmarshal func([]byte, any) error) bijectz.Injection[T, []byte] {
	return bijectz.NewInjection(name,
		func(value T) []byte {
			data, err := marshal(value)
			if err != nil {
				panic(fmt.Sprintf("%s: cannot encode %T: %v", name, value, err))
			}
			return data
		},
		func(data []byte) (T, error) {
			var value T
			err := unmarshal(data, &value)
			return value, err
		},
	)
}
