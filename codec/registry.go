package codec

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/zoobzio/bijectz"
)

// Registry errors.
var (
	ErrUnknownCodec   = errors.New("unknown codec")
	ErrEmptyChain     = errors.New("codec chain is empty")
	ErrDuplicateCodec = errors.New("codec already registered")
)

// Codec is a byte-to-byte injection that can be chained with any other.
type Codec = bijectz.Injection[[]byte, []byte]

// Registry holds codecs by name.
type Registry struct {
	codecs map[bijectz.Name]Codec
	mu     sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[bijectz.Name]Codec)}
}

// Default creates a registry holding identity, gzip, base64 and hex. The
// text codecs are adapted to bytes so they chain with the rest.
func Default() *Registry {
	r := NewRegistry()
	r.mustRegister("identity", bijectz.AsInjection(bijectz.Identity[[]byte]()))
	r.mustRegister(GZipName, GZip())
	r.mustRegister(Base64Name, textCodec(Base64Std()))
	r.mustRegister(HexName, textCodec(Hex()))
	return r
}

// Register adds c under name. Names are unique.
func (r *Registry) Register(name bijectz.Name, c Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.codecs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCodec, name)
	}
	r.codecs[name] = c
	return nil
}

func (r *Registry) mustRegister(name bijectz.Name, c Codec) {
	if err := r.Register(name, c); err != nil {
		panic(err)
	}
}

// Lookup returns the codec registered under name.
func (r *Registry) Lookup(name bijectz.Name) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
	}
	return c, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []bijectz.Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]bijectz.Name, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain looks up each name and joins the codecs left to right, so the
// first name is applied first and inverted last.
func (r *Registry) Chain(names ...bijectz.Name) (Codec, error) {
	if len(names) == 0 {
		return nil, ErrEmptyChain
	}
	chain, err := r.Lookup(names[0])
	if err != nil {
		return nil, err
	}
	for _, name := range names[1:] {
		next, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		chain = bijectz.AndThenInjection(chain, next)
	}
	return chain, nil
}

// textCodec carries a bytes-to-text codec into bytes-to-bytes. The text
// side is always ASCII here, so the UTF-8 check never rejects Apply output.
func textCodec(c bijectz.Injection[[]byte, string]) Codec {
	return bijectz.AndThenInjection(c, UTF8())
}
