package svgie

import "github.com/svgies/svgie/chain"

const DefaultSize = 32

// Options controls how an identicon is rendered.
type Options struct {
	// Size is the rendered width and height in pixels. Values below 1 are rejected.
	Size int
	// Seed varies the colors. EVM identicons ignore it.
	Seed string
	// Legacy selects the pre-hashing color derivation. Arweave only.
	Legacy bool
	// AsDataURI returns a data:image/svg+xml URI instead of the raw document.
	AsDataURI bool
	// Chain forces a pipeline. Unknown means auto-detect.
	Chain chain.Type
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{Size: DefaultSize}
}

func WithSize(size int) Option {
	return func(o *Options) { o.Size = size }
}

func WithSeed(seed string) Option {
	return func(o *Options) { o.Seed = seed }
}

func WithLegacy(legacy bool) Option {
	return func(o *Options) { o.Legacy = legacy }
}

func WithDataURI(asDataURI bool) Option {
	return func(o *Options) { o.AsDataURI = asDataURI }
}

func WithChain(t chain.Type) Option {
	return func(o *Options) { o.Chain = t }
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
