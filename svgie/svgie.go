// Package svgie renders deterministic SVG identicons for Arweave, EVM,
// Solana and Bitcoin addresses.
//
// Every entry point returns the rendered document and true, or "" and false
// when the address does not fit the chain's format or the size is below 1.
// Invalid input is never an error.
package svgie

import (
	"github.com/svgies/svgie/chain"
	"github.com/svgies/svgie/identicon"
)

// Func renders the identicon of an address for one chain.
type Func func(address string, opts ...Option) (string, bool)

var derivers = map[chain.Type]deriveFunc{
	chain.Arweave: deriveArweave,
	chain.EVM:     deriveEVM,
	chain.Solana:  deriveDualHash,
	chain.Bitcoin: deriveDualHash,
}

// Arweave renders a 43 character base64url address. WithLegacy switches to
// the colors older Arweave identicons used.
func Arweave(address string, opts ...Option) (string, bool) {
	return render(chain.Arweave, address, newOptions(opts))
}

// EVM renders a 0x-prefixed 40 digit hex address.
func EVM(address string, opts ...Option) (string, bool) {
	return render(chain.EVM, address, newOptions(opts))
}

func Solana(address string, opts ...Option) (string, bool) {
	return render(chain.Solana, address, newOptions(opts))
}

func Bitcoin(address string, opts ...Option) (string, bool) {
	return render(chain.Bitcoin, address, newOptions(opts))
}

// For returns the entry point of t, or nil when t is not a supported chain.
func For(t chain.Type) Func {
	switch t {
	case chain.Arweave:
		return Arweave
	case chain.EVM:
		return EVM
	case chain.Solana:
		return Solana
	case chain.Bitcoin:
		return Bitcoin
	}
	return nil
}

// Generate renders address with the chain forced by WithChain, or with the
// first chain in chain.DetectionOrder whose format accepts it.
func Generate(address string, opts ...Option) (string, bool) {
	o := newOptions(opts)
	t := o.Chain
	if t == chain.Unknown {
		detected, found := chain.Detect(address)
		if !found {
			return "", false
		}
		t = detected
	}
	return render(t, address, o)
}

func render(t chain.Type, address string, o Options) (string, bool) {
	derive, found := derivers[t]
	if !found || !t.Valid(address) || o.Size < 1 {
		return "", false
	}
	colors, paths, err := derive(address, o)
	if err != nil {
		return "", false
	}
	svg := identicon.Render(o.Size, colors, paths)
	if o.AsDataURI {
		return identicon.DataURI(svg), true
	}
	return svg, true
}
