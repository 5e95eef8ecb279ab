package chain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Type identifies the address format an identicon is derived from.
type Type uint8

const (
	Unknown Type = iota
	Arweave
	EVM
	Solana
	Bitcoin
)

var ErrUnknownChain = errors.New("unknown chain")

// DetectionOrder is the order grammars are tried in when no chain is forced.
// Grammars overlap (a base58 string can satisfy both Bitcoin and Solana), so
// the first match wins.
var DetectionOrder = []Type{EVM, Arweave, Bitcoin, Solana}

var (
	arweaveRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{43}$`)
	evmRegex     = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	solanaRegex  = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	bitcoinRegex = regexp.MustCompile(`^(bc1|[13])[a-zA-HJ-NP-Z0-9]+$`)
)

const (
	bitcoinMinLen = 26
	bitcoinMaxLen = 62
)

var names = map[Type]string{
	Arweave: "arweave",
	EVM:     "evm",
	Solana:  "solana",
	Bitcoin: "bitcoin",
}

var aliases = map[string]Type{
	"arweave":  Arweave,
	"ar":       Arweave,
	"evm":      EVM,
	"eth":      EVM,
	"ethereum": EVM,
	"solana":   Solana,
	"sol":      Solana,
	"bitcoin":  Bitcoin,
	"btc":      Bitcoin,
}

func (t Type) String() string {
	if name, found := names[t]; found {
		return name
	}
	return "unknown"
}

// Valid reports whether address satisfies the format grammar of t. It does
// not verify checksums.
func (t Type) Valid(address string) bool {
	switch t {
	case Arweave:
		return len(address) == 43 && arweaveRegex.MatchString(address)
	case EVM:
		return evmRegex.MatchString(address)
	case Solana:
		return solanaRegex.MatchString(address)
	case Bitcoin:
		if len(address) < bitcoinMinLen || len(address) > bitcoinMaxLen {
			return false
		}
		return bitcoinRegex.MatchString(address)
	}
	return false
}

// Detect returns the first chain in DetectionOrder whose grammar accepts address.
func Detect(address string) (Type, bool) {
	for _, t := range DetectionOrder {
		if t.Valid(address) {
			return t, true
		}
	}
	return Unknown, false
}

// Matches returns every chain whose grammar accepts address, in detection order.
func Matches(address string) []Type {
	result := []Type{}
	for _, t := range DetectionOrder {
		if t.Valid(address) {
			result = append(result, t)
		}
	}
	return result
}

// Names returns the canonical chain names in detection order.
func Names() []string {
	result := make([]string, 0, len(DetectionOrder))
	for _, t := range DetectionOrder {
		result = append(result, t.String())
	}
	return result
}

// Parse maps a chain name or one of its aliases to a Type. Unknown names
// produce an error wrapping ErrUnknownChain with close matches, if any.
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, found := aliases[key]; found {
		return t, nil
	}
	suggestions := Suggest(key)
	if len(suggestions) == 0 {
		return Unknown, fmt.Errorf("%w: %q (valid values: %s)", ErrUnknownChain, name, strings.Join(Names(), ", "))
	}
	return Unknown, fmt.Errorf("%w: %q, did you mean %s?", ErrUnknownChain, name, strings.Join(suggestions, " or "))
}

// Suggest returns canonical chain names fuzzily matching input, best first.
func Suggest(input string) []string {
	if input == "" {
		return nil
	}
	candidates := make([]string, 0, len(aliases))
	for alias := range aliases {
		candidates = append(candidates, alias)
	}
	sort.Strings(candidates)
	seen := map[Type]bool{}
	result := []string{}
	for _, match := range fuzzy.Find(input, candidates) {
		t := aliases[match.Str]
		if seen[t] {
			continue
		}
		seen[t] = true
		result = append(result, t.String())
	}
	return result
}
