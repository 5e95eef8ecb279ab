package svgie

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	sha256 "github.com/minio/sha256-simd"

	"github.com/svgies/svgie/identicon"
)

// deriveFunc turns a validated address into the colors and outlines of its
// identicon.
type deriveFunc func(address string, o Options) (identicon.ColorSet, identicon.PathPair, error)

// arweaveColoring is one of the two ways Arweave identicons are colored.
type arweaveColoring func(decoded []byte, paddedBase64, seed string) (identicon.ColorSet, error)

const pathHashPrefix = "paths:"

// legacyHexOffset skips the hex digits already consumed as path material.
const legacyHexOffset = identicon.PathBytes * 2

// legacyArweaveColors reads colors straight out of the trailing 12 bytes of
// the decoded address.
func legacyArweaveColors(decoded []byte, _, _ string) (identicon.ColorSet, error) {
	encoded := hex.EncodeToString(decoded)
	if len(encoded) < legacyHexOffset {
		return identicon.ColorSet{}, fmt.Errorf("decoded address too short: %d bytes", len(decoded))
	}
	return identicon.LegacyColors(encoded[legacyHexOffset:])
}

// hashedArweaveColors hashes the padded base64 form of the address with the seed.
func hashedArweaveColors(_ []byte, paddedBase64, seed string) (identicon.ColorSet, error) {
	digest := sha256.Sum256([]byte(paddedBase64 + seed))
	return identicon.Colors(digest[:]), nil
}

// toPaddedBase64 converts a base64url address to standard base64 with padding.
func toPaddedBase64(address string) string {
	s := strings.NewReplacer("-", "+", "_", "/").Replace(address)
	if pad := (4 - len(s)%4) % 4; pad > 0 {
		s += strings.Repeat("=", pad)
	}
	return s
}

func deriveArweave(address string, o Options) (identicon.ColorSet, identicon.PathPair, error) {
	padded := toPaddedBase64(address)
	decoded, err := base64.StdEncoding.DecodeString(padded)
	if err != nil {
		return identicon.ColorSet{}, identicon.PathPair{}, fmt.Errorf("couldn't decode arweave address: %w", err)
	}
	if len(decoded) < identicon.PathBytes {
		return identicon.ColorSet{}, identicon.PathPair{}, fmt.Errorf("decoded arweave address has %d bytes", len(decoded))
	}

	coloring := arweaveColoring(hashedArweaveColors)
	if o.Legacy {
		coloring = legacyArweaveColors
	}
	colors, err := coloring(decoded, padded, o.Seed)
	if err != nil {
		return identicon.ColorSet{}, identicon.PathPair{}, err
	}
	return colors, identicon.Paths(decoded[:identicon.PathBytes]), nil
}

// deriveEVM colors from the keccak256 of the raw address bytes and draws the
// outline from the 40 hex digits of the address itself. The seed is ignored.
func deriveEVM(address string, _ Options) (identicon.ColorSet, identicon.PathPair, error) {
	lower := strings.ToLower(address)
	colors := identicon.Colors(crypto.Keccak256(common.HexToAddress(lower).Bytes()))

	body := strings.TrimPrefix(lower, "0x")
	nibbles := make([]int, 0, len(body))
	for _, c := range body {
		n, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return identicon.ColorSet{}, identicon.PathPair{}, fmt.Errorf("invalid hex digit %q in evm address", c)
		}
		nibbles = append(nibbles, int(n))
	}
	return colors, identicon.PathsFromNibbles(nibbles), nil
}

// deriveDualHash hashes the address twice: once with the seed for colors,
// once with a fixed prefix for the outline, so the seed never changes the
// shape. Solana and Bitcoin share it.
func deriveDualHash(address string, o Options) (identicon.ColorSet, identicon.PathPair, error) {
	colorHash := sha256.Sum256([]byte(address + o.Seed))
	pathHash := sha256.Sum256([]byte(pathHashPrefix + address))
	return identicon.Colors(colorHash[:]), identicon.Paths(pathHash[:identicon.PathBytes]), nil
}
