package identicon

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorBytes is how many bytes of material one color set consumes.
const ColorBytes = 16

// ColorSet holds four RRGGBBAA colors. The first two tint the background
// radial gradient, the last two alternate in the outline fill and stroke.
type ColorSet [4]string

var (
	ErrTooFewChunks = errors.New("legacy color material has fewer than two chunks")
	ErrInvalidHex   = errors.New("color material is not hex")
)

// alpha compresses an opacity byte into [191, 254] so shapes never fade out.
func alpha(b byte) byte {
	return b>>2 + 191
}

// Colors derives a color set from the first 16 bytes of material. Every
// fourth byte is an alpha channel and gets compressed.
func Colors(material []byte) ColorSet {
	if len(material) < ColorBytes {
		panic(fmt.Sprintf("identicon: color material must have at least %d bytes, got %d", ColorBytes, len(material)))
	}
	fixed := make([]byte, ColorBytes)
	for i, b := range material[:ColorBytes] {
		if i%4 == 3 {
			b = alpha(b)
		}
		fixed[i] = b
	}
	var result ColorSet
	for i := range result {
		result[i] = hex.EncodeToString(fixed[i*4 : i*4+4])
	}
	return result
}

// LegacyColors expands raw hex material the way identicons were colored
// before hashing was introduced. The material is cut into 8 character
// chunks: with two chunks both are split into doubled-digit halves, with
// three only the first is split, with more they are used as they are.
func LegacyColors(material string) (ColorSet, error) {
	if _, err := hex.DecodeString(padEven(material)); err != nil {
		return ColorSet{}, fmt.Errorf("%w: %q", ErrInvalidHex, material)
	}
	chunks := chunk(material, 8)

	var expanded []string
	switch len(chunks) {
	case 0, 1:
		return ColorSet{}, fmt.Errorf("%w: got %d", ErrTooFewChunks, len(chunks))
	case 2:
		expanded = append(splitColor(chunks[0]), splitColor(chunks[1])...)
	case 3:
		expanded = append(splitColor(chunks[0]), chunks[1:]...)
	default:
		expanded = chunks
	}

	var result ColorSet
	for i := range result {
		result[i] = fixOpacity(expanded[i])
	}
	return result, nil
}

func padEven(s string) string {
	if len(s)%2 == 1 {
		return s + "0"
	}
	return s
}

func chunk(s string, size int) []string {
	result := []string{}
	for len(s) > 0 {
		n := min(size, len(s))
		result = append(result, s[:n])
		s = s[n:]
	}
	return result
}

// splitColor turns "ab12cd34" into "aabb1122" and "ccdd3344".
func splitColor(s string) []string {
	if len(s) == 8 {
		return []string{doubleDigits(s[:4]), doubleDigits(s[4:])}
	}
	return []string{s, s}
}

func doubleDigits(s string) string {
	var sb strings.Builder
	for _, c := range s {
		sb.WriteRune(c)
		sb.WriteRune(c)
	}
	return sb.String()
}

// fixOpacity normalizes a 6 or 8 digit color to RRGGBBAA with a compressed
// alpha. Anything else becomes white. color must already be valid hex.
func fixOpacity(color string) string {
	var data string
	switch len(color) {
	case 8:
		data = color
	case 6:
		data = color + "ff"
	default:
		data = "ffffffff"
	}
	a, err := strconv.ParseUint(data[6:8], 16, 8)
	if err != nil {
		panic(fmt.Sprintf("identicon: alpha of %q is not hex", color))
	}
	return data[:6] + strconv.FormatUint(uint64(alpha(byte(a))), 16)
}
