package identicon

import (
	"fmt"
	"strings"
)

const (
	// PathBytes is how many bytes of material one outline consumes.
	PathBytes = 20
	// NibbleCount is the number of coordinates in one outline.
	NibbleCount = PathBytes * 2

	nibbleOffset = 8
	mirrorAxis   = 32
)

// PathPair holds a closed outline and its mirror image. Both are meant to be
// concatenated into the d attribute of a single path element.
type PathPair [2]string

// Paths splits the first 20 bytes of material into high and low nibbles and
// builds the outline pair from them.
func Paths(material []byte) PathPair {
	if len(material) < PathBytes {
		panic(fmt.Sprintf("identicon: path material must have at least %d bytes, got %d", PathBytes, len(material)))
	}
	nibbles := make([]int, 0, NibbleCount)
	for _, b := range material[:PathBytes] {
		nibbles = append(nibbles, int(b>>4), int(b&0x0f))
	}
	return PathsFromNibbles(nibbles)
}

// PathsFromNibbles builds the outline pair from 40 nibble values in [0, 15].
// Each nibble is shifted into [8, 23] so the outline stays inside the 32x32
// view box. The mirror reflects every even (x) coordinate around 16.
func PathsFromNibbles(nibbles []int) PathPair {
	if len(nibbles) != NibbleCount {
		panic(fmt.Sprintf("identicon: outline needs %d nibbles, got %d", NibbleCount, len(nibbles)))
	}
	arr := make([]int, NibbleCount)
	sym := make([]int, NibbleCount)
	for i, n := range nibbles {
		arr[i] = n + nibbleOffset
		if i%2 == 0 {
			sym[i] = mirrorAxis - arr[i]
		} else {
			sym[i] = arr[i]
		}
	}
	return PathPair{outline(arr), outline(sym)}
}

// outline turns coordinates into a closed cubic Bézier path. The first pair
// is the start point, the next three pairs an explicit curve, every further
// four values a smooth continuation. The closing quadratic uses the
// reflection of the last control point and returns to the start.
func outline(v []int) string {
	n := len(v)
	var sb strings.Builder
	fmt.Fprintf(&sb, "M%d %d", v[0], v[1])
	fmt.Fprintf(&sb, "C%d %d %d %d %d %d", v[2], v[3], v[4], v[5], v[6], v[7])
	for i := 8; i+3 < n; i += 4 {
		fmt.Fprintf(&sb, "S%d %d %d %d", v[i], v[i+1], v[i+2], v[i+3])
	}
	fmt.Fprintf(&sb, "Q%d %d %d %dz", 2*v[n-2]-v[n-4], 2*v[n-1]-v[n-3], v[0], v[1])
	return sb.String()
}
