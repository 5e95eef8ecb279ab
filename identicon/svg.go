package identicon

import (
	"fmt"
	"strings"
)

const (
	// ViewBox is fixed; the rendered size only scales the image.
	ViewBox       = "0 0 32 32"
	DataURIPrefix = "data:image/svg+xml;utf8,"
)

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" width="%d" height="%d">
    <radialGradient id="ab">
        <stop stop-color="#%s" offset="0" />
        <stop stop-color="#%s" offset="1" />
    </radialGradient>
    <rect width="100%%" height="100%%" opacity="1" fill="white" />
    <rect width="100%%" height="100%%" opacity=".5" fill="url(#ab)" />
    <linearGradient id="cdc">
        <stop stop-color="#%s" offset="0" />
        <stop stop-color="#%s" offset=".5" />
        <stop stop-color="#%s" offset="1" />
    </linearGradient>
    <linearGradient id="dcd">
        <stop stop-color="#%s" offset="0" />
        <stop stop-color="#%s" offset=".5" />
        <stop stop-color="#%s" offset="1" />
    </linearGradient>
    <path
        fill="url(#cdc)"
        stroke-width=".1"
        stroke="url(#dcd)"
        d="%s%s"
    />
</svg>`

// Render composes the identicon document. Colors 0 and 1 tint the
// background, colors 2 and 3 alternate in the outline fill (cdc) and
// stroke (dcd).
func Render(size int, c ColorSet, p PathPair) string {
	return fmt.Sprintf(svgTemplate,
		ViewBox, size, size,
		c[0], c[1],
		c[2], c[3], c[2],
		c[3], c[2], c[3],
		p[0], p[1],
	)
}

// DataURI wraps a rendered document into a data URI.
func DataURI(svg string) string {
	return DataURIPrefix + EncodeURIComponent(svg)
}

// EncodeURIComponent percent-encodes every byte except the unreserved set
// A-Z a-z 0-9 - _ . ! ~ * ' ( ), matching what browsers do for URI components.
func EncodeURIComponent(s string) string {
	const upperhex = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0x0f])
	}
	return sb.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
