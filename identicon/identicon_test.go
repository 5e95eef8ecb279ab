package identicon

import (
	"bytes"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"io"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsZeroMaterial(t *testing.T) {
	got := Paths(make([]byte, PathBytes))
	assert.Equal(t,
		"M8 8C8 8 8 8 8 8S8 8 8 8S8 8 8 8S8 8 8 8S8 8 8 8S8 8 8 8S8 8 8 8S8 8 8 8S8 8 8 8Q8 8 8 8z",
		got[0])
	assert.Equal(t,
		"M24 8C24 8 24 8 24 8S24 8 24 8S24 8 24 8S24 8 24 8S24 8 24 8S24 8 24 8S24 8 24 8S24 8 24 8S24 8 24 8Q24 8 24 8z",
		got[1])
}

func TestPathsKnownMaterial(t *testing.T) {
	material := []byte{
		0x13, 0xfa, 0x4e, 0x65, 0x6e, 0x8c, 0x0d, 0x1b, 0x5c, 0x4e,
		0xb6, 0x90, 0x94, 0x81, 0x0c, 0xd2, 0x9e, 0x25, 0xfc, 0x07,
		// trailing bytes are ignored
		0x9d, 0x21,
	}
	got := Paths(material)
	assert.Equal(t,
		"M9 11C23 18 12 22 14 13S14 22 16 20S8 21 9 19S13 20 12 22S19 14 17 8S17 12 16 9S8 20 21 10S17 22 10 13S23 20 8 15Q-7 10 9 11z",
		got[0])
	assert.Equal(t,
		"M23 11C9 18 20 22 18 13S18 22 16 20S24 21 23 19S19 20 20 22S13 14 15 8S15 12 16 9S24 20 11 10S15 22 22 13S9 20 24 15Q39 10 23 11z",
		got[1])
}

func TestPathsFromNibblesMatchesBytes(t *testing.T) {
	material := []byte("0123456789abcdefghij")
	nibbles := []int{}
	for _, b := range material {
		nibbles = append(nibbles, int(b>>4), int(b&0x0f))
	}
	assert.Equal(t, Paths(material), PathsFromNibbles(nibbles))
}

func TestPathsMirrorKeepsTopology(t *testing.T) {
	commands := regexp.MustCompile(`[MCSQz]`)
	got := Paths([]byte("some twenty byte str"))
	assert.Equal(t, commands.FindAllString(got[0], -1), commands.FindAllString(got[1], -1))
	for _, p := range got {
		assert.True(t, strings.HasPrefix(p, "M"))
		assert.True(t, strings.HasSuffix(p, "z"))
		assert.Equal(t, 1, strings.Count(p, "C"))
		assert.Equal(t, 8, strings.Count(p, "S"))
		assert.Equal(t, 1, strings.Count(p, "Q"))
	}
}

func TestPathsPanicsOnBadLength(t *testing.T) {
	assert.Panics(t, func() { Paths(make([]byte, 19)) })
	assert.Panics(t, func() { PathsFromNibbles(make([]int, 39)) })
	assert.Panics(t, func() { PathsFromNibbles(make([]int, 41)) })
}

func TestColors(t *testing.T) {
	seq := make([]byte, 16)
	for i := range seq {
		seq[i] = byte(i)
	}
	assert.Equal(t, ColorSet{"000102bf", "040506c0", "08090ac1", "0c0d0ec2"}, Colors(seq))

	full := bytes.Repeat([]byte{0xff}, 32)
	assert.Equal(t, ColorSet{"fffffffe", "fffffffe", "fffffffe", "fffffffe"}, Colors(full))

	assert.Panics(t, func() { Colors(make([]byte, 15)) })
}

func TestColorsAlphaRange(t *testing.T) {
	material := make([]byte, 16)
	for v := 0; v < 256; v++ {
		for i := range material {
			material[i] = byte(v)
		}
		for _, c := range Colors(material) {
			require.Len(t, c, 8)
			a := c[6:]
			assert.True(t, a >= "bf" && a <= "fe", "alpha %s out of range", a)
		}
	}
}

func TestColorsKeccakDigest(t *testing.T) {
	digest, err := hex.DecodeString("d654db3c3b5dfe52d3d32fa49719f63af0fcd4cff1d88ec8d2dd3eb7666af39e")
	require.NoError(t, err)
	assert.Equal(t, ColorSet{"d654dbce", "3b5dfed3", "d3d32fe8", "9719f6cd"}, Colors(digest))
}

func TestLegacyColors(t *testing.T) {
	tests := []struct {
		name     string
		material string
		want     ColorSet
	}{
		{
			name:     "three chunks",
			material: "9d21a7403bd8fe473b8fa25f",
			want:     ColorSet{"99dd22c3", "aa7744bf", "3bd8fed0", "3b8fa2d6"},
		},
		{
			name:     "two chunks",
			material: "ab12cd34ef567890",
			want:     ColorSet{"aabb11c7", "ccdd33d0", "eeff55d8", "778899bf"},
		},
		{
			name:     "four chunks",
			material: "0011223344556677889900aabbccddee",
			want:     ColorSet{"001122cb", "445566dc", "889900e9", "bbccddfa"},
		},
		{
			name:     "short last chunk",
			material: "ab12cd34ef56789012",
			want:     ColorSet{"aabb11c7", "ccdd33d0", "ef5678e3", "fffffffe"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LegacyColors(tc.material)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLegacyColorsTooFewChunks(t *testing.T) {
	for _, material := range []string{"", "ab", "ab12cd34"} {
		_, err := LegacyColors(material)
		assert.True(t, errors.Is(err, ErrTooFewChunks), material)
	}
	_, err := LegacyColors("zz12cd34ef567890")
	assert.True(t, errors.Is(err, ErrInvalidHex))
}

func TestFixOpacity(t *testing.T) {
	assert.Equal(t, "aabbccbf", fixOpacity("aabbcc00"))
	assert.Equal(t, "aabbccfe", fixOpacity("aabbcc"))
	assert.Equal(t, "fffffffe", fixOpacity("abc"))
	assert.Equal(t, "123456dd", fixOpacity("12345678"))
	// LegacyColors validates hex before it gets here.
	assert.Panics(t, func() { fixOpacity("123456zz") })
}

func TestSplitColor(t *testing.T) {
	assert.Equal(t, []string{"aabb1122", "ccdd3344"}, splitColor("ab12cd34"))
	assert.Equal(t, []string{"ab12", "ab12"}, splitColor("ab12"))
}

var testColors = ColorSet{"000102bf", "040506c0", "08090ac1", "0c0d0ec2"}

func TestRender(t *testing.T) {
	paths := Paths(make([]byte, PathBytes))
	svg := Render(128, testColors, paths)

	assert.True(t, strings.HasPrefix(svg,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32" width="128" height="128">`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 1, strings.Count(svg, `<radialGradient id="ab">`))
	assert.Equal(t, 1, strings.Count(svg, `<linearGradient id="cdc">`))
	assert.Equal(t, 1, strings.Count(svg, `<linearGradient id="dcd">`))
	assert.Equal(t, 1, strings.Count(svg, "<path"))
	assert.Equal(t, 2, strings.Count(svg, "<rect"))
	assert.Contains(t, svg, `<rect width="100%" height="100%" opacity="1" fill="white" />`)
	assert.Contains(t, svg, `d="`+paths[0]+paths[1]+`"`)

	stops := regexp.MustCompile(`stop-color="#([0-9a-f]{8})"`).FindAllStringSubmatch(svg, -1)
	got := []string{}
	for _, s := range stops {
		got = append(got, s[1])
	}
	assert.Equal(t, []string{
		testColors[0], testColors[1],
		testColors[2], testColors[3], testColors[2],
		testColors[3], testColors[2], testColors[3],
	}, got)
}

func TestRenderIsWellFormedXML(t *testing.T) {
	svg := Render(32, testColors, Paths([]byte("xml well formedness!")))
	decoder := xml.NewDecoder(strings.NewReader(svg))
	elements := map[string]int{}
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if start, ok := tok.(xml.StartElement); ok {
			elements[start.Name.Local]++
		}
	}
	assert.Equal(t, 1, elements["svg"])
	assert.Equal(t, 1, elements["radialGradient"])
	assert.Equal(t, 2, elements["linearGradient"])
	assert.Equal(t, 8, elements["stop"])
	assert.Equal(t, 2, elements["rect"])
	assert.Equal(t, 1, elements["path"])
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, `%3Ca%20b%3D%221%22%3E!*'()~%25%23`, EncodeURIComponent(`<a b="1">!*'()~%#`))
	assert.Equal(t, "AZaz09-_.", EncodeURIComponent("AZaz09-_."))
	assert.Equal(t, "%0A%2F%3A", EncodeURIComponent("\n/:"))
}

func TestDataURIRoundTrip(t *testing.T) {
	svg := Render(64, testColors, Paths(make([]byte, PathBytes)))
	uri := DataURI(svg)
	require.True(t, strings.HasPrefix(uri, DataURIPrefix))
	decoded, err := url.PathUnescape(strings.TrimPrefix(uri, DataURIPrefix))
	require.NoError(t, err)
	assert.Equal(t, svg, decoded)
}
