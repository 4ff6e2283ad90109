package rgb

import (
	"fmt"
	"image/color"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a 24-bit pixel value.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0x00, 0x00, 0x00}
	White = Color{0xFF, 0xFF, 0xFF}
)

// Model converts any color.Color to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xFFFF
	return
}

// Invert returns the bitwise complement of every channel.
func (c Color) Invert() Color {
	return Color{^c.R, ^c.G, ^c.B}
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) String() string { return c.Hex() }

func (c Color) isGray() bool { return c.R == c.G && c.G == c.B }

func (c Color) colorful() clr.Color {
	return clr.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c clr.Color) Color {
	c = c.Clamped()
	return Color{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
	}
}

// FromColor converts c, dropping alpha.
func FromColor(c color.Color) Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// ParseColor accepts a hex triplet such as "#1e90ff" or an SVG 1.1 color
// name such as "dodgerblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := clr.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return fromColorful(c), nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{c.R, c.G, c.B}, nil
	}
	return Color{}, fmt.Errorf("unknown color name %q", s)
}

// Mix interpolates from a (t = 0) to b (t = 1). Pairs involving a gray
// are mixed in RGB, others in CIE L*a*b*.
func Mix(a, b Color, t float64) Color {
	ca, cb := a.colorful(), b.colorful()
	if a.isGray() || b.isGray() {
		return fromColorful(ca.BlendRgb(cb, t))
	}
	return fromColorful(ca.BlendLab(cb, t))
}

// Lighten raises the HCL luminance of c by p.
func Lighten(c Color, p float64) Color {
	h, chroma, l := c.colorful().Hcl()
	return fromColorful(clr.Hcl(h, chroma, l+p))
}

// Darken lowers the HCL luminance of c by p.
func Darken(c Color, p float64) Color {
	h, chroma, l := c.colorful().Hcl()
	return fromColorful(clr.Hcl(h, chroma, l-p))
}

// rgb24 unpacks a 0xRRGGBB literal.
func rgb24(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// EGA is the 16-color EGA palette.
var EGA = [16]Color{
	rgb24(0x000000),
	rgb24(0x0000AA),
	rgb24(0x00AA00),
	rgb24(0x00AAAA),
	rgb24(0xAA0000),
	rgb24(0xAA00AA),
	rgb24(0xAA5500),
	rgb24(0xAAAAAA),

	rgb24(0x555555),
	rgb24(0x5555FF),
	rgb24(0x55FF55),
	rgb24(0x55FFFF),
	rgb24(0xFF5555),
	rgb24(0xFF55FF),
	rgb24(0xFFFF55),
	rgb24(0xFFFFFF),
}
