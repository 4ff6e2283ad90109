package rgb

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#000000", Black},
		{"#ffffff", White},
		{"#1e90ff", Color{0x1e, 0x90, 0xff}},
		{" #AA5500 ", EGA[6]},
		{"dodgerblue", Color{0x1e, 0x90, 0xff}},
		{"Red", Color{0xff, 0x00, 0x00}},
		{"white", White},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}

	for _, in := range []string{"", "#zzzzzz", "not-a-color"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range EGA {
		got, err := ParseColor(c.Hex())
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Fatalf("%s: round trip produced %v", c.Hex(), got)
		}
	}
	if s := EGA[1].Hex(); s != "#0000aa" {
		t.Fatalf("expected #0000aa, got %s", s)
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}); got != (Color{1, 2, 3}) {
		t.Fatalf("unexpected %v", got)
	}
	if got := FromColor(color.Gray{Y: 0x80}); got != (Color{0x80, 0x80, 0x80}) {
		t.Fatalf("unexpected %v", got)
	}
	c := Color{9, 8, 7}
	if got := FromColor(c); got != c {
		t.Fatalf("unexpected %v", got)
	}
	if r, g, b, a := c.RGBA(); r != 9*0x101 || g != 8*0x101 || b != 7*0x101 || a != 0xFFFF {
		t.Fatalf("unexpected RGBA (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestInvert(t *testing.T) {
	if got := White.Invert(); got != Black {
		t.Fatalf("expected black, got %v", got)
	}
	if got := (Color{0x0f, 0xf0, 0x55}).Invert(); got != (Color{0xf0, 0x0f, 0xaa}) {
		t.Fatalf("unexpected %v", got)
	}
}

func TestMix(t *testing.T) {
	if got := Mix(Black, White, 0.5); got != (Color{0x80, 0x80, 0x80}) {
		t.Fatalf("expected mid gray, got %v", got)
	}
	if got := Mix(Black, White, 0); got != Black {
		t.Fatalf("expected black, got %v", got)
	}
	if got := Mix(Black, White, 1); got != White {
		t.Fatalf("expected white, got %v", got)
	}

	red, blue := EGA[4], EGA[1]
	mid := Mix(red, blue, 0.5)
	if mid == red || mid == blue {
		t.Fatalf("mix of distinct colors returned an endpoint: %v", mid)
	}
}

func TestLightenDarken(t *testing.T) {
	base := EGA[2]
	luma := func(c Color) int { return 299*int(c.R) + 587*int(c.G) + 114*int(c.B) }

	if l := Lighten(base, 0.2); luma(l) <= luma(base) {
		t.Fatalf("lighten produced %v from %v", l, base)
	}
	if d := Darken(base, 0.2); luma(d) >= luma(base) {
		t.Fatalf("darken produced %v from %v", d, base)
	}
	if got := Darken(Black, 0.5); got != Black {
		t.Fatalf("darkening black should clamp, got %v", got)
	}
}
