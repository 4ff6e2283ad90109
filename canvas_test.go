package canvas_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/32bitkid/canvas"
	"github.com/32bitkid/canvas/mono"
	"github.com/32bitkid/canvas/rgb"
)

func TestCheckDimension(t *testing.T) {
	for _, v := range []int{32, 33, 512, 1024} {
		if err := canvas.CheckDimension(canvas.AxisWidth, v); err != nil {
			t.Errorf("%d: unexpected error %v", v, err)
		}
	}
	for _, v := range []int{-1, 0, 10, 31, 1025} {
		err := canvas.CheckDimension(canvas.AxisHeight, v)
		if !errors.Is(err, canvas.ErrInvalidDimension) {
			t.Errorf("%d: expected ErrInvalidDimension, got %v", v, err)
		}
	}

	err := canvas.CheckDimension(canvas.AxisHeight, 1025)
	if want := "invalid height 1025: should be in range [32 ... 1024]"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err)
	}
}

func TestCheckIndex(t *testing.T) {
	if err := canvas.CheckIndex(canvas.AxisCol, 63, 64); err != nil {
		t.Fatal(err)
	}

	err := canvas.CheckIndex(canvas.AxisCol, 64, 64)
	if !errors.Is(err, canvas.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if errors.Is(err, canvas.ErrInvalidDimension) {
		t.Fatal("range error must not match ErrInvalidDimension")
	}

	var re *canvas.RangeError
	if !errors.As(err, &re) || re.Value != 64 || re.Max != 63 || re.Axis != canvas.AxisCol {
		t.Fatalf("unexpected error %#v", err)
	}
	if want := "invalid col 64: should be in range [0 ... 63]"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	canvas.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer canvas.SetLogger(nil)

	c, err := mono.New(64, 32)
	if err != nil {
		t.Fatal(err)
	}
	c.Clone()
	if _, err := rgb.New(10, 32); err == nil {
		t.Fatal("expected an error")
	}

	out := buf.String()
	for _, want := range []string{
		"pixels: allocate", "format=mono1", "stride=2",
		"pixels: clone",
		"pixels: rejected dimensions", "format=rgb24",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output is missing %q:\n%s", want, out)
		}
	}

	canvas.SetLogger(nil)
	buf.Reset()
	if _, err := mono.New(32, 32); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output after reset, got %q", buf.String())
	}
}
