package types

import "testing"

func TestFrame_PackUnpack(t *testing.T) {
	var f Frame
	f[0] = true
	f[9] = true
	f[PixelCount-1] = true

	packed := f.Pack()
	if len(packed) != PixelCount/8 {
		t.Fatalf("expected %d packed bytes, got %d", PixelCount/8, len(packed))
	}
	if packed[0] != 0x80 || packed[1] != 0x40 || packed[len(packed)-1] != 0x01 {
		t.Errorf("unexpected packing % X ... %02X", packed[:2], packed[len(packed)-1])
	}
	if Unpack(packed) != f {
		t.Errorf("unpacked frame differs from original")
	}
}

func TestFrame_At(t *testing.T) {
	var f Frame
	f[2*ScreenWidth+5] = true

	if !f.At(5, 2) {
		t.Errorf("expected pixel 5,2 to be lit")
	}
	if f.At(ScreenWidth, 0) || f.At(0, ScreenHeight) || f.At(-1, -1) {
		t.Errorf("expected out of range pixels to be unlit")
	}
	if f.Lit() != 1 {
		t.Errorf("expected 1 lit pixel, got %d", f.Lit())
	}
}

func current(f Frame) Frame { return f }

func TestFrame_ReturnedValue(t *testing.T) {
	var f Frame
	f[ScreenWidth+1] = true

	if !current(f).At(1, 1) {
		t.Errorf("expected pixel 1,1 to be lit")
	}
	if n := current(f).Lit(); n != 1 {
		t.Errorf("expected 1 lit pixel, got %d", n)
	}
	if b := current(f).Pack(); b[ScreenWidth/8] != 0x40 {
		t.Errorf("unexpected packed row % X", b[ScreenWidth/8:ScreenWidth/8+1])
	}
}
