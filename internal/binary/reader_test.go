package binary

import "testing"

func TestReaderFixedWidth(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x00, 0x00, 0x01, 0x00, 'g', 'l', 'y', 'f'}
	r := NewReader(buf)

	u16, err := r.U16()
	if err != nil || u16 != 1 {
		t.Fatalf("U16 = %d, %v; want 1, nil", u16, err)
	}
	u32, err := r.U32()
	if err != nil || u32 != 256 {
		t.Fatalf("U32 = %d, %v; want 256, nil", u32, err)
	}
	tag, err := r.Tag()
	if err != nil || tag != "glyf" {
		t.Fatalf("Tag = %q, %v; want glyf, nil", tag, err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d; want 0", r.Len())
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.U32(); err != ErrShortRead {
		t.Fatalf("err = %v; want ErrShortRead", err)
	}
}

func TestReadUintBase128(t *testing.T) {
	cases := []struct {
		in   []byte
		want uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x3F}, 63},
		{[]byte{0x8F, 0x10}, 1936},
	}
	for _, c := range cases {
		got, err := ReadUintBase128(NewReader(c.in))
		if err != nil {
			t.Fatalf("ReadUintBase128(%v): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ReadUintBase128(%v) = %d; want %d", c.in, got, c.want)
		}
	}
}

func TestReadUintBase128RejectsLeadingZero(t *testing.T) {
	_, err := ReadUintBase128(NewReader([]byte{0x80, 0x00}))
	if err != ErrInvalidVarint {
		t.Fatalf("err = %v; want ErrInvalidVarint", err)
	}
}

func TestRead255UInt16(t *testing.T) {
	// code < 253 is a literal value.
	v, err := Read255UInt16(NewReader([]byte{10}))
	if err != nil || v != 10 {
		t.Fatalf("Read255UInt16 = %d, %v; want 10, nil", v, err)
	}
	// 255 escape: value = byte + 253.
	v, err = Read255UInt16(NewReader([]byte{255, 5}))
	if err != nil || v != 258 {
		t.Fatalf("Read255UInt16 = %d, %v; want 258, nil", v, err)
	}
	// 253 escape: a literal two-byte word follows.
	v, err = Read255UInt16(NewReader([]byte{253, 0x01, 0x00}))
	if err != nil || v != 256 {
		t.Fatalf("Read255UInt16 = %d, %v; want 256, nil", v, err)
	}
}

func TestBitReaderLSB(t *testing.T) {
	// 0b10110010 -> reading 4 bits then 4 bits LSB-first.
	br := NewBitReaderLSB([]byte{0b10110010})
	low, err := br.ReadBits(4)
	if err != nil || low != 0b0010 {
		t.Fatalf("low = %04b, %v; want 0010", low, err)
	}
	high, err := br.ReadBits(4)
	if err != nil || high != 0b1011 {
		t.Fatalf("high = %04b, %v; want 1011", high, err)
	}
}
