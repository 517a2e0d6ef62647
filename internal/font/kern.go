package font

import (
	"sort"

	bin "htmlpdf/internal/binary"
)

// KernTable is a prev-glyph/next-glyph adjustment table built from a
// format-0 `kern' subtable, the only format spec.md 4.C requires.
type KernTable struct {
	pairs []kernPair
}

type kernPair struct {
	left, right uint16
	value       int16
}

// Lookup returns the kerning adjustment (in font units) to apply between
// left and right, or 0 if no pair entry exists.
func (k *KernTable) Lookup(left, right uint16) int16 {
	if k == nil {
		return 0
	}
	key := packPair(left, right)
	i := sort.Search(len(k.pairs), func(i int) bool {
		return packPair(k.pairs[i].left, k.pairs[i].right) >= key
	})
	if i < len(k.pairs) && k.pairs[i].left == left && k.pairs[i].right == right {
		return k.pairs[i].value
	}
	return 0
}

func packPair(left, right uint16) uint32 { return uint32(left)<<16 | uint32(right) }

func parseKern(data []byte) *KernTable {
	if len(data) < 4 {
		return nil
	}
	version := bin.ReadUint16BE(data, 0)
	pos := 4
	var nTables int
	if version == 0 {
		nTables = int(bin.ReadUint16BE(data, 2))
	} else {
		// Apple's version-1 kern header uses a 32-bit table count at a
		// different offset; treat anything non-zero-version as a single
		// legacy subtable attempt to stay permissive without overreaching.
		nTables = 1
		pos = 0
	}

	var pairs []kernPair
	for t := 0; t < nTables && pos+6 <= len(data); t++ {
		subStart := pos
		length := int(bin.ReadUint16BE(data, pos+2))
		coverage := bin.ReadUint16BE(data, pos+4)
		format := coverage >> 8
		subData := data[pos:]
		if length <= 0 || subStart+length > len(data) {
			break
		}
		if format == 0 && len(subData) >= 14 {
			nPairs := int(bin.ReadUint16BE(subData, 6))
			off := 14
			for i := 0; i < nPairs && off+6 <= len(subData); i++ {
				left := bin.ReadUint16BE(subData, off)
				right := bin.ReadUint16BE(subData, off+2)
				value := int16(bin.ReadUint16BE(subData, off+4))
				pairs = append(pairs, kernPair{left, right, value})
				off += 6
			}
		}
		pos = subStart + length
	}
	if len(pairs) == 0 {
		return nil
	}
	sort.Slice(pairs, func(i, j int) bool {
		return packPair(pairs[i].left, pairs[i].right) < packPair(pairs[j].left, pairs[j].right)
	})
	return &KernTable{pairs: pairs}
}
