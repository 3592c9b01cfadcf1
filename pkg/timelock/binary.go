package timelock

import (
	"crypto/ed25519"
	"encoding/binary"
)

const discriminatorSize = 8

func putDiscriminator(dst []byte, src [discriminatorSize]byte, offset *int) {
	copy(dst[*offset:], src[:])
	*offset += discriminatorSize
}

func getDiscriminator(src []byte, dst *[discriminatorSize]byte, offset *int) {
	copy(dst[:], src[*offset:])
	*offset += discriminatorSize
}

func putKey(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], src)
	*offset += ed25519.PublicKeySize
}

func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func putUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset++
}

func getUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset++
}

func putBool(dst []byte, v bool, offset *int) {
	if v {
		putUint8(dst, 1, offset)
	} else {
		putUint8(dst, 0, offset)
	}
}

func getBool(src []byte, dst *bool, offset *int) {
	var v uint8
	getUint8(src, &v, offset)
	*dst = v != 0
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func putInt64(dst []byte, v int64, offset *int) {
	putUint64(dst, uint64(v), offset)
}

func getInt64(src []byte, dst *int64, offset *int) {
	var v uint64
	getUint64(src, &v, offset)
	*dst = int64(v)
}
