package hidparse

import "encoding/binary"

// unsignedValue decodes a 0/1/2/4 byte little-endian item payload.
func unsignedValue(payload []byte) uint32 {
	switch len(payload) {
	case 1:
		return uint32(payload[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(payload))
	case 4:
		return binary.LittleEndian.Uint32(payload)
	}
	return 0
}

// signedValue decodes an item payload with sign extension from its
// declared width.
func signedValue(payload []byte) int32 {
	switch len(payload) {
	case 1:
		return int32(int8(payload[0]))
	case 2:
		return int32(int16(binary.LittleEndian.Uint16(payload)))
	case 4:
		return int32(binary.LittleEndian.Uint32(payload))
	}
	return 0
}
