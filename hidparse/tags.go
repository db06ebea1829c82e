package hidparse

// Short item prefix byte: tag in bits 7..4, item class in bits 3..2,
// payload size in bits 1..0. These constants carry the upper 6 bits,
// the size bits are stripped before dispatch.
const (
	tagInput         Tag = 0x80 // 1000 00xx + DataFlags
	tagOutput        Tag = 0x90 // 1001 00xx + DataFlags
	tagCollection    Tag = 0xA0 // 1010 00xx + collection type
	tagFeature       Tag = 0xB0 // 1011 00xx + DataFlags
	tagEndCollection Tag = 0xC0 // 1100 00xx

	tagUsagePage       Tag = 0x04 // 0000 01xx + page
	tagLogicalMinimum  Tag = 0x14 // 0001 01xx + int
	tagLogicalMaximum  Tag = 0x24 // 0010 01xx + int
	tagPhysicalMinimum Tag = 0x34 // 0011 01xx + int
	tagPhysicalMaximum Tag = 0x44 // 0100 01xx + int
	tagUnitExponent    Tag = 0x54 // 0101 01xx + uint
	tagUnit            Tag = 0x64 // 0110 01xx + uint
	tagReportSize      Tag = 0x74 // 0111 01xx + uint
	tagReportID        Tag = 0x84 // 1000 01xx + uint
	tagReportCount     Tag = 0x94 // 1001 01xx + uint
	tagPush            Tag = 0xA4 // 1010 0100
	tagPop             Tag = 0xB4 // 1011 0100

	tagUsage        Tag = 0x08 // 0000 10xx + usage
	tagUsageMinimum Tag = 0x18 // 0001 10xx + usage
	tagUsageMaximum Tag = 0x28 // 0010 10xx + usage
	tagString       Tag = 0x78 // 0111 10xx + index

	// Long item prefix. The two payload bytes carry the data length
	// and the long tag; the data itself is skipped.
	tagLong Tag = 0xFC
)

// Tag identifies a short item with its payload-size bits masked off.
type Tag uint8

const (
	tagMask  = 0xFC
	sizeMask = 0x03
)

// payloadSize returns the payload length in bytes encoded in the
// prefix byte.
func payloadSize(prefix uint8) int {
	switch prefix & sizeMask {
	case 0x03:
		return 4
	default:
		return int(prefix & sizeMask)
	}
}
