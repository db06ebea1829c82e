// Package hiddesc composes HID report descriptors byte by byte. It is
// the authoring-side counterpart of hidparse, used by tests and by
// virtual-device implementations that need a descriptor to advertise.
package hiddesc

import (
	"encoding/binary"

	"github.com/hidtools/usbhid/hidparse"
)

// Item prefixes with zeroed size bits.
const (
	itemInput         = 0x80
	itemOutput        = 0x90
	itemCollection    = 0xA0
	itemFeature       = 0xB0
	itemEndCollection = 0xC0

	itemUsagePage       = 0x04
	itemLogicalMinimum  = 0x14
	itemLogicalMaximum  = 0x24
	itemPhysicalMinimum = 0x34
	itemPhysicalMaximum = 0x44
	itemUnitExponent    = 0x54
	itemUnit            = 0x64
	itemReportSize      = 0x74
	itemReportID        = 0x84
	itemReportCount     = 0x94
	itemPush            = 0xA4
	itemPop             = 0xB4

	itemUsage        = 0x08
	itemUsageMinimum = 0x18
	itemUsageMaximum = 0x28
)

// Collection types.
const (
	CollectionPhysical uint8 = iota
	CollectionApplication
	CollectionLogical
	CollectionReport
	CollectionNamedArray
	CollectionUsageSwitch
	CollectionUsageModifier
)

// Builder accumulates descriptor bytes. Methods chain and encode each
// item with the smallest payload that holds its value.
type Builder struct {
	buf []byte
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Bytes returns the descriptor accumulated so far.
func (b *Builder) Bytes() []byte {
	return b.buf
}

func (b *Builder) item0(prefix uint8) *Builder {
	b.buf = append(b.buf, prefix)
	return b
}

func (b *Builder) item8(prefix, value uint8) *Builder {
	b.buf = append(b.buf, prefix|0x01, value)
	return b
}

func (b *Builder) itemUnsigned(prefix uint8, value uint32) *Builder {
	switch {
	case value < 0x100:
		return b.item8(prefix, uint8(value))
	case value < 0x10000:
		b.buf = append(b.buf, prefix|0x02, byte(value), byte(value>>8))
	default:
		b.buf = append(b.buf, prefix|0x03, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
	}
	return b
}

func (b *Builder) itemSigned(prefix uint8, value int32) *Builder {
	var data [4]byte
	binary.LittleEndian.PutUint32(data[:], uint32(value))
	pad := byte(0)
	if value < 0 {
		pad = 0xFF
	}
	switch {
	case data[1] == pad && data[2] == pad && data[3] == pad && data[0]&0x80 == pad&0x80:
		b.buf = append(b.buf, prefix|0x01, data[0])
	case data[2] == pad && data[3] == pad && data[1]&0x80 == pad&0x80:
		b.buf = append(b.buf, prefix|0x02, data[0], data[1])
	default:
		b.buf = append(b.buf, prefix|0x03, data[0], data[1], data[2], data[3])
	}
	return b
}

func (b *Builder) UsagePage(page uint16) *Builder {
	return b.itemUnsigned(itemUsagePage, uint32(page))
}

func (b *Builder) Usage(id uint16) *Builder {
	return b.itemUnsigned(itemUsage, uint32(id))
}

// Usage32 emits a 4-byte usage carrying an extended usage page in its
// upper 16 bits.
func (b *Builder) Usage32(page, id uint16) *Builder {
	value := uint32(page)<<16 | uint32(id)
	b.buf = append(b.buf, itemUsage|0x03, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
	return b
}

func (b *Builder) UsageRange(min, max uint16) *Builder {
	b.itemUnsigned(itemUsageMinimum, uint32(min))
	return b.itemUnsigned(itemUsageMaximum, uint32(max))
}

func (b *Builder) LogicalRange(min, max int32) *Builder {
	b.itemSigned(itemLogicalMinimum, min)
	return b.itemSigned(itemLogicalMaximum, max)
}

func (b *Builder) PhysicalRange(min, max int32) *Builder {
	b.itemSigned(itemPhysicalMinimum, min)
	return b.itemSigned(itemPhysicalMaximum, max)
}

func (b *Builder) Unit(unit uint32) *Builder {
	return b.itemUnsigned(itemUnit, unit)
}

func (b *Builder) UnitExponent(exponent uint8) *Builder {
	return b.item8(itemUnitExponent, exponent)
}

func (b *Builder) ReportSize(bits uint32) *Builder {
	return b.itemUnsigned(itemReportSize, bits)
}

func (b *Builder) ReportCount(count uint32) *Builder {
	return b.itemUnsigned(itemReportCount, count)
}

func (b *Builder) ReportID(id uint8) *Builder {
	return b.item8(itemReportID, id)
}

func (b *Builder) Push() *Builder {
	return b.item0(itemPush)
}

func (b *Builder) Pop() *Builder {
	return b.item0(itemPop)
}

func (b *Builder) Input(flags hidparse.DataFlags) *Builder {
	return b.itemUnsigned(itemInput, uint32(flags))
}

func (b *Builder) Output(flags hidparse.DataFlags) *Builder {
	return b.itemUnsigned(itemOutput, uint32(flags))
}

func (b *Builder) Feature(flags hidparse.DataFlags) *Builder {
	return b.itemUnsigned(itemFeature, uint32(flags))
}

func (b *Builder) Collection(typ uint8) *Builder {
	return b.item8(itemCollection, typ)
}

func (b *Builder) EndCollection() *Builder {
	return b.item0(itemEndCollection)
}
