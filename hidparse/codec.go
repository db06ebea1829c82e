package hidparse

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ReadItem extracts an item's field from a raw report into Item.Value,
// rotating the old value into Item.PreviousValue. When the item
// belongs to a numbered report, the first buffer byte must carry that
// report ID; a different ID is the ErrWrongReport outcome and leaves
// the item untouched. ErrLengthMismatch means the buffer cannot hold
// the item's bit range.
func ReadItem(report []byte, item *Item) error {
	if item.ReportID != 0 {
		if len(report) == 0 || report[0] != item.ReportID {
			return ErrWrongReport
		}
		report = report[1:]
	}
	if bitRangeEnd(item) > len(report) {
		return fmt.Errorf("%w: item needs %d bytes, report has %d", ErrLengthMismatch, bitRangeEnd(item), len(report))
	}
	value := extractBits(report, item.BitOffset, item.BitSize)
	if item.SignBit != 0 && value&item.SignBit != 0 {
		value |= ^(item.SignBit - 1)
	}
	item.PreviousValue = item.Value
	item.Value = value
	return nil
}

// WriteItem deposits Item.Value into a raw report. Bits are ORed into
// place so other fields sharing a byte are preserved. A zero first
// byte of a numbered report is stamped with the item's report ID; a
// different non-zero ID is the ErrWrongReport outcome.
func WriteItem(item *Item, report []byte) error {
	if item.ReportID != 0 {
		if len(report) == 0 {
			return fmt.Errorf("%w: no room for report ID byte", ErrLengthMismatch)
		}
		if report[0] == 0 {
			report[0] = item.ReportID
		} else if report[0] != item.ReportID {
			return ErrWrongReport
		}
		report = report[1:]
	}
	if bitRangeEnd(item) > len(report) {
		return fmt.Errorf("%w: item needs %d bytes, report has %d", ErrLengthMismatch, bitRangeEnd(item), len(report))
	}
	value := item.Value
	if item.BitSize < 32 {
		value &= 1<<item.BitSize - 1
	}
	depositBits(report, item.BitOffset, item.BitSize, value)
	return nil
}

// bitRangeEnd returns the number of report data bytes the item's bit
// range requires.
func bitRangeEnd(item *Item) int {
	return (int(item.BitOffset) + int(item.BitSize) + 7) / 8
}

// extractBits reads size bits starting at a bit offset, LSB-first
// within each byte, bytes in order. Byte-aligned 8/16/32 bit fields
// take the aligned path; everything else scans bit by bit.
func extractBits(data []byte, offset uint32, size uint8) uint32 {
	if offset%8 == 0 {
		index := offset / 8
		switch size {
		case 8:
			return uint32(data[index])
		case 16:
			return uint32(binary.LittleEndian.Uint16(data[index:]))
		case 32:
			return binary.LittleEndian.Uint32(data[index:])
		}
	}
	var value uint32
	for bit := uint32(0); bit < uint32(size); bit++ {
		position := offset + bit
		if data[position/8]&(1<<(position%8)) != 0 {
			value |= 1 << bit
		}
	}
	return value
}

// depositBits is the inverse of extractBits, ORing bits into place.
func depositBits(data []byte, offset uint32, size uint8, value uint32) {
	if offset%8 == 0 {
		index := offset / 8
		switch size {
		case 8:
			data[index] |= uint8(value)
			return
		case 16:
			data[index] |= uint8(value)
			data[index+1] |= uint8(value >> 8)
			return
		case 32:
			data[index] |= uint8(value)
			data[index+1] |= uint8(value >> 8)
			data[index+2] |= uint8(value >> 16)
			data[index+3] |= uint8(value >> 24)
			return
		}
	}
	for bit := uint32(0); bit < uint32(size); bit++ {
		if value&(1<<bit) != 0 {
			position := offset + bit
			data[position/8] |= 1 << (position % 8)
		}
	}
}

// ReadReport reads every matching item's field out of a raw report.
// Items belonging to other report IDs are left untouched. Length
// mismatches are collected and returned without stopping the pass.
func (p *Parser) ReadReport(report []byte) error {
	var errs error
	for i := range p.items {
		err := ReadItem(report, &p.items[i])
		if errors.Is(err, ErrWrongReport) {
			continue
		}
		errs = multierr.Append(errs, err)
	}
	return errs
}

// WriteReport deposits every matching item's value into a raw report
// buffer. Items belonging to other report IDs are skipped.
func (p *Parser) WriteReport(report []byte) error {
	var errs error
	for i := range p.items {
		err := WriteItem(&p.items[i], report)
		if errors.Is(err, ErrWrongReport) {
			continue
		}
		errs = multierr.Append(errs, err)
	}
	return errs
}
