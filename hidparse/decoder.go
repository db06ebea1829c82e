package hidparse

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hidtools/usbhid/hidusage"
)

type itemHandler func(p *Parser, payload []byte) error

var itemHandlers = map[Tag]itemHandler{
	tagInput:         handleInput,
	tagOutput:        handleOutput,
	tagFeature:       handleFeature,
	tagCollection:    handleCollection,
	tagEndCollection: handleEndCollection,

	tagUsagePage:       handleUsagePage,
	tagLogicalMinimum:  handleLogicalMinimum,
	tagLogicalMaximum:  handleLogicalMaximum,
	tagPhysicalMinimum: handlePhysicalMinimum,
	tagPhysicalMaximum: handlePhysicalMaximum,
	tagUnitExponent:    handleUnitExponent,
	tagUnit:            handleUnit,
	tagReportSize:      handleReportSize,
	tagReportID:        handleReportID,
	tagReportCount:     handleReportCount,
	tagPush:            handlePush,
	tagPop:             handlePop,

	tagUsage:        handleUsage,
	tagUsageMinimum: handleUsageMinimum,
	tagUsageMaximum: handleUsageMaximum,
	tagString:       handleString,
}

// Parse decodes a report descriptor into the item table. The parser is
// reset first, so a failed parse can be retried with a clean
// descriptor on the same instance. Items returned by earlier parses
// are invalidated.
func (p *Parser) Parse(data []byte) error {
	p.reset()
	for i := 0; i < len(data); {
		prefix := data[i]
		if Tag(prefix)&tagMask == tagLong {
			skip, err := longItemLength(data[i:])
			if err != nil {
				return err
			}
			i += skip
			continue
		}
		size := payloadSize(prefix)
		if i+1+size > len(data) {
			return fmt.Errorf("%w: item 0x%02x at offset %d needs %d payload bytes", ErrUnexpectedEnd, prefix, i, size)
		}
		tag := Tag(prefix) & tagMask
		handler := itemHandlers[tag]
		if handler == nil {
			return fmt.Errorf("%w: 0x%02x at offset %d", ErrUnknownItem, prefix, i)
		}
		if err := handler(p, data[i+1:i+1+size]); err != nil {
			return fmt.Errorf("item 0x%02x at offset %d: %w", prefix, i, err)
		}
		i += 1 + size
	}
	p.log.Debug("parsed report descriptor",
		zap.Int("bytes", len(data)),
		zap.Int("items", len(p.items)),
		zap.Int("collections", len(p.collections)),
		zap.Bool("reportIDs", p.hasReportIDs))
	return nil
}

// longItemLength returns the full length of a long item: prefix byte,
// data-length byte, long-tag byte, then the declared data.
func longItemLength(data []byte) (int, error) {
	if len(data) < 3 {
		return 0, fmt.Errorf("%w: truncated long item header", ErrUnexpectedEnd)
	}
	total := 3 + int(data[1])
	if total > len(data) {
		return 0, fmt.Errorf("%w: long item data runs past descriptor end", ErrUnexpectedEnd)
	}
	return total, nil
}

// localUsage builds a usage from a local item payload. A 4-byte
// payload carries an extended usage page in its upper 16 bits.
func (p *Parser) localUsage(payload []byte) hidusage.Usage {
	value := unsignedValue(payload)
	if len(payload) == 4 {
		return hidusage.New(uint16(value>>16), uint16(value))
	}
	return hidusage.New(p.top().usagePage, uint16(value))
}

// addMainItem materializes one field per ReportCount repetition from
// the active state snapshot and drains the pending usages into them.
func (p *Parser) addMainItem(typ ReportType, flags DataFlags) error {
	s := p.top()
	bank := p.bank(s.reportID)
	for n := uint32(0); n < s.reportCount; n++ {
		item, err := p.allocateItem()
		if err != nil {
			return err
		}
		item.BitOffset = bank.bits[typ]
		bank.bits[typ] += s.reportSize
		item.BitSize = uint8(s.reportSize)
		item.ReportID = s.reportID
		item.Type = typ
		item.Flags = flags
		item.Logical = s.logical
		item.Physical = s.physical
		item.Unit = s.unit
		if usage, ok := p.nextUsage(); ok {
			item.Usage = usage
		} else {
			item.Usage = hidusage.New(s.usagePage, 0)
		}
		if s.reportSize > 1 && s.reportSize < 32 {
			item.SignBit = 1 << (s.reportSize - 1)
		}
		item.Collection = -1
		if len(p.pathStack) > 0 {
			item.Collection = p.pathStack[len(p.pathStack)-1]
		}
	}
	p.clearLocals()
	return nil
}

func handleInput(p *Parser, payload []byte) error {
	return p.addMainItem(ReportTypeInput, DataFlags(unsignedValue(payload)))
}

func handleOutput(p *Parser, payload []byte) error {
	return p.addMainItem(ReportTypeOutput, DataFlags(unsignedValue(payload)))
}

func handleFeature(p *Parser, payload []byte) error {
	return p.addMainItem(ReportTypeFeature, DataFlags(unsignedValue(payload)))
}

func handleCollection(p *Parser, payload []byte) error {
	if len(p.pathStack) == maxCollectionDepth {
		return ErrCollectionOverflow
	}
	node := CollectionPath{
		Type:   uint8(unsignedValue(payload)),
		Parent: -1,
	}
	if usage, ok := p.nextUsage(); ok {
		node.Usage = usage
	} else {
		node.Usage = hidusage.New(p.top().usagePage, 0)
	}
	if len(p.pathStack) > 0 {
		node.Parent = p.pathStack[len(p.pathStack)-1]
	}
	p.collections = append(p.collections, node)
	p.pathStack = p.pathBuf[:len(p.pathStack)+1]
	p.pathStack[len(p.pathStack)-1] = int32(len(p.collections) - 1)
	p.clearLocals()
	return nil
}

func handleEndCollection(p *Parser, payload []byte) error {
	if len(p.pathStack) == 0 {
		return ErrCollectionUnderflow
	}
	p.pathStack = p.pathStack[:len(p.pathStack)-1]
	p.clearLocals()
	return nil
}

func handleUsagePage(p *Parser, payload []byte) error {
	p.top().usagePage = uint16(unsignedValue(payload))
	return nil
}

func handleLogicalMinimum(p *Parser, payload []byte) error {
	p.top().logical.Minimum = signedValue(payload)
	return nil
}

func handleLogicalMaximum(p *Parser, payload []byte) error {
	p.top().logical.Maximum = signedValue(payload)
	return nil
}

func handlePhysicalMinimum(p *Parser, payload []byte) error {
	p.top().physical.Minimum = signedValue(payload)
	return nil
}

func handlePhysicalMaximum(p *Parser, payload []byte) error {
	p.top().physical.Maximum = signedValue(payload)
	return nil
}

func handleUnitExponent(p *Parser, payload []byte) error {
	p.top().unit.Exponent = uint8(unsignedValue(payload))
	return nil
}

func handleUnit(p *Parser, payload []byte) error {
	p.top().unit.Type = unsignedValue(payload)
	return nil
}

func handleReportSize(p *Parser, payload []byte) error {
	p.top().reportSize = unsignedValue(payload)
	return nil
}

func handleReportID(p *Parser, payload []byte) error {
	return p.setReportID(uint8(unsignedValue(payload)))
}

func handleReportCount(p *Parser, payload []byte) error {
	p.top().reportCount = unsignedValue(payload)
	return nil
}

func handlePush(p *Parser, payload []byte) error {
	return p.pushState()
}

func handlePop(p *Parser, payload []byte) error {
	return p.popState()
}

func handleUsage(p *Parser, payload []byte) error {
	return p.queueUsage(p.localUsage(payload))
}

func handleUsageMinimum(p *Parser, payload []byte) error {
	p.usageMin = p.localUsage(payload)
	return nil
}

func handleUsageMaximum(p *Parser, payload []byte) error {
	p.usageMax = p.localUsage(payload)
	return nil
}

// String items name fields for display purposes only.
func handleString(p *Parser, payload []byte) error {
	return nil
}
