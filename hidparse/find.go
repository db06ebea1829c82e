package hidparse

import "github.com/hidtools/usbhid/hidusage"

// FindItem scans the item table for the first item of the given type
// matching usage. reportID 0 matches any ID, usage 0 matches any
// usage. Pass the previously found item as after to continue the scan
// behind it; pass nil to start from the beginning. Returns nil when
// nothing matches, which is a normal outcome.
func (p *Parser) FindItem(reportID uint8, typ ReportType, usage hidusage.Usage, after *Item) *Item {
	start := 0
	if after != nil {
		for i := range p.items {
			if &p.items[i] == after {
				start = i + 1
				break
			}
		}
	}
	for i := start; i < len(p.items); i++ {
		item := &p.items[i]
		if item.Type != typ {
			continue
		}
		if reportID != 0 && item.ReportID != reportID {
			continue
		}
		if usage != 0 && item.Usage != usage {
			continue
		}
		return item
	}
	return nil
}

// ReportLength returns the byte length of the report with the given ID
// and type, including the report-ID prefix byte when the descriptor
// uses report IDs. Returns 0 for an ID the descriptor never declared
// or a report kind with no fields.
func (p *Parser) ReportLength(reportID uint8, typ ReportType) int {
	bank := p.bank(reportID)
	if bank == nil {
		return 0
	}
	length := (int(bank.bits[typ]) + 7) / 8
	if length > 0 && p.hasReportIDs {
		length++
	}
	return length
}
