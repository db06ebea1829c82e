package hidparse

import "github.com/hidtools/usbhid/hidusage"

// ReportType distinguishes the three report kinds a field can belong
// to.
type ReportType uint8

const (
	ReportTypeInput ReportType = iota
	ReportTypeOutput
	ReportTypeFeature

	reportTypeCount
)

func (t ReportType) String() string {
	switch t {
	case ReportTypeInput:
		return "input"
	case ReportTypeOutput:
		return "output"
	case ReportTypeFeature:
		return "feature"
	}
	return "unknown"
}

// DataFlags is the payload of an Input, Output or Feature item.
type DataFlags uint32

const (
	DataFlagConstant      DataFlags = 1 << iota // 0 = Data, 1 = Constant
	DataFlagVariable                            // 0 = Array, 1 = Variable
	DataFlagRelative                            // 0 = Absolute, 1 = Relative
	DataFlagWrap                                // 0 = No wrap, 1 = Wrap
	DataFlagNonLinear                           // 0 = Linear, 1 = Non-linear
	DataFlagNoPreferred                         // 0 = Preferred state, 1 = No preferred
	DataFlagNullState                           // 0 = No null position, 1 = Null state
	DataFlagVolatile                            // 0 = Non-volatile, 1 = Volatile
	DataFlagBufferedBytes                       // 0 = Bit field, 1 = Buffered bytes
)

func (d DataFlags) IsConstant() bool {
	return d&DataFlagConstant != 0
}

func (d DataFlags) IsVariable() bool {
	return d&DataFlagVariable != 0
}

func (d DataFlags) IsArray() bool {
	return !d.IsVariable()
}

func (d DataFlags) IsRelative() bool {
	return d&DataFlagRelative != 0
}

func (d DataFlags) IsWrap() bool {
	return d&DataFlagWrap != 0
}

func (d DataFlags) IsNonLinear() bool {
	return d&DataFlagNonLinear != 0
}

func (d DataFlags) IsNoPreferred() bool {
	return d&DataFlagNoPreferred != 0
}

func (d DataFlags) IsNullState() bool {
	return d&DataFlagNullState != 0
}

func (d DataFlags) IsVolatile() bool {
	return d&DataFlagVolatile != 0
}

func (d DataFlags) IsBufferedBytes() bool {
	return d&DataFlagBufferedBytes != 0
}

// Limits is a minimum/maximum pair.
type Limits struct {
	Minimum int32
	Maximum int32
}

// Unit stores the measurement unit of a field.
type Unit struct {
	Type     uint32
	Exponent uint8
}

// Item is one decoded field occurrence. BitOffset counts from the
// start of the report data, excluding the report-ID prefix byte.
// Value and PreviousValue are updated in place by ReadItem; Collection
// indexes the parser's per-parse collection arena (-1 when the field
// sits outside any collection) and is invalidated by the next Parse.
type Item struct {
	BitOffset  uint32
	BitSize    uint8
	ReportID   uint8
	Type       ReportType
	Flags      DataFlags
	Usage      hidusage.Usage
	Logical    Limits
	Physical   Limits
	Unit       Unit
	Collection int32

	// SignBit masks the bit that triggers sign extension on read.
	// Zero for 1-bit and 32-bit fields.
	SignBit uint32

	Value         uint32
	PreviousValue uint32
}

// SignedValue returns the current value as a signed number. ReadItem
// already sign-extended it, so this is a plain reinterpretation.
func (i *Item) SignedValue() int32 {
	return int32(i.Value)
}

// CollectionPath is one node of the collection tree built during a
// parse. Parent indexes the same arena, -1 at the root.
type CollectionPath struct {
	Type   uint8
	Usage  hidusage.Usage
	Parent int32
}
