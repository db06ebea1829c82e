package hidparse

import (
	"go.uber.org/zap"

	"github.com/hidtools/usbhid/hidusage"
)

// Fixed decode-time bounds. Descriptors are authored by device
// firmware and stay tiny; anything blowing these limits is malformed.
const (
	maxStateDepth      = 16
	maxCollectionDepth = 16
	maxQueuedUsages    = 64

	defaultMaxItems     = 0x400
	defaultMaxReportIDs = 16

	itemTableBaseline = 16
)

type ParserOption func(o *parserOptions)

type parserOptions struct {
	log          *zap.Logger
	maxItems     int
	maxReportIDs int
}

// WithLogger attaches a logger for decode-time debug traces.
func WithLogger(log *zap.Logger) ParserOption {
	return func(o *parserOptions) {
		o.log = log
	}
}

// WithMaxItems overrides the item table ceiling.
func WithMaxItems(n int) ParserOption {
	return func(o *parserOptions) {
		o.maxItems = n
	}
}

// WithMaxReportIDs overrides the maximum number of distinct report IDs
// a descriptor may declare.
func WithMaxReportIDs(n int) ParserOption {
	return func(o *parserOptions) {
		o.maxReportIDs = n
	}
}

// state is the snapshot of global item properties that apply to
// subsequently declared fields. Push duplicates the top snapshot, Pop
// discards it.
type state struct {
	usagePage   uint16
	logical     Limits
	physical    Limits
	unit        Unit
	reportSize  uint32
	reportCount uint32
	reportID    uint8
}

// reportSizes tracks the running bit length of each report kind for
// one report ID.
type reportSizes struct {
	reportID uint8
	bits     [reportTypeCount]uint32
}

// Parser decodes a HID report descriptor into a flat item table and
// packs/unpacks report buffers against it. A Parser is not safe for
// concurrent use, and every Parse invalidates the items and collection
// paths returned by the previous one.
type Parser struct {
	log     *zap.Logger
	options parserOptions

	items []Item

	states    []state
	stateBuf  [maxStateDepth]state
	pathStack []int32
	pathBuf   [maxCollectionDepth]int32

	collections []CollectionPath

	usages    []hidusage.Usage
	usageBuf  [maxQueuedUsages]hidusage.Usage
	usageHead int
	usageMin  hidusage.Usage
	usageMax  hidusage.Usage

	sizes []reportSizes

	hasReportIDs bool
}

// NewParser creates an empty parser. Call Parse to populate it.
func NewParser(opts ...ParserOption) *Parser {
	options := parserOptions{
		log:          zap.NewNop(),
		maxItems:     defaultMaxItems,
		maxReportIDs: defaultMaxReportIDs,
	}
	for _, opt := range opts {
		opt(&options)
	}
	p := &Parser{
		log:     options.log,
		options: options,
		items:   make([]Item, 0, itemTableBaseline),
		sizes:   make([]reportSizes, 0, options.maxReportIDs),
	}
	p.reset()
	return p
}

// reset reinitializes every transient structure before a parse. The
// item table keeps its backing storage but drops its contents.
func (p *Parser) reset() {
	p.items = p.items[:0]
	p.states = p.stateBuf[:1]
	p.states[0] = state{}
	p.pathStack = p.pathBuf[:0]
	p.collections = p.collections[:0]
	p.sizes = p.sizes[:1]
	p.sizes[0] = reportSizes{}
	p.hasReportIDs = false
	p.clearLocals()
}

// top returns the active state snapshot.
func (p *Parser) top() *state {
	return &p.states[len(p.states)-1]
}

func (p *Parser) pushState() error {
	if len(p.states) == maxStateDepth {
		return ErrStackOverflow
	}
	p.states = p.stateBuf[:len(p.states)+1]
	p.states[len(p.states)-1] = p.states[len(p.states)-2]
	return nil
}

func (p *Parser) popState() error {
	if len(p.states) == 1 {
		return ErrStackUnderflow
	}
	p.states = p.states[:len(p.states)-1]
	return nil
}

// clearLocals drops the usage queue and range. Runs unconditionally
// after every Main item and Collection.
func (p *Parser) clearLocals() {
	p.usages = p.usageBuf[:0]
	p.usageHead = 0
	p.usageMin = 0
	p.usageMax = 0
}

func (p *Parser) queueUsage(u hidusage.Usage) error {
	if len(p.usages) == maxQueuedUsages {
		return ErrUsageOverflow
	}
	p.usages = p.usageBuf[:len(p.usages)+1]
	p.usages[len(p.usages)-1] = u
	return nil
}

// nextUsage consumes one usage, queue first, then the declared range.
func (p *Parser) nextUsage() (hidusage.Usage, bool) {
	if p.usageHead < len(p.usages) {
		u := p.usages[p.usageHead]
		p.usageHead++
		return u, true
	}
	if p.usageMin != 0 && p.usageMin <= p.usageMax {
		u := p.usageMin
		p.usageMin++
		return u, true
	}
	return 0, false
}

// setReportID switches the active report-size bank, allocating one on
// the first occurrence of an ID.
func (p *Parser) setReportID(id uint8) error {
	p.hasReportIDs = true
	p.top().reportID = id
	if p.bank(id) != nil {
		return nil
	}
	if len(p.sizes) == p.options.maxReportIDs {
		return ErrTooManyReportIDs
	}
	p.sizes = append(p.sizes, reportSizes{reportID: id})
	return nil
}

// bank returns the size counters for the given report ID, or nil.
func (p *Parser) bank(id uint8) *reportSizes {
	for i := range p.sizes {
		if p.sizes[i].reportID == id {
			return &p.sizes[i]
		}
	}
	return nil
}

// allocateItem appends a zeroed slot to the item table, doubling the
// backing array as needed up to the configured ceiling.
func (p *Parser) allocateItem() (*Item, error) {
	if len(p.items) >= p.options.maxItems {
		return nil, ErrTooManyItems
	}
	if len(p.items) == cap(p.items) {
		grown := make([]Item, len(p.items), cap(p.items)*2)
		copy(grown, p.items)
		p.items = grown
	}
	p.items = p.items[:len(p.items)+1]
	p.items[len(p.items)-1] = Item{}
	return &p.items[len(p.items)-1], nil
}

// Items exposes the decoded item table. The slice and the items it
// holds stay valid until the next Parse.
func (p *Parser) Items() []Item {
	return p.items
}

// CollectionPath resolves an Item.Collection index. Returns nil for
// -1 or an index from a previous parse that is no longer populated.
func (p *Parser) CollectionPath(index int32) *CollectionPath {
	if index < 0 || int(index) >= len(p.collections) {
		return nil
	}
	return &p.collections[index]
}

// HasReportIDs reports whether the descriptor declared any report ID,
// meaning every report buffer carries a one-byte ID prefix.
func (p *Parser) HasReportIDs() bool {
	return p.hasReportIDs
}
