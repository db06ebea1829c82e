package hidusage

import "fmt"

// Usage is a combination of a usage page and a usage ID.
type Usage uint32

// New creates a Usage from a page and an ID.
func New(page, id uint16) Usage {
	return Usage(uint32(page)<<16 | uint32(id))
}

func (u Usage) Page() uint16 {
	return uint16(u >> 16)
}

func (u Usage) ID() uint16 {
	return uint16(u)
}

func (u Usage) String() string {
	return fmt.Sprintf("0x%02x/0x%02x", u.Page(), u.ID())
}
