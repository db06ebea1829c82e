package hidparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidtools/usbhid/hiddesc"
	"github.com/hidtools/usbhid/hidparse"
	"github.com/hidtools/usbhid/hidusage"
)

func TestUsageLifetime(t *testing.T) {
	desc := hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		Usage(hidusage.DesktopX).
		ReportSize(8).
		ReportCount(1).
		Input(hidparse.DataFlagVariable).
		Usage(hidusage.DesktopY).
		ReportSize(8).
		ReportCount(1).
		Input(hidparse.DataFlagVariable).
		Bytes()

	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(desc))
	items := parser.Items()
	require.Len(t, items, 2)

	assert.Equal(t, hidusage.New(hidusage.PageGenericDesktop, hidusage.DesktopX), items[0].Usage)
	assert.Equal(t, uint32(0), items[0].BitOffset)
	assert.Equal(t, hidusage.New(hidusage.PageGenericDesktop, hidusage.DesktopY), items[1].Usage)
	assert.Equal(t, uint32(8), items[1].BitOffset)
	assert.Equal(t, uint8(0), items[0].ReportID)
	assert.Equal(t, uint8(0), items[1].ReportID)
}

// bootMouse builds the classic three-button boot mouse descriptor.
func bootMouse() []byte {
	return hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		Usage(hidusage.DesktopMouse).
		Collection(hiddesc.CollectionApplication).
		Usage(hidusage.DesktopPointer).
		Collection(hiddesc.CollectionPhysical).
		UsagePage(hidusage.PageButton).
		UsageRange(1, 3).
		LogicalRange(0, 1).
		ReportCount(3).
		ReportSize(1).
		Input(hidparse.DataFlagVariable).
		ReportCount(1).
		ReportSize(5).
		Input(hidparse.DataFlagConstant).
		UsagePage(hidusage.PageGenericDesktop).
		Usage(hidusage.DesktopX).
		Usage(hidusage.DesktopY).
		LogicalRange(-127, 127).
		ReportSize(8).
		ReportCount(2).
		Input(hidparse.DataFlagVariable | hidparse.DataFlagRelative).
		EndCollection().
		EndCollection().
		Bytes()
}

func TestBootMouseDescriptor(t *testing.T) {
	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(bootMouse()))
	items := parser.Items()
	require.Len(t, items, 6)

	for i := 0; i < 3; i++ {
		button := items[i]
		assert.Equal(t, hidusage.New(hidusage.PageButton, uint16(i+1)), button.Usage)
		assert.Equal(t, uint32(i), button.BitOffset)
		assert.Equal(t, uint8(1), button.BitSize)
		assert.Zero(t, button.SignBit, "1-bit fields carry no sign mask")
	}

	pad := items[3]
	assert.True(t, pad.Flags.IsConstant())
	assert.Equal(t, uint32(3), pad.BitOffset)
	assert.Equal(t, uint8(5), pad.BitSize)

	x, y := items[4], items[5]
	assert.Equal(t, hidusage.New(hidusage.PageGenericDesktop, hidusage.DesktopX), x.Usage)
	assert.Equal(t, hidusage.New(hidusage.PageGenericDesktop, hidusage.DesktopY), y.Usage)
	assert.Equal(t, uint32(8), x.BitOffset)
	assert.Equal(t, uint32(16), y.BitOffset)
	assert.Equal(t, int32(-127), x.Logical.Minimum)
	assert.Equal(t, int32(127), x.Logical.Maximum)
	assert.Equal(t, uint32(1)<<7, x.SignBit)
	assert.True(t, x.Flags.IsRelative())

	assert.Equal(t, 3, parser.ReportLength(0, hidparse.ReportTypeInput))
	assert.Equal(t, 0, parser.ReportLength(0, hidparse.ReportTypeOutput))
	assert.False(t, parser.HasReportIDs())
}

func TestCollectionPaths(t *testing.T) {
	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(bootMouse()))
	items := parser.Items()

	physical := parser.CollectionPath(items[0].Collection)
	require.NotNil(t, physical)
	assert.Equal(t, hiddesc.CollectionPhysical, physical.Type)
	assert.Equal(t, hidusage.New(hidusage.PageGenericDesktop, hidusage.DesktopPointer), physical.Usage)

	application := parser.CollectionPath(physical.Parent)
	require.NotNil(t, application)
	assert.Equal(t, hiddesc.CollectionApplication, application.Type)
	assert.Equal(t, hidusage.New(hidusage.PageGenericDesktop, hidusage.DesktopMouse), application.Usage)
	assert.Nil(t, parser.CollectionPath(application.Parent))

	// All items of the physical collection share the same node.
	for _, item := range items {
		assert.Equal(t, items[0].Collection, item.Collection)
	}
}

func TestReportIDMultiplexing(t *testing.T) {
	desc := hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		Usage(hidusage.DesktopX).
		ReportID(1).
		ReportSize(8).
		ReportCount(1).
		Input(hidparse.DataFlagVariable).
		Usage(hidusage.DesktopY).
		ReportID(2).
		Input(hidparse.DataFlagVariable).
		Bytes()

	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(desc))
	items := parser.Items()
	require.Len(t, items, 2)

	assert.Equal(t, uint8(1), items[0].ReportID)
	assert.Equal(t, uint8(2), items[1].ReportID)
	assert.Equal(t, uint32(0), items[0].BitOffset, "each report ID banks its own offsets")
	assert.Equal(t, uint32(0), items[1].BitOffset)

	assert.True(t, parser.HasReportIDs())
	assert.Equal(t, 2, parser.ReportLength(1, hidparse.ReportTypeInput))
	assert.Equal(t, 2, parser.ReportLength(2, hidparse.ReportTypeInput))
	assert.Equal(t, 0, parser.ReportLength(3, hidparse.ReportTypeInput), "undeclared ID has no bank")
}

func TestExtendedUsagePage(t *testing.T) {
	desc := hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		Usage32(hidusage.PageConsumer, hidusage.ConsumerVolumeIncrement).
		ReportSize(8).
		ReportCount(1).
		Input(hidparse.DataFlagVariable).
		Bytes()

	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(desc))
	items := parser.Items()
	require.Len(t, items, 1)
	assert.Equal(t, hidusage.New(hidusage.PageConsumer, hidusage.ConsumerVolumeIncrement), items[0].Usage)
}

func TestPushPopState(t *testing.T) {
	desc := hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		LogicalRange(0, 1).
		Push().
		UsagePage(hidusage.PageButton).
		LogicalRange(0, 100).
		Pop().
		Usage(hidusage.DesktopX).
		ReportSize(8).
		ReportCount(1).
		Input(hidparse.DataFlagVariable).
		Bytes()

	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(desc))
	items := parser.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint16(hidusage.PageGenericDesktop), items[0].Usage.Page())
	assert.Equal(t, int32(1), items[0].Logical.Maximum, "pop must restore the pushed snapshot")
}

func TestSignBitAssignment(t *testing.T) {
	desc := hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		ReportCount(1).
		ReportSize(1).
		Input(hidparse.DataFlagVariable).
		ReportSize(8).
		Input(hidparse.DataFlagVariable).
		ReportSize(32).
		Input(hidparse.DataFlagVariable).
		Bytes()

	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(desc))
	items := parser.Items()
	require.Len(t, items, 3)
	assert.Zero(t, items[0].SignBit)
	assert.Equal(t, uint32(1)<<7, items[1].SignBit)
	assert.Zero(t, items[2].SignBit)
}

func TestLongItemSkipped(t *testing.T) {
	long := []byte{0xFE, 0x03, 0x42, 0xAA, 0xBB, 0xCC}
	desc := append(long, hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		Usage(hidusage.DesktopX).
		ReportSize(8).
		ReportCount(1).
		Input(hidparse.DataFlagVariable).
		Bytes()...)

	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(desc))
	assert.Len(t, parser.Items(), 1)
}

func TestMalformedDescriptors(t *testing.T) {
	manyUsages := hiddesc.NewBuilder().UsagePage(hidusage.PageButton)
	for i := 0; i < 65; i++ {
		manyUsages.Usage(uint16(i + 1))
	}
	deepCollections := hiddesc.NewBuilder().UsagePage(hidusage.PageGenericDesktop)
	for i := 0; i < 17; i++ {
		deepCollections.Collection(hiddesc.CollectionLogical)
	}
	manyPushes := hiddesc.NewBuilder()
	for i := 0; i < 16; i++ {
		manyPushes.Push()
	}

	tests := []struct {
		name string
		desc []byte
		want error
	}{
		{"pop without push", hiddesc.NewBuilder().Pop().Bytes(), hidparse.ErrStackUnderflow},
		{"end collection at root", hiddesc.NewBuilder().EndCollection().Bytes(), hidparse.ErrCollectionUnderflow},
		{"truncated payload", []byte{0x06, 0x01}, hidparse.ErrUnexpectedEnd},
		{"truncated long item", []byte{0xFE, 0x10, 0x42}, hidparse.ErrUnexpectedEnd},
		{"unknown tag", []byte{0xF0}, hidparse.ErrUnknownItem},
		{"usage queue overflow", manyUsages.Bytes(), hidparse.ErrUsageOverflow},
		{"collection overflow", deepCollections.Bytes(), hidparse.ErrCollectionOverflow},
		{"state stack overflow", manyPushes.Bytes(), hidparse.ErrStackOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := hidparse.NewParser()
			require.ErrorIs(t, parser.Parse(tt.desc), tt.want)
		})
	}
}

func TestReportIDLimit(t *testing.T) {
	desc := hiddesc.NewBuilder().
		ReportID(1).
		ReportID(2).
		ReportID(3).
		Bytes()
	parser := hidparse.NewParser(hidparse.WithMaxReportIDs(3))
	require.ErrorIs(t, parser.Parse(desc), hidparse.ErrTooManyReportIDs)

	// Revisiting a known ID allocates nothing.
	desc = hiddesc.NewBuilder().
		ReportID(1).
		ReportID(2).
		ReportID(1).
		Bytes()
	require.NoError(t, parser.Parse(desc))
}

func TestItemCeiling(t *testing.T) {
	desc := hiddesc.NewBuilder().
		UsagePage(hidusage.PageButton).
		ReportSize(1).
		ReportCount(8).
		Input(hidparse.DataFlagVariable).
		Bytes()
	parser := hidparse.NewParser(hidparse.WithMaxItems(4))
	require.ErrorIs(t, parser.Parse(desc), hidparse.ErrTooManyItems)
}

func TestUnterminatedScopesRecover(t *testing.T) {
	unterminated := hiddesc.NewBuilder().
		UsagePage(hidusage.PageGenericDesktop).
		Usage(hidusage.DesktopMouse).
		Collection(hiddesc.CollectionApplication).
		Push().
		Usage(hidusage.DesktopX).
		ReportSize(8).
		ReportCount(1).
		Input(hidparse.DataFlagVariable).
		Bytes()

	parser := hidparse.NewParser()
	require.NoError(t, parser.Parse(unterminated), "trailing open scopes are tolerated")
	require.Len(t, parser.Items(), 1)

	// The next parse must not inherit any stack or bank state.
	require.NoError(t, parser.Parse(bootMouse()))
	items := parser.Items()
	require.Len(t, items, 6)
	assert.Equal(t, uint32(0), items[0].BitOffset)
	assert.Equal(t, 3, parser.ReportLength(0, hidparse.ReportTypeInput))
	node := parser.CollectionPath(items[0].Collection)
	require.NotNil(t, node)
	assert.Equal(t, hiddesc.CollectionPhysical, node.Type)
}
