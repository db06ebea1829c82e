package hidusage

// Usage pages.
const (
	PageUndefined          uint16 = 0x00
	PageGenericDesktop     uint16 = 0x01
	PageSimulation         uint16 = 0x02
	PageVR                 uint16 = 0x03
	PageSport              uint16 = 0x04
	PageGame               uint16 = 0x05
	PageGenericDevice      uint16 = 0x06
	PageKeyboard           uint16 = 0x07
	PageLED                uint16 = 0x08
	PageButton             uint16 = 0x09
	PageOrdinal            uint16 = 0x0A
	PageTelephony          uint16 = 0x0B
	PageConsumer           uint16 = 0x0C
	PageDigitizer          uint16 = 0x0D
	PagePID                uint16 = 0x0F
	PageUnicode            uint16 = 0x10
	PageAlphanumericDisplay uint16 = 0x14
	PageMedicalInstruments uint16 = 0x40
	PageMonitorMin         uint16 = 0x80
	PageMonitorMax         uint16 = 0x83
	PagePowerMin           uint16 = 0x84
	PagePowerMax           uint16 = 0x87
	PageBarCodeScanner     uint16 = 0x8C
	PageScale              uint16 = 0x8D
	PageMagneticStripe     uint16 = 0x8E
	PagePointOfSale        uint16 = 0x8F
	PageCamera             uint16 = 0x90
	PageArcade             uint16 = 0x91
	PageVendorDefinedMin   uint16 = 0xFF00
	PageVendorDefinedMax   uint16 = 0xFFFF
)

// Generic desktop usages.
const (
	DesktopUndefined            uint16 = 0x00
	DesktopPointer              uint16 = 0x01
	DesktopMouse                uint16 = 0x02
	DesktopJoystick             uint16 = 0x04
	DesktopGamePad              uint16 = 0x05
	DesktopKeyboard             uint16 = 0x06
	DesktopKeypad               uint16 = 0x07
	DesktopMultiAxisController  uint16 = 0x08
	DesktopTablet               uint16 = 0x09
	DesktopX                    uint16 = 0x30
	DesktopY                    uint16 = 0x31
	DesktopZ                    uint16 = 0x32
	DesktopRx                   uint16 = 0x33
	DesktopRy                   uint16 = 0x34
	DesktopRz                   uint16 = 0x35
	DesktopSlider               uint16 = 0x36
	DesktopDial                 uint16 = 0x37
	DesktopWheel                uint16 = 0x38
	DesktopHatSwitch            uint16 = 0x39
	DesktopCountedBuffer        uint16 = 0x3A
	DesktopByteCount            uint16 = 0x3B
	DesktopMotionWakeup         uint16 = 0x3C
	DesktopStart                uint16 = 0x3D
	DesktopSelect               uint16 = 0x3E
	DesktopVx                   uint16 = 0x40
	DesktopVy                   uint16 = 0x41
	DesktopVz                   uint16 = 0x42
	DesktopVbrx                 uint16 = 0x43
	DesktopVbry                 uint16 = 0x44
	DesktopVbrz                 uint16 = 0x45
	DesktopVno                  uint16 = 0x46
	DesktopFeatureNotification  uint16 = 0x47
	DesktopResolutionMultiplier uint16 = 0x48
	DesktopSystemControl        uint16 = 0x80
	DesktopSystemPowerDown      uint16 = 0x81
	DesktopSystemSleep          uint16 = 0x82
	DesktopSystemWakeUp         uint16 = 0x83
	DesktopDPadUp               uint16 = 0x90
	DesktopDPadDown             uint16 = 0x91
	DesktopDPadRight            uint16 = 0x92
	DesktopDPadLeft             uint16 = 0x93
)

// Consumer page usages, the ones commonly seen on keyboards and media
// controls.
const (
	ConsumerControl           uint16 = 0x001
	ConsumerPower             uint16 = 0x030
	ConsumerSnapshot          uint16 = 0x065
	ConsumerPlay              uint16 = 0x0B0
	ConsumerPause             uint16 = 0x0B1
	ConsumerRecord            uint16 = 0x0B2
	ConsumerFastForward       uint16 = 0x0B3
	ConsumerRewind            uint16 = 0x0B4
	ConsumerScanNextTrack     uint16 = 0x0B5
	ConsumerScanPreviousTrack uint16 = 0x0B6
	ConsumerStop              uint16 = 0x0B7
	ConsumerEject             uint16 = 0x0B8
	ConsumerPlayPause         uint16 = 0x0CD
	ConsumerVolume            uint16 = 0x0E0
	ConsumerMute              uint16 = 0x0E2
	ConsumerVolumeIncrement   uint16 = 0x0E9
	ConsumerVolumeDecrement   uint16 = 0x0EA
	ConsumerACHome            uint16 = 0x223
	ConsumerACBack            uint16 = 0x224
	ConsumerACForward         uint16 = 0x225
	ConsumerACScrollUp        uint16 = 0x233
	ConsumerACScrollDown      uint16 = 0x234
	ConsumerACPan             uint16 = 0x238
)

// LED page usages.
const (
	LEDNumLock    uint16 = 0x01
	LEDCapsLock   uint16 = 0x02
	LEDScrollLock uint16 = 0x03
	LEDCompose    uint16 = 0x04
	LEDKana       uint16 = 0x05
)
