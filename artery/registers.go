package artery

const (
	RegDeviceID    = 0xE0042000
	RegFlashSize   = 0x1FFFF7E0
	RegUniqueID    = 0x1FFFF7E8
	RegMaskVersion = 0x1FFFF7F1

	FlashBase = 0x08000000
)

const (
	/* Values the flash size register holds when it was never programmed */
	flashSizeBlank  = 0xFFFF
	flashSizeAbsent = 0
)
