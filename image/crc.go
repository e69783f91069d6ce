package image

import (
	"github.com/snksoft/crc"
)

var crcTable *crc.Table

/* Same CRC the debug server computes over target memory: CRC-32 with the
 * 0x04C11DB7 polynomial, MSB first, no final xor */
func init() {
	crcTable = crc.NewTable(&crc.Parameters{
		Width:      32,
		Polynomial: 0x04C11DB7,
		Init:       0xFFFFFFFF,
		ReflectIn:  false,
		ReflectOut: false,
		FinalXor:   0,
	})
}

func Checksum(data []byte) uint32 {
	h := crc.NewHashWithTable(crcTable)
	h.Update(data)
	return h.CRC32()
}
