package solana

import "bytes"

// Shortvec encoding used throughout the transaction wire format.
// Values occupy 1-3 bytes, 7 bits each, LSB first, high bit marks continuation.
func WriteCompactU16(out *bytes.Buffer, value int) {
	for {
		b := byte(value & 0x7f)
		value >>= 7
		if value == 0 {
			out.WriteByte(b)
			return
		}
		out.WriteByte(b | 0x80)
	}
}

func ReadCompactU16(reader *bytes.Reader) (value int, err error) {
	var shift uint
	for i := 0; i < 3; i++ {
		var b byte
		b, err = reader.ReadByte()
		if err != nil {
			return 0, err
		}
		value |= int(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, nil
		}
		shift += 7
	}
	return 0, ErrCompactU16TooLong
}
