package fx

// Sine lookup covers a full circle in 256 steps: index 0 = 0 degrees,
// 64 = 90, 128 = 180, 192 = 270. Values are 16.16 in [-One, One],
// sinQuarter[i] = round(sin(i * 2*pi / 256) * 65536) for the first
// quadrant; the remaining three quadrants are mirrored at startup.
var sinQuarter = [65]F32{
	0x00000, 0x00648, 0x00C90, 0x012D5, 0x01918, 0x01F56, 0x02590, 0x02BC4,
	0x031F1, 0x03817, 0x03E34, 0x04447, 0x04A50, 0x0504D, 0x0563E, 0x05C22,
	0x061F8, 0x067BE, 0x06D74, 0x0731A, 0x078AD, 0x07E2F, 0x0839C, 0x088F6,
	0x08E3A, 0x09368, 0x09880, 0x09D80, 0x0A268, 0x0A736, 0x0ABEB, 0x0B086,
	0x0B505, 0x0B968, 0x0BDAF, 0x0C1D8, 0x0C5E4, 0x0C9D1, 0x0CD9F, 0x0D14D,
	0x0D4DB, 0x0D848, 0x0DB94, 0x0DEBE, 0x0E1C6, 0x0E4AA, 0x0E76C, 0x0EA0A,
	0x0EC83, 0x0EED9, 0x0F109, 0x0F314, 0x0F4FA, 0x0F6BA, 0x0F854, 0x0F9C8,
	0x0FB15, 0x0FC3B, 0x0FD3B, 0x0FE13, 0x0FEC4, 0x0FF4E, 0x0FFB1, 0x0FFEC,
	0x10000,
}

var sinLUT [256]F32

func init() {
	for i := 0; i <= 64; i++ {
		sinLUT[i] = sinQuarter[i]
	}
	for i := 65; i < 128; i++ {
		sinLUT[i] = sinQuarter[128-i]
	}
	for i := 128; i < 256; i++ {
		sinLUT[i] = -sinLUT[i-128]
	}
}

// Sin returns sin(angle) where a full circle is 256 angle units. Any
// integer angle is accepted; only the low 8 bits are used.
func Sin(angle int) F32 { return sinLUT[angle&0xFF] }

// Cos returns cos(angle) in the same 256-unit circle.
func Cos(angle int) F32 { return sinLUT[(angle+64)&0xFF] }
