package q16

// invSqrtTable holds the Q16 seed estimates of 2^16/sqrt(2^e) for
// e = 0..31, each within one integer step of the ideal, with entry 0 at
// 65536 so 1.0 is represented exactly. InvSqrt interpolates between
// adjacent entries and treats the value past the last entry as 1.
var invSqrtTable = [32]uint32{
	65536, 46341, 32768, 23170, 16384, 11585, 8192, 5793,
	4096, 2896, 2048, 1448, 1024, 724, 512, 362,
	256, 181, 128, 90, 64, 45, 32, 23,
	16, 11, 8, 6, 4, 3, 2, 1,
}
