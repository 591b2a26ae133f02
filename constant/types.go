package constant

const (
	MinChunkSize = 16
	MaxChunkSize = 1 << 16
)

const (
	GenOff    = uint64(32)
	IndexMask = uint64(0xFFFFFFFF)
)
