package section

const (
	// Bit masks of the options field
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicHeatmapOpt identifies a saved heatmap (bits 4-15).
	MagicHeatmapOpt = 0x4D50

	// VersionV1 is the only envelope version currently defined.
	VersionV1 = 1
)

// offsets and sizes of the fixed header
const (
	HeaderSize = 24 // fixed header size in bytes

	optionsOffset     = 0
	versionOffset     = 2
	kindOffset        = 3
	compressionOffset = 4
	payloadSizeOffset = 8
	checksumOffset    = 16
)
