// Package format houses low-level decoders for the self-describing buffers the
// NT registry enumeration services hand back. The goal is to keep the parsing
// focused, allocation-free where possible, and independent from the public API
// so higher-level packages can orchestrate the data in a more ergonomic form.
package format

const (
	// KeyBasicInfoSize is the fixed portion of a KEY_BASIC_INFORMATION
	// buffer. Layout (little-endian):
	//   0x00  LastWriteTime  u64 (FILETIME)
	//   0x08  TitleIndex     u32
	//   0x0C  NameLength     u32 (bytes of UTF-16LE name data that follow)
	KeyBasicInfoSize = 16

	// ValueFullInfoSize is the fixed portion of a KEY_VALUE_FULL_INFORMATION
	// buffer. Layout (little-endian):
	//   0x00  TitleIndex  u32
	//   0x04  Type        u32
	//   0x08  DataOffset  u32 (absolute, from the start of the buffer)
	//   0x0C  DataLength  u32
	//   0x10  NameLength  u32 (bytes of UTF-16LE name data that follow)
	// The value payload sits at DataOffset, after the name bytes.
	ValueFullInfoSize = 20

	// Field offsets within KeyBasicInfo.
	KeyLastWriteOffset = 0x00
	KeyTitleOffset     = 0x08
	KeyNameLenOffset   = 0x0C
	KeyNameOffset      = KeyBasicInfoSize

	// Field offsets within ValueFullInfo.
	ValueTitleOffset   = 0x00
	ValueTypeOffset    = 0x04
	ValueDataOffOffset = 0x08
	ValueDataLenOffset = 0x0C
	ValueNameLenOffset = 0x10
	ValueNameOffset    = ValueFullInfoSize

	// DWORDSize and QWORDSize are the payload sizes required by the
	// fixed-width numeric registry types.
	DWORDSize = 4
	QWORDSize = 8
)
