package matchers

const (
	zipLocalHeader = "PK\x03\x04"
	oleMagic       = "\xd0\xcf\x11\xe0\xa1\xb1\x1a\xe1"

	zstdMagic     = "\x28\xb5\x2f\xfd"
	zstdSkipStart = 0x184d2a50
	zstdSkipMask  = 0xfffffff0
)

// Zip matches local file, end of central directory and spanned archive
// markers, plus the "PK00" prefix written by old WinZip spanning tools.
func Zip(buf []byte) bool {
	return len(buf) > 3 && anyAt(buf, 0, zipLocalHeader, "PK\x05\x06", "PK\x07\x08", "PK00PK\x03\x04")
}

// Tar matches POSIX ustar and GNU tar headers.
func Tar(buf []byte) bool {
	return len(buf) > 261 && at(buf, 257, "ustar")
}

func RAR(buf []byte) bool {
	return len(buf) > 6 && at(buf, 0, "Rar!\x1a\x07") && (buf[6] == 0x00 || buf[6] == 0x01)
}

func Gzip(buf []byte) bool {
	return at(buf, 0, "\x1f\x8b\x08")
}

func Bzip2(buf []byte) bool {
	return at(buf, 0, "BZh")
}

func SevenZip(buf []byte) bool {
	return at(buf, 0, "7z\xbc\xaf\x27\x1c")
}

func XZ(buf []byte) bool {
	return at(buf, 0, "\xfd7zXZ\x00")
}

func PDF(buf []byte) bool {
	return at(buf, 0, "%PDF")
}

// SWF matches uncompressed and zlib compressed Flash files.
func SWF(buf []byte) bool {
	return anyAt(buf, 0, "CWS", "FWS")
}

func RTF(buf []byte) bool {
	return at(buf, 0, "{\\rtf")
}

// EOT matches Embedded OpenType fonts by their magic at 34 and one of the
// known version numbers at 8.
func EOT(buf []byte) bool {
	return len(buf) > 35 && at(buf, 34, "LP") &&
		anyAt(buf, 8, "\x02\x00\x01", "\x01\x00\x00", "\x02\x00\x02")
}

func PS(buf []byte) bool {
	return at(buf, 0, "%!")
}

func SQLite(buf []byte) bool {
	return at(buf, 0, "SQLi")
}

func NES(buf []byte) bool {
	return at(buf, 0, "NES\x1a")
}

func CRX(buf []byte) bool {
	return at(buf, 0, "Cr24")
}

// CAB matches Microsoft cabinets and InstallShield archives.
func CAB(buf []byte) bool {
	return anyAt(buf, 0, "MSCF", "ISc(")
}

func Deb(buf []byte) bool {
	return at(buf, 0, "!<arch>\ndebian-binary")
}

func Ar(buf []byte) bool {
	return at(buf, 0, "!<arch>")
}

// Z matches LZW (compress) and LZH (pack) streams.
func Z(buf []byte) bool {
	return anyAt(buf, 0, "\x1f\xa0", "\x1f\x9d")
}

func Lzip(buf []byte) bool {
	return at(buf, 0, "LZIP")
}

func RPM(buf []byte) bool {
	return len(buf) > 96 && at(buf, 0, "\xed\xab\xee\xdb")
}

// DICOM matches the "DICM" marker that follows the 128 byte preamble.
func DICOM(buf []byte) bool {
	return at(buf, 128, "DICM")
}

// Zstd matches a Zstandard frame, possibly preceded by a chain of skippable
// frames. Each skippable frame declares its payload size in a little-endian
// u32 following the magic; the chain is followed until a real frame is
// found or the buffer runs out.
func Zstd(buf []byte) bool {
	for {
		if at(buf, 0, zstdMagic) {
			return true
		}

		magic, ok := u32le(buf, 0)
		if !ok || magic&zstdSkipMask != zstdSkipStart {
			return false
		}
		size, ok := u32le(buf, 4)
		if !ok || uint64(size) > uint64(len(buf)-8) {
			return false
		}
		buf = buf[8+int(size):]
	}
}

// LZ4 matches the LZ4 frame format.
func LZ4(buf []byte) bool {
	return at(buf, 0, "\x04\x22\x4d\x18")
}

// OLE matches any compound file binary, e.g. MSI installers.
func OLE(buf []byte) bool {
	return at(buf, 0, oleMagic)
}

func CPIO(buf []byte) bool {
	return anyAt(buf, 0, "\xc7\x71", "\x71\xc7", "070701")
}

// PAR2 matches Parchive v2 recovery files.
func PAR2(buf []byte) bool {
	return at(buf, 0, "PAR2\x00PKT")
}
