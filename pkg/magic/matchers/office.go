package matchers

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type officeKind int

const (
	officeUnknown officeKind = iota
	officeWord
	officeExcel
	officePowerPoint
)

// maxHeaderGap bounds the scan for the next local file header. Some
// producers add a large extra field after each header.
const maxHeaderGap = 6000

func DOCX(buf []byte) bool { return ooxml(buf) == officeWord }
func XLSX(buf []byte) bool { return ooxml(buf) == officeExcel }
func PPTX(buf []byte) bool { return ooxml(buf) == officePowerPoint }

func DOC(buf []byte) bool { return ole2(buf) == officeWord }
func XLS(buf []byte) bool { return ole2(buf) == officeExcel }
func PPT(buf []byte) bool { return ole2(buf) == officePowerPoint }

// ooxml identifies an Office Open XML package by the directory of its
// part names. Word, Excel and LibreOffice order their entries differently,
// so up to four local file headers are visited.
func ooxml(buf []byte) officeKind {
	if !at(buf, 0, zipLocalHeader) {
		return officeUnknown
	}
	if k := ooxmlEntry(buf, 0x1e); k != officeUnknown {
		return k
	}
	if !anyAt(buf, 0x1e, "[Content_Types].xml", "_rels/.rels", "docProps") {
		return officeUnknown
	}

	compressed, ok := u32le(buf, 18)
	if !ok {
		return officeUnknown
	}
	start := int(compressed) + 49

	idx := nextLocalHeader(buf, start)
	if idx < 0 {
		return officeUnknown
	}
	start += idx + 4 + 26

	idx = nextLocalHeader(buf, start)
	if idx < 0 {
		return officeUnknown
	}
	start += idx + 4 + 26
	if k := ooxmlEntry(buf, start); k != officeUnknown {
		return k
	}

	start += 26
	idx = nextLocalHeader(buf, start)
	if idx < 0 {
		return officeUnknown
	}
	start += idx + 4 + 26
	return ooxmlEntry(buf, start)
}

func ooxmlEntry(buf []byte, offset int) officeKind {
	switch {
	case at(buf, offset, "word/"):
		return officeWord
	case at(buf, offset, "xl/"):
		return officeExcel
	case at(buf, offset, "ppt/"):
		return officePowerPoint
	}
	return officeUnknown
}

// nextLocalHeader returns the position of the next local file header
// relative to start, looking at most maxHeaderGap bytes ahead.
func nextLocalHeader(buf []byte, start int) int {
	end := min(start+maxHeaderGap, len(buf))
	if start < 0 || start >= end {
		return -1
	}
	return bytes.Index(buf[start:end], []byte(zipLocalHeader))
}

const (
	cfbSectorShiftOffset = 0x1e
	cfbDirSectorOffset   = 0x30
	cfbEntryTypeOffset   = 0x42
	cfbEntryCLSIDOffset  = 0x50
	cfbRootStorage       = 5
)

var officeCLSIDs = map[string]officeKind{
	"00020906-0000-0000-c000-000000000046": officeWord,
	"00020810-0000-0000-c000-000000000046": officeExcel,
	"00020820-0000-0000-c000-000000000046": officeExcel,
	"64818d10-4f9b-11cf-86ea-00aa00b929e8": officePowerPoint,
}

// ole2 identifies a legacy Office document from the CLSID of the root
// storage of its compound file.
func ole2(buf []byte) officeKind {
	clsid, ok := rootCLSID(buf)
	if !ok {
		return officeUnknown
	}
	return officeCLSIDs[clsid]
}

// rootCLSID reads the class id of the root directory entry. The directory
// must start within buf.
func rootCLSID(buf []byte) (string, bool) {
	if !at(buf, 0, oleMagic) || !at(buf, 0x1c, "\xfe\xff") || len(buf) < 512 {
		return "", false
	}

	shift := binary.LittleEndian.Uint16(buf[cfbSectorShiftOffset:])
	if shift != 9 && shift != 12 {
		return "", false
	}
	sid := binary.LittleEndian.Uint32(buf[cfbDirSectorOffset:])

	// Sector 0 follows the header, which fills the first sector slot.
	entry := (uint64(sid) + 1) << shift
	if entry+128 > uint64(len(buf)) {
		return "", false
	}

	root := buf[entry : entry+128]
	if root[cfbEntryTypeOffset] != cfbRootStorage {
		return "", false
	}
	return formatCLSID(root[cfbEntryCLSIDOffset : cfbEntryCLSIDOffset+16]), true
}

func formatCLSID(b []byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%x-%x",
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint16(b[4:6]),
		binary.LittleEndian.Uint16(b[6:8]),
		b[8:10],
		b[10:16],
	)
}
