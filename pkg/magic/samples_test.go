package magic_test

import (
	"encoding/binary"
)

// pad returns s followed by zeros up to n bytes.
func pad(s string, n int) []byte {
	b := make([]byte, max(n, len(s)))
	copy(b, s)
	return b
}

// put copies s into b at offset and returns b.
func put(b []byte, offset int, s string) []byte {
	copy(b[offset:], s)
	return b
}

// compoundFile builds a minimal compound file whose root entry carries the
// given class id, laid out as {data1 LE, data2 LE, data3 LE, data4}.
func compoundFile(data1 uint32, data2, data3 uint16, data4 string) []byte {
	b := make([]byte, 1024)
	copy(b, "\xd0\xcf\x11\xe0\xa1\xb1\x1a\xe1")
	copy(b[0x1c:], "\xfe\xff")
	binary.LittleEndian.PutUint16(b[0x1e:], 9)
	binary.LittleEndian.PutUint32(b[0x30:], 0)

	root := b[512:]
	copy(root, "R\x00o\x00o\x00t\x00")
	root[0x42] = 5
	binary.LittleEndian.PutUint32(root[0x50:], data1)
	binary.LittleEndian.PutUint16(root[0x54:], data2)
	binary.LittleEndian.PutUint16(root[0x56:], data3)
	copy(root[0x58:], data4)
	return b
}

func zipEntry(name string) []byte {
	return put(pad("PK\x03\x04\x14\x00", 30+len(name)), 30, name)
}

// samples maps every built-in extension to a synthetic input carrying its
// signature. Aliased types (dll) are listed in aliases instead.
var samples = map[string][]byte{
	"wasm":  []byte("\x00asm\x01\x00\x00\x00"),
	"elf":   pad("\x7fELF\x02\x01\x01", 64),
	"class": []byte("\xca\xfe\xba\xbe\x00\x00\x00\x34"),
	"bc":    pad("BC\xc0\xde", 16),
	"mach":  pad("\xcf\xfa\xed\xfe\x07\x00\x00\x01", 32),
	"dex":   put(pad("dex\n035\x00", 112), 36, "\x70"),
	"dey":   put(put(pad("dey\n036\x00", 112), 40, "dex\n035\x00"), 76, "\x70"),
	"der":   pad("\x30\x82\x01\x0a", 16),
	"exe":   pad("MZ\x90\x00\x03", 64),

	"jpg":  pad("\xff\xd8\xff\xe0\x00\x10JFIF", 32),
	"jp2":  pad("\x00\x00\x00\x0cjP  \r\n\x87\n\x00", 32),
	"png":  pad("\x89PNG\r\n\x1a\n", 32),
	"gif":  pad("GIF89a", 32),
	"webp": pad("RIFF\x00\x00\x00\x00WEBPVP8 ", 32),
	"cr2":  pad("II*\x00\x10\x00\x00\x00CR\x02\x00", 32),
	"tif":  pad("II*\x00\x08\x00\x00\x00\x00\x00", 32),
	"bmp":  pad("BM\x36\x00", 32),
	"jxr":  pad("II\xbc\x01", 32),
	"psd":  pad("8BPS\x00\x01", 32),
	"ico":  pad("\x00\x00\x01\x00\x01\x00", 32),
	"heif": []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00mif1heic"),
	"avif": []byte("\x00\x00\x00\x1cftypavif\x00\x00\x00\x00avifmif1miaf"),
	"ora":  zipEntry("mimetypeimage/openraster"),
	"djvu": pad("AT&TFORM\x00\x00\x00\x00DJVU", 32),
	"jxl":  pad("\xff\x0a\xfa\x7f", 32),

	"mp4":  []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2"),
	"m4v":  []byte("\x00\x00\x00\x18ftypM4V \x00\x00\x00\x01M4V isom"),
	"3gp":  []byte("\x00\x00\x00\x14ftyp3gp4\x00\x00\x02\x003gp4"),
	"mkv":  pad("\x1a\x45\xdf\xa3\x93\x42\x82\x88matroska", 48),
	"webm": pad("\x1a\x45\xdf\xa3\x9f\x42\x86\x81\x01webm", 48),
	"mov":  pad("\x00\x00\x00\x14ftypqt  \x00\x00\x02\x00qt  ", 32),
	"avi":  pad("RIFF\x00\x00\x00\x00AVI LIST", 32),
	"wmv":  pad("\x30\x26\xb2\x75\x8e\x66\xcf\x11\xa6\xd9\x00\xaa", 32),
	"mpg":  pad("\x00\x00\x01\xba\x44", 32),
	"flv":  pad("FLV\x01\x05", 32),

	"midi": pad("MThd\x00\x00\x00\x06", 16),
	"mp3":  pad("ID3\x03\x00", 16),
	"m4a":  []byte("\x00\x00\x00\x18ftypM4A \x00\x00\x00\x00M4A isom"),
	"opus": put(pad("OggS\x00\x02", 48), 28, "OpusHead"),
	"ogg":  put(pad("OggS\x00\x02", 48), 28, "\x01vorbis"),
	"flac": pad("fLaC\x00\x00\x00\x22", 16),
	"wav":  pad("RIFF\x00\x00\x00\x00WAVEfmt ", 32),
	"amr":  pad("#!AMR\n", 16),
	"aac":  pad("\xff\xf1\x50\x80", 16),
	"aiff": pad("FORM\x00\x00\x00\x00AIFFCOMM", 32),
	"dsf":  pad("DSD \x1c\x00", 16),
	"ape":  pad("MAC \x96\x0f", 16),

	"woff":  pad("wOFF\x00\x01\x00\x00", 16),
	"woff2": pad("wOF2\x00\x01\x00\x00", 16),
	"ttf":   pad("\x00\x01\x00\x00\x00\x0f", 32),
	"otf":   pad("OTTO\x00\x0b", 32),

	"doc":  compoundFile(0x00020906, 0, 0, "\xc0\x00\x00\x00\x00\x00\x00\x46"),
	"xls":  compoundFile(0x00020820, 0, 0, "\xc0\x00\x00\x00\x00\x00\x00\x46"),
	"ppt":  compoundFile(0x64818d10, 0x4f9b, 0x11cf, "\x86\xea\x00\xaa\x00\xb9\x29\xe8"),
	"docx": zipEntry("word/document.xml"),
	"xlsx": zipEntry("xl/workbook.xml"),
	"pptx": zipEntry("ppt/presentation.xml"),
	"odt":  zipEntry("mimetypeapplication/vnd.oasis.opendocument.text"),
	"ods":  zipEntry("mimetypeapplication/vnd.oasis.opendocument.spreadsheet"),
	"odp":  zipEntry("mimetypeapplication/vnd.oasis.opendocument.presentation"),

	"epub": zipEntry("mimetypeapplication/epub+zip"),
	"mobi": put(make([]byte, 80), 60, "BOOKMOBI"),

	"zip":    zipEntry("file.txt"),
	"tar":    put(pad("hello.txt", 512), 257, "ustar\x0000"),
	"rar":    pad("Rar!\x1a\x07\x00", 16),
	"gz":     pad("\x1f\x8b\x08\x00", 16),
	"bz2":    pad("BZh91AY&SY", 16),
	"7z":     pad("7z\xbc\xaf\x27\x1c\x00\x04", 16),
	"xz":     pad("\xfd7zXZ\x00\x00", 16),
	"pdf":    pad("%PDF-1.7", 16),
	"swf":    pad("FWS\x0a", 16),
	"rtf":    pad("{\\rtf1\\ansi", 16),
	"eot":    put(put(make([]byte, 40), 8, "\x02\x00\x01"), 34, "LP"),
	"ps":     pad("%!PS-Adobe-3.0", 16),
	"sqlite": pad("SQLite format 3\x00", 32),
	"nes":    pad("NES\x1a\x02", 16),
	"crx":    pad("Cr24\x03\x00", 16),
	"cab":    pad("MSCF\x00\x00", 16),
	"deb":    pad("!<arch>\ndebian-binary   ", 32),
	"ar":     pad("!<arch>\nfoo.o/", 32),
	"Z":      pad("\x1f\x9d\x90", 16),
	"lz":     pad("LZIP\x01", 16),
	"rpm":    pad("\xed\xab\xee\xdb\x03\x00", 128),
	"dcm":    put(make([]byte, 160), 128, "DICM"),
	"zst":    pad("\x28\xb5\x2f\xfd\x04\x00", 16),
	"lz4":    pad("\x04\x22\x4d\x18\x64\x40", 16),
	"msi":    pad("\xd0\xcf\x11\xe0\xa1\xb1\x1a\xe1", 512),
	"cpio":   pad("070701", 32),
	"par2":   pad("PAR2\x00PKT", 32),

	"html": []byte("  <!DOCTYPE html>\n<html><body></body></html>"),
	"xml":  []byte("<?xml version=\"1.0\"?><root/>"),
	"sh":   []byte("#!/bin/sh\necho hi\n"),
}

// aliases maps types sharing a predicate with an earlier type to the
// extension that wins classification.
var aliases = map[string]string{
	"dll": "exe",
}
