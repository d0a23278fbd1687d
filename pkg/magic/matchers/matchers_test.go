package matchers

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

var all = map[string]func([]byte) bool{
	"wasm": Wasm, "elf": ELF, "class": Class, "bc": LLVM, "mach": Mach,
	"dex": Dex, "dey": Dey, "der": DER, "exe": EXE,
	"jpg": JPEG, "jp2": JPEG2000, "png": PNG, "gif": GIF, "webp": WebP,
	"cr2": CR2, "tif": TIFF, "bmp": BMP, "jxr": JXR, "psd": PSD, "ico": ICO,
	"heif": HEIF, "avif": AVIF, "ora": ORA, "djvu": DjVu, "jxl": JXL,
	"mp4": MP4, "m4v": M4V, "3gp": ThreeGP, "mkv": MKV, "webm": WebM,
	"mov": MOV, "avi": AVI, "wmv": WMV, "mpg": MPEG, "flv": FLV,
	"midi": MIDI, "mp3": MP3, "m4a": M4A, "opus": Opus, "ogg": Ogg,
	"flac": FLAC, "wav": WAV, "amr": AMR, "aac": AAC, "aiff": AIFF,
	"dsf": DSF, "ape": APE,
	"woff": WOFF, "woff2": WOFF2, "ttf": TTF, "otf": OTF,
	"doc": DOC, "docx": DOCX, "xls": XLS, "xlsx": XLSX, "ppt": PPT,
	"pptx": PPTX, "odt": ODT, "ods": ODS, "odp": ODP,
	"epub": EPUB, "mobi": MOBI,
	"zip": Zip, "tar": Tar, "rar": RAR, "gz": Gzip, "bz2": Bzip2,
	"7z": SevenZip, "xz": XZ, "pdf": PDF, "swf": SWF, "rtf": RTF,
	"eot": EOT, "ps": PS, "sqlite": SQLite, "nes": NES, "crx": CRX,
	"cab": CAB, "deb": Deb, "ar": Ar, "Z": Z, "lz": Lzip, "rpm": RPM,
	"dcm": DICOM, "zst": Zstd, "lz4": LZ4, "msi": OLE, "cpio": CPIO,
	"par2": PAR2,
	"html": HTML, "xml": XML, "sh": Shell,
}

func TestShortInputNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	inputs := [][]byte{nil, {}}
	for n := 1; n < 600; n += 7 {
		random := make([]byte, n)
		rng.Read(random)

		ones := make([]byte, n)
		for i := range ones {
			ones[i] = 0xff
		}
		inputs = append(inputs, random, make([]byte, n), ones)
	}

	for name, match := range all {
		for _, in := range inputs {
			require.NotPanics(t, func() { match(in) }, name)
		}
		require.False(t, match(nil), name)
	}
}

func skippableFrame(nibble byte, payload []byte) []byte {
	frame := make([]byte, 8, 8+len(payload))
	binary.LittleEndian.PutUint32(frame, 0x184d2a50|uint32(nibble))
	binary.LittleEndian.PutUint32(frame[4:], uint32(len(payload)))
	return append(frame, payload...)
}

func TestZstd(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()

	frame := enc.EncodeAll([]byte("hello hello hello hello"), nil)
	require.True(t, Zstd(frame))

	var chained []byte
	chained = append(chained, skippableFrame(0x0, []byte("meta"))...)
	chained = append(chained, skippableFrame(0xf, nil)...)
	chained = append(chained, frame...)
	require.True(t, Zstd(chained))

	// a chain of skippable frames only
	require.False(t, Zstd(skippableFrame(0x3, []byte("meta"))))

	// declared length overruns the buffer
	overrun := skippableFrame(0x1, []byte("meta"))
	binary.LittleEndian.PutUint32(overrun[4:], 1<<31)
	require.False(t, Zstd(append(overrun, frame...)))

	// not a skippable magic
	bad := skippableFrame(0x0, nil)
	bad[3] = 0x19
	require.False(t, Zstd(append(bad, frame...)))
}

func ftyp(major string, compatible ...string) []byte {
	size := 16 + 4*len(compatible)
	b := make([]byte, size, size+32)
	binary.BigEndian.PutUint32(b, uint32(size))
	copy(b[4:], "ftyp")
	copy(b[8:], major)
	for i, c := range compatible {
		copy(b[16+4*i:], c)
	}
	return b
}

func TestISOBMFF(t *testing.T) {
	require.True(t, HEIF(ftyp("heic", "mif1")))
	require.True(t, HEIF(ftyp("heix")))
	require.True(t, HEIF(ftyp("mif1", "miaf", "heic")))
	require.False(t, HEIF(ftyp("mif1", "miaf")))

	require.True(t, AVIF(ftyp("avif", "mif1")))
	require.True(t, AVIF(ftyp("mif1", "miaf", "avif")))
	require.False(t, AVIF(ftyp("mif1", "heic")))

	require.True(t, MP4(ftyp("isom", "iso2", "avc1")))
	require.True(t, MP4(ftyp("mp42")))
	require.False(t, MP4(ftyp("M4V ")))
	require.True(t, M4V(ftyp("M4V ")))
	require.True(t, ThreeGP(ftyp("3gp5")))
	require.True(t, M4A(ftyp("M4A ")))

	// the box is truncated: compatible brands are not available
	box := ftyp("mif1", "heic")
	require.False(t, HEIF(box[:len(box)-4]))

	parsed, ok := parseFtyp(ftyp("isom", "iso2"))
	require.True(t, ok)
	require.Equal(t, "isom", parsed.major)
	require.Equal(t, []string{"iso2"}, parsed.compatible)
}

func localHeader(b []byte, offset int, name string) {
	copy(b[offset:], zipLocalHeader)
	copy(b[offset+30:], name)
}

func TestOOXMLHeaderWalk(t *testing.T) {
	build := func(third string) []byte {
		b := make([]byte, 256)
		localHeader(b, 0, "[Content_Types].xml")
		binary.LittleEndian.PutUint32(b[18:], 10)
		localHeader(b, 80, "_rels/.rels")
		localHeader(b, 150, third)
		return b
	}

	require.True(t, DOCX(build("word/document.xml")))
	require.True(t, XLSX(build("xl/workbook.xml")))
	require.True(t, PPTX(build("ppt/presentation.xml")))
	require.False(t, DOCX(build("docProps/app.xml")))
	require.True(t, Zip(build("docProps/app.xml")))

	// LibreOffice stores the interesting entry fourth
	b := make([]byte, 320)
	localHeader(b, 0, "[Content_Types].xml")
	binary.LittleEndian.PutUint32(b[18:], 10)
	localHeader(b, 80, "_rels/.rels")
	localHeader(b, 150, "docProps/core.xml")
	localHeader(b, 240, "word/document.xml")
	require.True(t, DOCX(b))

	// the first entry alone is enough
	first := make([]byte, 64)
	localHeader(first, 0, "xl/styles.xml")
	require.True(t, XLSX(first))

	// truncated before the compressed size field
	require.False(t, DOCX([]byte("PK\x03\x04")))
}

func compoundFile(shift uint16, dirSector uint32, clsid string) []byte {
	sector := 1 << shift
	b := make([]byte, sector*(int(dirSector)+2))
	copy(b, oleMagic)
	copy(b[0x1c:], "\xfe\xff")
	binary.LittleEndian.PutUint16(b[0x1e:], shift)
	binary.LittleEndian.PutUint32(b[0x30:], dirSector)

	root := b[(int(dirSector)+1)*sector:]
	root[0x42] = cfbRootStorage
	copy(root[0x50:], clsid)
	return b
}

const (
	wordCLSID  = "\x06\x09\x02\x00\x00\x00\x00\x00\xc0\x00\x00\x00\x00\x00\x00\x46"
	excelCLSID = "\x10\x08\x02\x00\x00\x00\x00\x00\xc0\x00\x00\x00\x00\x00\x00\x46"
	pptCLSID   = "\x10\x8d\x81\x64\x9b\x4f\xcf\x11\x86\xea\x00\xaa\x00\xb9\x29\xe8"
)

func TestOLE2(t *testing.T) {
	require.True(t, DOC(compoundFile(9, 0, wordCLSID)))
	require.True(t, XLS(compoundFile(9, 2, excelCLSID)))
	require.True(t, PPT(compoundFile(12, 0, pptCLSID)))
	require.False(t, DOC(compoundFile(9, 0, pptCLSID)))

	clsid, ok := rootCLSID(compoundFile(9, 0, pptCLSID))
	require.True(t, ok)
	require.Equal(t, "64818d10-4f9b-11cf-86ea-00aa00b929e8", clsid)

	// directory outside the available prefix
	b := compoundFile(9, 4, wordCLSID)
	require.False(t, DOC(b[:1024]))
	require.True(t, OLE(b[:1024]))

	// unsupported sector size
	b = compoundFile(9, 0, wordCLSID)
	binary.LittleEndian.PutUint16(b[0x1e:], 7)
	require.False(t, DOC(b))
}

func TestCafeBabe(t *testing.T) {
	class := []byte("\xca\xfe\xba\xbe\x00\x00\x00\x3d")
	fat := []byte("\xca\xfe\xba\xbe\x00\x00\x00\x02")

	require.True(t, Class(class))
	require.False(t, Mach(class))
	require.True(t, Mach(fat))
	require.False(t, Class(fat))
	require.False(t, Class(class[:6]))
}

func TestTIFFExcludesCR2(t *testing.T) {
	cr2 := []byte("II*\x00\x10\x00\x00\x00CR\x02\x00")
	require.True(t, CR2(cr2))
	require.False(t, TIFF(cr2))

	tiff := []byte("MM\x00*\x00\x00\x00\x08\x00\x10")
	require.True(t, TIFF(tiff))
	require.False(t, CR2(tiff))

	// either half of the CR tag is enough to reject
	require.False(t, TIFF([]byte("II*\x00\x08\x00\x00\x00CX\x00\x00")))
	require.False(t, TIFF([]byte("II*\x00\x08\x00\x00\x00XR\x00\x00")))
}

func TestZipMarkers(t *testing.T) {
	for _, in := range []string{
		"PK\x03\x04xxxx",
		"PK\x05\x06xxxx",
		"PK\x07\x08xxxx",
		"PK00PK\x03\x04xxxx",
	} {
		require.True(t, Zip([]byte(in)), "%q", in)
	}

	for _, in := range []string{
		"PK\x03\x06xxxx",
		"PK\x07\x04xxxx",
		"PK\x05\x08xxxx",
		"PK00xxxx",
		"PK\x03",
	} {
		require.False(t, Zip([]byte(in)), "%q", in)
	}
}

func TestMP3FrameSync(t *testing.T) {
	require.True(t, MP3([]byte("ID3\x04")))
	require.True(t, MP3([]byte("\xff\xfb\x90")))

	require.False(t, MP3([]byte("\xff\xf3\x90")))
	require.False(t, MP3([]byte("\xff\xf2\x90")))
	require.False(t, MP3([]byte("\xff\xfb")))
}

func TestOggOpus(t *testing.T) {
	b := make([]byte, 64)
	copy(b, "OggS")
	copy(b[28:], "OpusHead")
	require.True(t, Opus(b))
	require.True(t, Ogg(b))
	require.False(t, Opus(b[:30]))
}

func TestHTML(t *testing.T) {
	for _, in := range []string{
		"<html>",
		"<HTML lang=\"en\">",
		"\t\r\n <!doctype html>",
		"<p>paragraph</p>",
		"<!-- comment -->",
		"<br>",
	} {
		require.True(t, HTML([]byte(in)), in)
	}

	for _, in := range []string{
		"<html",
		"<htmlx>",
		"<pre>",
		"hello <html>",
		"   ",
	} {
		require.False(t, HTML([]byte(in)), in)
	}
}

func TestXML(t *testing.T) {
	require.True(t, XML([]byte("\n<?xml version=\"1.0\"?>")))
	require.True(t, XML([]byte("<?XML ")))
	require.False(t, XML([]byte("<?xml")))
	require.False(t, XML([]byte("<xml>")))
}
