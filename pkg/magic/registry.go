package magic

import (
	"slices"

	"github.com/ostafen/sniff/pkg/magic/matchers"
)

// builtins is tried in order after the custom types of a Matcher. Types
// sharing an outer signature rely on it: containers with a more specific
// layout (OOXML, OpenDocument, EPUB) come before the generic zip entry,
// Opus before Ogg, CR2 before TIFF.
var builtins = []Type{
	NewPrefixType(App, "application/wasm", "wasm", matchers.Wasm, 8),
	NewPrefixType(App, "application/x-executable", "elf", matchers.ELF, 53),
	NewPrefixType(App, "application/java", "class", matchers.Class, 8),
	NewPrefixType(App, "application/x-llvm", "bc", matchers.LLVM, 4),
	NewPrefixType(App, "application/x-mach-binary", "mach", matchers.Mach, 8),
	NewPrefixType(App, "application/vnd.android.dex", "dex", matchers.Dex, 37),
	NewPrefixType(App, "application/vnd.android.dey", "dey", matchers.Dey, 101),
	NewPrefixType(App, "application/x-x509-ca-cert", "der", matchers.DER, 2),
	NewPrefixType(App, "application/vnd.microsoft.portable-executable", "exe", matchers.EXE, 2),
	NewPrefixType(App, "application/vnd.microsoft.portable-executable", "dll", matchers.EXE, 2),

	NewPrefixType(Image, "image/jpeg", "jpg", matchers.JPEG, 3),
	NewPrefixType(Image, "image/jp2", "jp2", matchers.JPEG2000, 13),
	NewPrefixType(Image, "image/png", "png", matchers.PNG, 4),
	NewPrefixType(Image, "image/gif", "gif", matchers.GIF, 3),
	NewPrefixType(Image, "image/webp", "webp", matchers.WebP, 12),
	NewPrefixType(Image, "image/x-canon-cr2", "cr2", matchers.CR2, 11),
	NewPrefixType(Image, "image/tiff", "tif", matchers.TIFF, 10),
	NewPrefixType(Image, "image/bmp", "bmp", matchers.BMP, 2),
	NewPrefixType(Image, "image/vnd.ms-photo", "jxr", matchers.JXR, 3),
	NewPrefixType(Image, "image/vnd.adobe.photoshop", "psd", matchers.PSD, 4),
	NewPrefixType(Image, "image/vnd.microsoft.icon", "ico", matchers.ICO, 4),
	NewPrefixType(Image, "image/heif", "heif", matchers.HEIF, 256),
	NewPrefixType(Image, "image/avif", "avif", matchers.AVIF, 256),
	NewPrefixType(Image, "image/openraster", "ora", matchers.ORA, 54),
	NewPrefixType(Image, "image/vnd.djvu", "djvu", matchers.DjVu, 15),
	NewPrefixType(Image, "image/jxl", "jxl", matchers.JXL, 12),

	NewPrefixType(Video, "video/mp4", "mp4", matchers.MP4, 12),
	NewPrefixType(Video, "video/x-m4v", "m4v", matchers.M4V, 11),
	NewPrefixType(Video, "video/3gpp", "3gp", matchers.ThreeGP, 10),
	NewPrefixType(Video, "video/x-matroska", "mkv", matchers.MKV, 39),
	NewPrefixType(Video, "video/webm", "webm", matchers.WebM, 4),
	NewPrefixType(Video, "video/quicktime", "mov", matchers.MOV, 16),
	NewPrefixType(Video, "video/x-msvideo", "avi", matchers.AVI, 11),
	NewPrefixType(Video, "video/x-ms-wmv", "wmv", matchers.WMV, 10),
	NewPrefixType(Video, "video/mpeg", "mpg", matchers.MPEG, 4),
	NewPrefixType(Video, "video/x-flv", "flv", matchers.FLV, 4),

	NewPrefixType(Audio, "audio/midi", "midi", matchers.MIDI, 4),
	NewPrefixType(Audio, "audio/mpeg", "mp3", matchers.MP3, 3),
	NewPrefixType(Audio, "audio/m4a", "m4a", matchers.M4A, 11),
	NewPrefixType(Audio, "audio/opus", "opus", matchers.Opus, 36),
	NewPrefixType(Audio, "audio/ogg", "ogg", matchers.Ogg, 4),
	NewPrefixType(Audio, "audio/x-flac", "flac", matchers.FLAC, 4),
	NewPrefixType(Audio, "audio/x-wav", "wav", matchers.WAV, 12),
	NewPrefixType(Audio, "audio/amr", "amr", matchers.AMR, 12),
	NewPrefixType(Audio, "audio/aac", "aac", matchers.AAC, 2),
	NewPrefixType(Audio, "audio/x-aiff", "aiff", matchers.AIFF, 12),
	NewPrefixType(Audio, "audio/x-dsf", "dsf", matchers.DSF, 4),
	NewPrefixType(Audio, "audio/x-ape", "ape", matchers.APE, 4),

	NewPrefixType(Font, "application/font-woff", "woff", matchers.WOFF, 8),
	NewPrefixType(Font, "application/font-woff", "woff2", matchers.WOFF2, 8),
	NewPrefixType(Font, "application/font-sfnt", "ttf", matchers.TTF, 5),
	NewPrefixType(Font, "application/font-sfnt", "otf", matchers.OTF, 5),

	NewPrefixType(Document, "application/msword", "doc", matchers.DOC, DefaultReadLimit),
	NewPrefixType(Document, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "docx", matchers.DOCX, DefaultReadLimit),
	NewPrefixType(Document, "application/vnd.ms-excel", "xls", matchers.XLS, DefaultReadLimit),
	NewPrefixType(Document, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", matchers.XLSX, DefaultReadLimit),
	NewPrefixType(Document, "application/vnd.ms-powerpoint", "ppt", matchers.PPT, DefaultReadLimit),
	NewPrefixType(Document, "application/vnd.openxmlformats-officedocument.presentationml.presentation", "pptx", matchers.PPTX, DefaultReadLimit),
	NewPrefixType(Document, "application/vnd.oasis.opendocument.text", "odt", matchers.ODT, 88),
	NewPrefixType(Document, "application/vnd.oasis.opendocument.spreadsheet", "ods", matchers.ODS, 88),
	NewPrefixType(Document, "application/vnd.oasis.opendocument.presentation", "odp", matchers.ODP, 88),

	NewPrefixType(Book, "application/epub+zip", "epub", matchers.EPUB, 58),
	NewPrefixType(Book, "application/x-mobipocket-ebook", "mobi", matchers.MOBI, 68),

	NewPrefixType(Archive, "application/zip", "zip", matchers.Zip, 4),
	NewPrefixType(Archive, "application/x-tar", "tar", matchers.Tar, 262),
	NewPrefixType(Archive, "application/vnd.rar", "rar", matchers.RAR, 7),
	NewPrefixType(Archive, "application/gzip", "gz", matchers.Gzip, 3),
	NewPrefixType(Archive, "application/x-bzip2", "bz2", matchers.Bzip2, 3),
	NewPrefixType(Archive, "application/x-7z-compressed", "7z", matchers.SevenZip, 6),
	NewPrefixType(Archive, "application/x-xz", "xz", matchers.XZ, 6),
	NewPrefixType(Archive, "application/pdf", "pdf", matchers.PDF, 4),
	NewPrefixType(Archive, "application/x-shockwave-flash", "swf", matchers.SWF, 3),
	NewPrefixType(Archive, "application/rtf", "rtf", matchers.RTF, 5),
	NewPrefixType(Archive, "application/octet-stream", "eot", matchers.EOT, 36),
	NewPrefixType(Archive, "application/postscript", "ps", matchers.PS, 2),
	NewPrefixType(Archive, "application/vnd.sqlite3", "sqlite", matchers.SQLite, 4),
	NewPrefixType(Archive, "application/x-nintendo-nes-rom", "nes", matchers.NES, 4),
	NewPrefixType(Archive, "application/x-google-chrome-extension", "crx", matchers.CRX, 4),
	NewPrefixType(Archive, "application/vnd.ms-cab-compressed", "cab", matchers.CAB, 4),
	NewPrefixType(Archive, "application/vnd.debian.binary-package", "deb", matchers.Deb, 21),
	NewPrefixType(Archive, "application/x-unix-archive", "ar", matchers.Ar, 7),
	NewPrefixType(Archive, "application/x-compress", "Z", matchers.Z, 2),
	NewPrefixType(Archive, "application/x-lzip", "lz", matchers.Lzip, 4),
	NewPrefixType(Archive, "application/x-rpm", "rpm", matchers.RPM, 97),
	NewPrefixType(Archive, "application/dicom", "dcm", matchers.DICOM, 132),
	NewPrefixType(Archive, "application/zstd", "zst", matchers.Zstd, DefaultReadLimit),
	NewPrefixType(Archive, "application/x-lz4", "lz4", matchers.LZ4, 4),
	NewPrefixType(Archive, "application/x-ole-storage", "msi", matchers.OLE, 8),
	NewPrefixType(Archive, "application/x-cpio", "cpio", matchers.CPIO, 6),
	NewPrefixType(Archive, "application/x-par2", "par2", matchers.PAR2, 8),

	NewPrefixType(Text, "text/html", "html", matchers.HTML, DefaultReadLimit),
	NewPrefixType(Text, "text/xml", "xml", matchers.XML, DefaultReadLimit),
	NewPrefixType(Text, "text/x-shellscript", "sh", matchers.Shell, 3),
}

// Builtins returns a copy of the built-in registry in matching order.
func Builtins() []Type {
	return slices.Clone(builtins)
}
