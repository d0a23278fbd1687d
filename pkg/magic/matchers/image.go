package matchers

func JPEG(buf []byte) bool {
	return at(buf, 0, "\xff\xd8\xff")
}

func JPEG2000(buf []byte) bool {
	return at(buf, 0, "\x00\x00\x00\x0cjP  \r\n\x87\n\x00")
}

func PNG(buf []byte) bool {
	return at(buf, 0, "\x89PNG")
}

func GIF(buf []byte) bool {
	return at(buf, 0, "GIF")
}

func WebP(buf []byte) bool {
	return len(buf) > 11 && at(buf, 8, "WEBP")
}

func tiffHeader(buf []byte) bool {
	return anyAt(buf, 0, "II*\x00", "MM\x00*")
}

// CR2 matches Canon raw images, which are TIFF files tagged with "CR\x02".
func CR2(buf []byte) bool {
	return tiffHeader(buf) && at(buf, 8, "CR\x02")
}

// TIFF rejects any header with 'C' at offset 8 or 'R' at offset 9, which
// leaves Canon raw files to CR2.
func TIFF(buf []byte) bool {
	return len(buf) > 9 && tiffHeader(buf) && buf[8] != 'C' && buf[9] != 'R'
}

func BMP(buf []byte) bool {
	return at(buf, 0, "BM")
}

func JXR(buf []byte) bool {
	return at(buf, 0, "II\xbc")
}

func PSD(buf []byte) bool {
	return at(buf, 0, "8BPS")
}

func ICO(buf []byte) bool {
	return at(buf, 0, "\x00\x00\x01\x00")
}

// HEIF matches HEIC/HEIX files and generic image sequences that declare
// HEIC compatibility.
func HEIF(buf []byte) bool {
	box, ok := parseFtyp(buf)
	if !ok {
		return false
	}
	switch box.major {
	case "heic", "heix":
		return true
	case "mif1", "msf1":
		return box.compatibleWith("heic")
	}
	return false
}

func AVIF(buf []byte) bool {
	box, ok := parseFtyp(buf)
	if !ok {
		return false
	}
	if box.major == "avif" || box.major == "avis" {
		return true
	}
	return box.compatibleWith("avif", "avis")
}

// ORA matches OpenRaster images: a zip whose first entry is the
// uncompressed mimetype record.
func ORA(buf []byte) bool {
	return at(buf, 0, zipLocalHeader) && at(buf, 30, "mimetypeimage/openraster")
}

func DjVu(buf []byte) bool {
	return at(buf, 0, "AT&TFORM") && at(buf, 12, "DJV")
}

// JXL matches both the bare JPEG XL codestream and the container format.
func JXL(buf []byte) bool {
	return at(buf, 0, "\xff\x0a") || at(buf, 0, "\x00\x00\x00\x0cJXL \r\n\x87\n")
}
