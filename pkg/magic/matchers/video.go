package matchers

var mp4Brands = map[string]struct{}{
	"avc1": {}, "dash": {}, "iso2": {}, "iso3": {}, "iso4": {}, "iso5": {},
	"iso6": {}, "isom": {}, "mmp4": {}, "mp41": {}, "mp42": {}, "mp4v": {},
	"mp71": {}, "MSNV": {}, "NDAS": {}, "NDSC": {}, "NDSH": {}, "NDSM": {},
	"NDSP": {}, "NDSS": {}, "NDXC": {}, "NDXH": {}, "NDXM": {}, "NDXP": {},
	"NDXS": {}, "F4V ": {}, "F4P ": {},
}

const ebmlMagic = "\x1a\x45\xdf\xa3"

func MP4(buf []byte) bool {
	if len(buf) < 12 || !at(buf, 4, "ftyp") {
		return false
	}
	_, ok := mp4Brands[string(buf[8:12])]
	return ok
}

func M4V(buf []byte) bool {
	return at(buf, 4, "ftypM4V")
}

// ThreeGP matches 3GPP and 3GPP2 brands (3gp4, 3gp5, 3g2a, ...).
func ThreeGP(buf []byte) bool {
	return at(buf, 4, "ftyp3g")
}

// MKV matches Matroska files by their EBML DocType, either at the
// canonical position or further into a longer header.
func MKV(buf []byte) bool {
	if at(buf, 0, ebmlMagic) && len(buf) > 15 &&
		buf[5] == 0x42 && buf[6] == 0x82 && buf[7] == 0x88 && at(buf, 8, "matroska") {
		return true
	}
	return at(buf, 31, "matroska")
}

func WebM(buf []byte) bool {
	return at(buf, 0, ebmlMagic)
}

func MOV(buf []byte) bool {
	if len(buf) < 16 {
		return false
	}
	return at(buf, 0, "\x00\x00\x00\x14ftyp") ||
		at(buf, 4, "ftypqt") ||
		anyAt(buf, 4, "moov", "mdat") ||
		at(buf, 12, "mdat")
}

func AVI(buf []byte) bool {
	return at(buf, 0, "RIFF") && at(buf, 8, "AVI")
}

func WMV(buf []byte) bool {
	return at(buf, 0, "\x30\x26\xb2\x75\x8e\x66\xcf\x11\xa6\xd9")
}

// MPEG matches MPEG-1/2 program and video streams.
func MPEG(buf []byte) bool {
	return len(buf) > 3 && at(buf, 0, "\x00\x00\x01") && buf[3] >= 0xb0 && buf[3] <= 0xbf
}

func FLV(buf []byte) bool {
	return at(buf, 0, "FLV\x01")
}
