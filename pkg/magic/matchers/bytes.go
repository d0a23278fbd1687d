package matchers

import "encoding/binary"

// at reports whether buf holds sig starting at offset.
func at(buf []byte, offset int, sig string) bool {
	if offset < 0 || len(buf) < offset+len(sig) {
		return false
	}
	return string(buf[offset:offset+len(sig)]) == sig
}

// anyAt reports whether one of sigs is found at offset.
func anyAt(buf []byte, offset int, sigs ...string) bool {
	for _, sig := range sigs {
		if at(buf, offset, sig) {
			return true
		}
	}
	return false
}

func u32le(buf []byte, offset int) (uint32, bool) {
	if offset < 0 || len(buf) < offset+4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buf[offset:]), true
}

func u32be(buf []byte, offset int) (uint32, bool) {
	if offset < 0 || len(buf) < offset+4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(buf[offset:]), true
}
