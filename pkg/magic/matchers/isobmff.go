package matchers

// ftypBox is the leading file type box of an ISO base media file.
type ftypBox struct {
	major      string
	minor      uint32
	compatible []string
}

// parseFtyp decodes the ftyp box at the start of buf. The whole box must be
// available: its declared size bounds the list of compatible brands.
func parseFtyp(buf []byte) (ftypBox, bool) {
	if len(buf) < 16 || !at(buf, 4, "ftyp") {
		return ftypBox{}, false
	}

	size, _ := u32be(buf, 0)
	if size < 16 || uint64(size) > uint64(len(buf)) {
		return ftypBox{}, false
	}

	minor, _ := u32be(buf, 12)
	box := ftypBox{
		major: string(buf[8:12]),
		minor: minor,
	}
	for off := 16; off+4 <= int(size); off += 4 {
		box.compatible = append(box.compatible, string(buf[off:off+4]))
	}
	return box, true
}

func (b ftypBox) compatibleWith(brands ...string) bool {
	for _, c := range b.compatible {
		for _, brand := range brands {
			if c == brand {
				return true
			}
		}
	}
	return false
}
