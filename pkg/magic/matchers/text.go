package matchers

import "bytes"

var htmlTags = [][]byte{
	[]byte("<!DOCTYPE HTML"),
	[]byte("<HTML"),
	[]byte("<HEAD"),
	[]byte("<SCRIPT"),
	[]byte("<IFRAME"),
	[]byte("<H1"),
	[]byte("<DIV"),
	[]byte("<FONT"),
	[]byte("<TABLE"),
	[]byte("<A"),
	[]byte("<STYLE"),
	[]byte("<TITLE"),
	[]byte("<B"),
	[]byte("<BODY"),
	[]byte("<BR"),
	[]byte("<P"),
	[]byte("<!--"),
}

// HTML follows the WHATWG mime sniffing rules: after leading whitespace one
// of the known tags must appear, case-insensitively, terminated by a space
// or '>'.
func HTML(buf []byte) bool {
	buf = trimLeadingSpace(buf)
	for _, tag := range htmlTags {
		if len(buf) <= len(tag) || !bytes.EqualFold(buf[:len(tag)], tag) {
			continue
		}
		if c := buf[len(tag)]; c == ' ' || c == '>' {
			return true
		}
	}
	return false
}

func XML(buf []byte) bool {
	const decl = "<?xml"

	buf = trimLeadingSpace(buf)
	return len(buf) > len(decl) && bytes.EqualFold(buf[:len(decl)], []byte(decl))
}

// Shell matches scripts starting with an interpreter line.
func Shell(buf []byte) bool {
	return len(buf) > 2 && at(buf, 0, "#!")
}

func trimLeadingSpace(buf []byte) []byte {
	for i, c := range buf {
		switch c {
		case '\t', '\n', '\f', '\r', ' ':
			continue
		}
		return buf[i:]
	}
	return nil
}
