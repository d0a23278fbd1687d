package matchers

func WOFF(buf []byte) bool {
	return at(buf, 0, "wOFF\x00\x01\x00\x00")
}

func WOFF2(buf []byte) bool {
	return at(buf, 0, "wOF2\x00\x01\x00\x00")
}

func TTF(buf []byte) bool {
	return at(buf, 0, "\x00\x01\x00\x00\x00")
}

func OTF(buf []byte) bool {
	return at(buf, 0, "OTTO\x00")
}
