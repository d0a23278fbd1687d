package matchers

func EPUB(buf []byte) bool {
	return at(buf, 0, zipLocalHeader) && at(buf, 30, "mimetypeapplication/epub+zip")
}

func MOBI(buf []byte) bool {
	return at(buf, 60, "BOOKMOBI")
}
