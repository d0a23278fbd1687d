package matchers

func odf(buf []byte, kind string) bool {
	return at(buf, 0, zipLocalHeader) &&
		at(buf, 0x1e, "mimetype") &&
		at(buf, 0x32, "vnd.oasis.opendocument."+kind)
}

func ODT(buf []byte) bool { return odf(buf, "text") }
func ODS(buf []byte) bool { return odf(buf, "spreadsheet") }
func ODP(buf []byte) bool { return odf(buf, "presentation") }
