package matchers

func MIDI(buf []byte) bool {
	return at(buf, 0, "MThd")
}

// MP3 matches an ID3v2 tag or an MPEG-1 layer III frame sync without CRC.
func MP3(buf []byte) bool {
	return len(buf) > 2 && anyAt(buf, 0, "ID3", "\xff\xfb")
}

func M4A(buf []byte) bool {
	return at(buf, 4, "ftypM4A") || at(buf, 0, "M4A ")
}

// Opus matches an Ogg stream whose first packet is an Opus header.
func Opus(buf []byte) bool {
	return at(buf, 0, "OggS") && at(buf, 28, "OpusHead")
}

func Ogg(buf []byte) bool {
	return at(buf, 0, "OggS")
}

func FLAC(buf []byte) bool {
	return at(buf, 0, "fLaC")
}

func WAV(buf []byte) bool {
	return at(buf, 0, "RIFF") && at(buf, 8, "WAVE")
}

func AMR(buf []byte) bool {
	return len(buf) > 11 && at(buf, 0, "#!AMR\n")
}

// AAC matches an ADTS frame header (MPEG-4 and MPEG-2).
func AAC(buf []byte) bool {
	return len(buf) > 1 && buf[0] == 0xff && (buf[1] == 0xf1 || buf[1] == 0xf9)
}

func AIFF(buf []byte) bool {
	return at(buf, 0, "FORM") && at(buf, 8, "AIFF")
}

func DSF(buf []byte) bool {
	return at(buf, 0, "DSD ")
}

func APE(buf []byte) bool {
	return at(buf, 0, "MAC ")
}
