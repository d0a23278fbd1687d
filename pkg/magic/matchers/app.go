package matchers

const cafebabe = "\xca\xfe\xba\xbe"

// classVersionMin is the lowest class file major version (JDK 1.1).
// A fat Mach-O header stores its architecture count in the same position,
// which in practice stays far below it.
const classVersionMin = 45

func Wasm(buf []byte) bool {
	return at(buf, 0, "\x00asm\x01\x00\x00\x00")
}

func ELF(buf []byte) bool {
	return len(buf) > 52 && at(buf, 0, "\x7fELF")
}

// Class matches a Java class file.
func Class(buf []byte) bool {
	if !at(buf, 0, cafebabe) {
		return false
	}
	v, ok := u32be(buf, 4)
	return ok && v >= classVersionMin
}

// LLVM matches LLVM bitcode.
func LLVM(buf []byte) bool {
	return at(buf, 0, "BC\xc0\xde")
}

// Mach matches thin Mach-O binaries of either byte order and fat
// (universal) binaries.
func Mach(buf []byte) bool {
	if anyAt(buf, 0,
		"\xfe\xed\xfa\xce", "\xfe\xed\xfa\xcf",
		"\xce\xfa\xed\xfe", "\xcf\xfa\xed\xfe") {
		return true
	}
	if !at(buf, 0, cafebabe) {
		return false
	}
	n, ok := u32be(buf, 4)
	return ok && n > 0 && n < classVersionMin
}

// Dex matches a Dalvik executable.
func Dex(buf []byte) bool {
	return len(buf) > 36 && at(buf, 0, "dex\n") && buf[36] == 0x70
}

// Dey matches an optimized Dalvik executable wrapping a dex file.
func Dey(buf []byte) bool {
	return len(buf) > 100 && at(buf, 0, "dey\n") && Dex(buf[40:100])
}

// DER matches a DER encoded certificate.
func DER(buf []byte) bool {
	return at(buf, 0, "\x30\x82")
}

// EXE matches a DOS MZ header. PE executables and DLLs share it.
func EXE(buf []byte) bool {
	return at(buf, 0, "MZ")
}
