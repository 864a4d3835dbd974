package transform

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

// overlaps reports whether a and b share any byte of memory.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return aStart < bStart+uintptr(len(b)) && bStart < aStart+uintptr(len(a))
}

// reject logs a refused call and returns err unchanged.
func reject(function string, err error, fields logrus.Fields) error {
	fields["function"] = function
	fields["error"] = err.Error()
	logrus.WithFields(fields).Debug("Transform input rejected")
	return err
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
