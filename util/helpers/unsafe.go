package helpers

import (
	"reflect"
	"unsafe"
)

func Sizeof[T any](v T) int {
	return int(reflect.TypeOf(v).Size())
}

// Frombytes copies srcBytes into a fresh T-sized buffer and reinterprets it as
// *dst, so the caller gets an independent snapshot rather than a live alias
// into srcBytes.
func Frombytes[T any](srcBytes []byte, dst *T) {
	dstBytes := make([]byte, Sizeof(*dst))
	copy(dstBytes, srcBytes)
	*dst = *(*T)(unsafe.Pointer(&dstBytes[0]))
}
