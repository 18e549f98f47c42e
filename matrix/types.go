// SPDX-License-Identifier: MIT

package matrix

// Element is the set of element types a Block can hold.
// All of them are pointer-free: the data segment may live in memory the
// garbage collector does not scan (see rawalloc.Mmap).
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// noCopy makes `go vet` (copylocks) report value copies of handles.
// A copied handle would release the same allocation twice.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
