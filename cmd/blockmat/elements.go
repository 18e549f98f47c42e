// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"
	"strings"
	"unsafe"
)

// elemGeometry is the size and alignment of each element type the CLI knows.
type elemGeometry struct {
	size, align uintptr
}

func geometryOf[T any]() elemGeometry {
	var zero T
	return elemGeometry{size: unsafe.Sizeof(zero), align: unsafe.Alignof(zero)}
}

var elemTypes = map[string]elemGeometry{
	"int8":       geometryOf[int8](),
	"int16":      geometryOf[int16](),
	"int32":      geometryOf[int32](),
	"int64":      geometryOf[int64](),
	"uint8":      geometryOf[uint8](),
	"uint16":     geometryOf[uint16](),
	"uint32":     geometryOf[uint32](),
	"uint64":     geometryOf[uint64](),
	"float32":    geometryOf[float32](),
	"float64":    geometryOf[float64](),
	"complex64":  geometryOf[complex64](),
	"complex128": geometryOf[complex128](),
}

// lookupElem resolves a --type value.
func lookupElem(name string) (elemGeometry, error) {
	g, ok := elemTypes[name]
	if !ok {
		names := make([]string, 0, len(elemTypes))
		for n := range elemTypes {
			names = append(names, n)
		}
		slices.Sort(names)
		return elemGeometry{}, fmt.Errorf("unknown element type %q (want one of %s)", name, strings.Join(names, ", "))
	}

	return g, nil
}
