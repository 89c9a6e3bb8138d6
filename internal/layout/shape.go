package layout

import (
	"fmt"
	"reflect"
)

// Shape describes a record layout: a fixed, ordered list of field types.
// It is the pure-function input from which every combined block layout is
// derived; two blocks built from the same Shape and capacity are laid out
// identically.
type Shape struct {
	types []reflect.Type
	sizes []uintptr
}

// NewShape creates a Shape from the given field types, in field order.
// It panics when no field types are supplied.
func NewShape(types ...reflect.Type) *Shape {
	if len(types) == 0 {
		panic("soavec/layout: shape needs at least one field")
	}
	sizes := make([]uintptr, len(types))
	for i, t := range types {
		if t == nil {
			panic(fmt.Sprintf("soavec/layout: nil field type at index %d", i))
		}
		sizes[i] = t.Size()
	}
	return &Shape{types: types, sizes: sizes}
}

// Arity returns the number of fields in the shape.
func (s *Shape) Arity() int {
	return len(s.types)
}

// Size returns the element size of field i in bytes.
// Zero-size field types report 0 and occupy no block bytes.
func (s *Shape) Size(i int) uintptr {
	return s.sizes[i]
}

// Field returns the type of field i.
func (s *Shape) Field(i int) reflect.Type {
	return s.types[i]
}

// blockType builds the combined allocation type for the given capacity:
// a struct with one fixed-size array field per shape field. reflect.StructOf
// inserts the alignment padding between columns and caches the resulting
// type, so this is cheap to call repeatedly for the same (shape, capacity).
func (s *Shape) blockType(capacity int) reflect.Type {
	fields := make([]reflect.StructField, len(s.types))
	for i, t := range s.types {
		fields[i] = reflect.StructField{
			Name: fmt.Sprintf("F%d", i),
			Type: reflect.ArrayOf(capacity, t),
		}
	}
	return reflect.StructOf(fields)
}
