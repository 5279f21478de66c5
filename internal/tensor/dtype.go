// Package tensor provides the payload types traced by the autodiff engine:
// raw numeric buffers, shapes, data types and the kernel Backend interface.
package tensor

// Float is a constraint for the element types a payload can hold.
type Float interface {
	~float32 | ~float64
}

// DataType identifies the element type of a payload at runtime.
type DataType int

// Supported element types. The values are part of the snapshot format.
const (
	Float32 DataType = iota
	Float64
)

var dtypeInfo = [...]struct {
	name string
	size int
}{
	Float32: {"float32", 4},
	Float64: {"float64", 8},
}

// Size returns the element width in bytes. Panics on an unknown type.
func (dt DataType) Size() int {
	if !dt.Valid() {
		panic("unknown data type")
	}
	return dtypeInfo[dt].size
}

// Valid reports whether dt is one of the supported data types.
func (dt DataType) Valid() bool {
	return dt >= 0 && int(dt) < len(dtypeInfo)
}

// String returns the element type name.
func (dt DataType) String() string {
	if !dt.Valid() {
		return "unknown"
	}
	return dtypeInfo[dt].name
}

// dataTypeOf maps a Go element type to its DataType.
func dataTypeOf[T Float]() DataType {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return Float32
	}
	return Float64
}
