package pixfilter

// DType identifies the sample type of an [Array].
// Only [Uint8] is accepted by the filters; the remaining types exist so that
// callers can describe what they hold and get a precise validation error.
type DType uint8

const (
	// Uint8 is an unsigned 8-bit sample, the only type filters accept.
	Uint8 DType = iota

	// Int8 is a signed 8-bit sample.
	Int8

	// Uint16 is an unsigned 16-bit sample.
	Uint16

	// Int16 is a signed 16-bit sample.
	Int16

	// Uint32 is an unsigned 32-bit sample.
	Uint32

	// Int32 is a signed 32-bit sample.
	Int32

	// Uint64 is an unsigned 64-bit sample.
	Uint64

	// Int64 is a signed 64-bit sample.
	Int64

	// Float32 is an IEEE-754 single precision sample.
	Float32

	// Float64 is an IEEE-754 double precision sample.
	Float64

	// dtypeCount is the number of sample types (for internal use).
	dtypeCount
)

// DTypeInfo contains metadata about a sample type.
type DTypeInfo struct {
	// Name is the conventional lower-case name (e.g. "uint8").
	Name string

	// Size is the number of bytes per sample.
	Size int

	// IsFloat indicates a floating point type.
	IsFloat bool

	// IsSigned indicates a signed type.
	IsSigned bool
}

// dtypeInfoTable contains metadata for each sample type.
var dtypeInfoTable = [dtypeCount]DTypeInfo{
	Uint8:   {Name: "uint8", Size: 1},
	Int8:    {Name: "int8", Size: 1, IsSigned: true},
	Uint16:  {Name: "uint16", Size: 2},
	Int16:   {Name: "int16", Size: 2, IsSigned: true},
	Uint32:  {Name: "uint32", Size: 4},
	Int32:   {Name: "int32", Size: 4, IsSigned: true},
	Uint64:  {Name: "uint64", Size: 8},
	Int64:   {Name: "int64", Size: 8, IsSigned: true},
	Float32: {Name: "float32", Size: 4, IsFloat: true, IsSigned: true},
	Float64: {Name: "float64", Size: 8, IsFloat: true, IsSigned: true},
}

// Info returns the DTypeInfo for this sample type.
func (d DType) Info() DTypeInfo {
	if d >= dtypeCount {
		return DTypeInfo{}
	}
	return dtypeInfoTable[d]
}

// Size returns the number of bytes per sample, or 0 for unknown types.
func (d DType) Size() int {
	return d.Info().Size
}

// IsValid returns true if d is a known sample type.
func (d DType) IsValid() bool {
	return d < dtypeCount
}

// String returns the conventional name of the sample type.
func (d DType) String() string {
	if !d.IsValid() {
		return "unknown"
	}
	return dtypeInfoTable[d].Name
}
