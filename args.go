package printf

import "unsafe"

// ArgSource supplies one value per conversion directive. The resolved
// length class of each directive selects which method runs; narrow
// classes read through [ArgSource.NextInt] or [ArgSource.NextUint] and
// the interpreter truncates afterward. Implementations are not asked to
// validate that values line up with directives; a mismatched pair
// renders a zero value rather than failing.
type ArgSource interface {
	// NextInt returns the next value as a signed machine word.
	NextInt() int
	// NextInt64 returns the next value at the 64-bit width.
	NextInt64() int64
	// NextUint returns the next value as an unsigned machine word.
	NextUint() uint
	// NextUint64 returns the next value at the unsigned 64-bit width.
	NextUint64() uint64
	// NextString returns the next value's bytes.
	NextString() string
	// NextPointer returns the next value as a raw address.
	NextPointer() uintptr
}

// argList adapts a variadic argument list, widening whatever integer
// kind the caller passed to the width the directive asks for. Reading
// past the end yields zero values.
type argList struct {
	args []any
	next int
}

func (a *argList) take() any {
	if a.next >= len(a.args) {
		return nil
	}
	v := a.args[a.next]
	a.next++
	return v
}

func (a *argList) NextInt() int       { return int(asInt64(a.take())) }
func (a *argList) NextInt64() int64   { return asInt64(a.take()) }
func (a *argList) NextUint() uint     { return uint(asUint64(a.take())) }
func (a *argList) NextUint64() uint64 { return asUint64(a.take()) }

func (a *argList) NextString() string {
	switch v := a.take().(type) {
	case string:
		return v
	case []byte:
		if len(v) == 0 {
			return ""
		}
		// Read-only view for the duration of the call; no copy.
		return unsafe.String(unsafe.SliceData(v), len(v))
	default:
		return ""
	}
}

func (a *argList) NextPointer() uintptr {
	switch v := a.take().(type) {
	case uintptr:
		return v
	case unsafe.Pointer:
		return uintptr(v)
	default:
		return 0
	}
}

// asInt64 widens any integer kind to 64 bits with sign extension.
// Non-integer values read as zero.
func asInt64(v any) int64 {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case uintptr:
		return int64(v)
	default:
		return 0
	}
}

// asUint64 reinterprets any integer kind as unsigned 64-bit, keeping
// the two's complement bit pattern of signed inputs. Non-integer values
// read as zero.
func asUint64(v any) uint64 {
	switch v := v.(type) {
	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case uintptr:
		return uint64(v)
	default:
		return 0
	}
}
