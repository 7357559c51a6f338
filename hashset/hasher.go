package hashset

import (
	"fmt"
	"hash/fnv"
	"math"
	"reflect"

	"github.com/cnf/structhash"
)

// Hashable is implemented by element types that define their own hash code and
// equivalence. DefaultHasher prefers these methods over structural hashing.
//
// Equal elements must return equal hash codes.
type Hashable[E any] interface {
	HashCode() int
	Equals(other E) bool
}

// Hasher supplies the hash function and the equivalence relation of a set.
type Hasher[E any] interface {
	Hash(e E) int
	Equal(a, b E) bool
}

// HasherFuncs adapts a pair of functions to the Hasher interface.
type HasherFuncs[E any] struct {
	HashFunc  func(e E) int
	EqualFunc func(a, b E) bool
}

func (h HasherFuncs[E]) Hash(e E) int {
	return h.HashFunc(e)
}

func (h HasherFuncs[E]) Equal(a, b E) bool {
	return h.EqualFunc(a, b)
}

type defaultHasher[E any] struct{}

// DefaultHasher returns a Hasher usable with any element type.
//
// Nil elements hash to 0 and are only equal to each other. Elements that
// implement Hashable use it. Integers hash to their own value, structs are hashed
// over their exported fields, everything else over its printed form. Equality is
// reflect.DeepEqual.
func DefaultHasher[E any]() Hasher[E] {
	return defaultHasher[E]{}
}

func (defaultHasher[E]) Hash(e E) int {
	if isNil(e) {
		return 0
	}
	if h, ok := any(e).(Hashable[E]); ok {
		return h.HashCode()
	}
	return hashValue(e)
}

func (defaultHasher[E]) Equal(a, b E) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if h, ok := any(a).(Hashable[E]); ok {
		return h.Equals(b)
	}
	return reflect.DeepEqual(a, b)
}

type comparableHasher[E comparable] struct{}

// ComparableHasher returns a Hasher that compares elements with ==.
//
// Comparing interface values that hold incomparable dynamic types panics, as
// == does.
func ComparableHasher[E comparable]() Hasher[E] {
	return comparableHasher[E]{}
}

func (comparableHasher[E]) Hash(e E) int {
	if isNil(e) {
		return 0
	}
	return hashValue(e)
}

func (comparableHasher[E]) Equal(a, b E) bool {
	return a == b
}

// hashValue hashes v by its kind. Pointers and interfaces are followed so the
// result stays consistent with reflect.DeepEqual.
func hashValue(v any) int {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 {
			// 0 and -0 are equal
			return 0
		}
		bits := math.Float64bits(f)
		return int(int32(bits ^ (bits >> 32)))
	case reflect.String:
		return fnvHash([]byte(rv.String()))
	case reflect.Struct:
		return fnvHash(structhash.Dump(rv.Interface(), 1))
	default:
		return fnvHash([]byte(fmt.Sprintf("%v", rv.Interface())))
	}
}

func fnvHash(b []byte) int {
	hasher := fnv.New32a()
	hasher.Write(b)
	return int(int32(hasher.Sum32()))
}

// isNil reports whether v is nil or a nil value of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// indexFor maps a hash code onto a bucket: |hash| mod capacity. The absolute
// value is taken in unsigned arithmetic so the most negative int stays in range.
func indexFor(hash, capacity int) int {
	u := uint64(hash)
	if hash < 0 {
		u = -u
	}
	return int(u % uint64(capacity))
}
