// Package pool adapts heterogeneous candidate pools into flat lists of
// string leaves. A pool is one of three shapes: a sequence of values, a
// string-keyed mapping with arbitrarily nested mapping values, or a single
// delimited string. The shape is resolved once by Classify and the matcher
// only ever sees the flattened leaves.
package pool

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/standardbeagle/sift/internal/normalize"
)

// Kind is the closed set of candidate-pool shapes.
type Kind int

const (
	KindInvalid Kind = iota
	KindSequence
	KindMapping
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindScalar:
		return "scalar"
	default:
		return "invalid"
	}
}

// ErrUnsupported reports a candidate pool that is none of the three shapes.
var ErrUnsupported = errors.New("unsupported source type")

// Classify resolves the pool's shape. Slices and arrays are sequences,
// string-keyed maps are mappings, strings are scalars. Anything else
// (numbers, booleans, nil, non-string-keyed maps) is an error.
func Classify(src any) (Kind, error) {
	if src == nil {
		return KindInvalid, fmt.Errorf("%w: nil", ErrUnsupported)
	}
	if _, ok := src.(string); ok {
		return KindScalar, nil
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence, nil
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			return KindMapping, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %T", ErrUnsupported, src)
}

// Leaves flattens the pool into its terminal string values, depth-first.
// Mapping keys are visited in sorted order so the leaf order is
// deterministic. Scalars are tokenized on the default delimiter and each
// token becomes a leaf. Non-container, non-string values nested inside a
// sequence or mapping are coerced to their string form.
func Leaves(src any, kind Kind) []string {
	switch kind {
	case KindScalar:
		return normalize.Tokenize(src.(string), normalize.DefaultDelimiter)
	case KindSequence, KindMapping:
		w := walker{seen: make(map[uintptr]struct{})}
		w.walk(reflect.ValueOf(src))
		return w.leaves
	default:
		return nil
	}
}

// walker performs the depth-first descent. seen tracks the identities of
// visited maps and slices so self-referential pools terminate instead of
// recursing forever.
type walker struct {
	seen   map[uintptr]struct{}
	leaves []string
}

func (w *walker) walk(v reflect.Value) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			w.leaf(v)
			return
		}
		if !w.mark(v.Pointer()) {
			return
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			w.walk(v.MapIndex(k))
		}
	case reflect.Slice:
		if v.Len() > 0 && !w.mark(v.Pointer()) {
			return
		}
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i))
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i))
		}
	default:
		w.leaf(v)
	}
}

// mark records a container identity, reporting false if already visited.
func (w *walker) mark(ptr uintptr) bool {
	if _, ok := w.seen[ptr]; ok {
		return false
	}
	w.seen[ptr] = struct{}{}
	return true
}

func (w *walker) leaf(v reflect.Value) {
	if v.Kind() == reflect.String {
		w.leaves = append(w.leaves, v.String())
		return
	}
	w.leaves = append(w.leaves, fmt.Sprint(v.Interface()))
}
