package util

import (
	"iter"
	"sort"
)

// TransformSlice applies converter to each element of in, used by
// cmd/toon's --debug output to turn a root array's elements into
// per-element type-label rows.
func TransformSlice[T any, R any](in []T, converter func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = converter(v)
	}
	return out
}

// CanonicalMapIter yields map entries in sorted key order, used by
// testutil.LoadCases so a YAML fixture file's cases.yaml runs in a
// deterministic, reviewable order regardless of Go's map iteration order.
func CanonicalMapIter[T any](m map[string]T) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
