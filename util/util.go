package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Mod is the euclidean remainder, always in [0, n).
func Mod[A constraints.Integer](a A, n A) A {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Integer](v A, lo A, hi A) A {
	if hi < lo {
		return lo
	}
	return Max(lo, Min(v, hi))
}

// Rotate returns a new slice with the first n elements moved to the end.
func Rotate[A any](s []A, n int) []A {
	res := make([]A, 0, len(s))
	if len(s) == 0 {
		return res
	}
	n = Mod(n, len(s))
	res = append(res, s[n:]...)
	res = append(res, s[:n]...)
	return res
}
