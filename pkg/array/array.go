package array

import (
	"errors"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/pipes/pkg/rop"
)

var (
	ErrNotFound   = errors.New("array: no matching element")
	ErrOutOfRange = errors.New("array: index out of range")
)

// Number is any type Sum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// Indexed pairs an element with its position in the source slice.
type Indexed[A any] struct {
	Index int
	Value A
}

// Parts is the output of Partition.
type Parts[A any] struct {
	Pass []A
	Fail []A
}

func Map[A, B any](f func(A) B) func([]A) []B {
	return func(source []A) []B {
		mapped := make([]B, len(source))
		for i, v := range source {
			mapped[i] = f(v)
		}
		return mapped
	}
}

func FlatMap[A, B any](f func(A) []B) func([]A) []B {
	return func(source []A) []B {
		flat := make([]B, 0, len(source))
		for _, v := range source {
			flat = append(flat, f(v)...)
		}
		return flat
	}
}

// FindMap returns the first f(v) that reports true.
func FindMap[A, B any](f func(A) (B, bool)) func([]A) rop.Result[B, error] {
	return func(source []A) rop.Result[B, error] {
		for _, v := range source {
			if mapped, ok := f(v); ok {
				return rop.Ok[B, error](mapped)
			}
		}
		return rop.Err[B](ErrNotFound)
	}
}

// FilterMap keeps every f(v) that reports true.
func FilterMap[A, B any](f func(A) (B, bool)) func([]A) []B {
	return func(source []A) []B {
		filtered := make([]B, 0, len(source))
		for _, v := range source {
			if mapped, ok := f(v); ok {
				filtered = append(filtered, mapped)
			}
		}
		return filtered
	}
}

// ForEach calls f on every element and returns the source, so it can sit in
// the middle of a pipe.
func ForEach[A any](f func(A)) func([]A) []A {
	return func(source []A) []A {
		for _, v := range source {
			f(v)
		}
		return source
	}
}

func Filter[A any](predicate func(A) bool) func([]A) []A {
	return func(source []A) []A {
		filtered := make([]A, 0, len(source))
		for _, v := range source {
			if predicate(v) {
				filtered = append(filtered, v)
			}
		}
		return filtered
	}
}

func Reduce[A, B any](f func(acc B, v A) B, initial B) func([]A) B {
	return Fold(initial, f)
}

func Fold[A, B any](initial B, f func(acc B, v A) B) func([]A) B {
	return func(source []A) B {
		acc := initial
		for _, v := range source {
			acc = f(acc, v)
		}
		return acc
	}
}

// FoldRight folds from the last element to the first.
func FoldRight[A, B any](initial B, f func(acc B, v A) B) func([]A) B {
	return func(source []A) B {
		acc := initial
		for i := len(source) - 1; i >= 0; i-- {
			acc = f(acc, source[i])
		}
		return acc
	}
}

// All reports whether every element satisfies predicate. True for an empty slice.
func All[A any](predicate func(A) bool) func([]A) bool {
	return func(source []A) bool {
		for _, v := range source {
			if !predicate(v) {
				return false
			}
		}
		return true
	}
}

func Some[A any](predicate func(A) bool) func([]A) bool {
	return func(source []A) bool {
		return slices.ContainsFunc(source, predicate)
	}
}

func None[A any](predicate func(A) bool) func([]A) bool {
	some := Some(predicate)
	return func(source []A) bool {
		return !some(source)
	}
}

func Find[A any](predicate func(A) bool) func([]A) rop.Result[A, error] {
	return func(source []A) rop.Result[A, error] {
		if i := slices.IndexFunc(source, predicate); i >= 0 {
			return rop.Ok[A, error](source[i])
		}
		return rop.Err[A](ErrNotFound)
	}
}

// Position returns the index of the first match, or -1.
func Position[A any](predicate func(A) bool) func([]A) int {
	return func(source []A) int {
		return slices.IndexFunc(source, predicate)
	}
}

func Sum[N Number]() func([]N) N {
	return Fold(N(0), func(total N, v N) N { return total + v })
}

// Take returns a copy of the first n elements.
func Take[A any](n int) func([]A) []A {
	return func(source []A) []A {
		return slices.Clone(source[:clamp(n, len(source))])
	}
}

// TakeWhile returns a copy of the leading elements that satisfy predicate.
func TakeWhile[A any](predicate func(A) bool) func([]A) []A {
	return func(source []A) []A {
		return slices.Clone(source[:leading(source, predicate)])
	}
}

// Skip returns a copy of the source without its first n elements.
func Skip[A any](n int) func([]A) []A {
	return func(source []A) []A {
		return slices.Clone(source[clamp(n, len(source)):])
	}
}

func SkipWhile[A any](predicate func(A) bool) func([]A) []A {
	return func(source []A) []A {
		return slices.Clone(source[leading(source, predicate):])
	}
}

// Chain appends tail to the source in a new slice.
func Chain[A any](tail []A) func([]A) []A {
	return func(source []A) []A {
		return slices.Concat(source, tail)
	}
}

func Count[A any]() func([]A) int {
	return func(source []A) int {
		return len(source)
	}
}

func CountFunc[A any](predicate func(A) bool) func([]A) int {
	return func(source []A) int {
		n := 0
		for _, v := range source {
			if predicate(v) {
				n++
			}
		}
		return n
	}
}

func Partition[A any](predicate func(A) bool) func([]A) Parts[A] {
	return func(source []A) Parts[A] {
		parts := Parts[A]{
			Pass: []A{},
			Fail: []A{},
		}
		for _, v := range source {
			if predicate(v) {
				parts.Pass = append(parts.Pass, v)
			} else {
				parts.Fail = append(parts.Fail, v)
			}
		}
		return parts
	}
}

// Inspect calls f on every element and returns a copy of the source.
func Inspect[A any](f func(A)) func([]A) []A {
	return func(source []A) []A {
		inspected := make([]A, len(source))
		for i, v := range source {
			f(v)
			inspected[i] = v
		}
		return inspected
	}
}

func First[A any]() func([]A) rop.Result[A, error] {
	return Nth[A](0)
}

func Last[A any]() func([]A) rop.Result[A, error] {
	return func(source []A) rop.Result[A, error] {
		return Nth[A](len(source) - 1)(source)
	}
}

func Nth[A any](n int) func([]A) rop.Result[A, error] {
	return func(source []A) rop.Result[A, error] {
		if n < 0 || n >= len(source) {
			return rop.Err[A](ErrOutOfRange)
		}
		return rop.Ok[A, error](source[n])
	}
}

// Range returns start, start+1, ..., end-1. It is empty when end <= start.
func Range(start, end int) []int {
	if end <= start {
		return []int{}
	}
	r := make([]int, end-start)
	for i := range r {
		r[i] = start + i
	}
	return r
}

func RangeInclusive(start, end int) []int {
	return Range(start, end+1)
}

func Enumerate[A any]() func([]A) []Indexed[A] {
	return func(source []A) []Indexed[A] {
		indexed := make([]Indexed[A], len(source))
		for i, v := range source {
			indexed[i] = Indexed[A]{Index: i, Value: v}
		}
		return indexed
	}
}

func clamp(n, size int) int {
	return max(0, min(n, size))
}

func leading[A any](source []A, predicate func(A) bool) int {
	i := 0
	for i < len(source) && predicate(source[i]) {
		i++
	}
	return i
}
