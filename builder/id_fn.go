// Package builder provides internal helper functions and types
// for configuring label schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex label from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DecimalIDFn returns the one-based decimal string of idx, e.g. 0→"1", 41→"42",
// so labels match the vertex ids the builder assigns.
// Panics if idx < 0.
func DecimalIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("DecimalIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.Itoa(idx + 1)
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(1) extra space.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 { // 26 alphabet size
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + one-based decimal index, e.g. "city1", "city2", ...
// Panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// ParseIDScheme resolves a scheme name: "excel" (default, also ""),
// "decimal", or "prefix:<p>".
func ParseIDScheme(name string) (IDFn, error) {
	switch {
	case name == "" || name == "excel":
		return ExcelColumnIDFn, nil
	case name == "decimal":
		return DecimalIDFn, nil
	case len(name) > len(prefixScheme) && name[:len(prefixScheme)] == prefixScheme:
		return PrefixIDFn(name[len(prefixScheme):]), nil
	default:
		return nil, fmt.Errorf("builder: unknown id scheme %q: %w", name, ErrOptionViolation)
	}
}

const prefixScheme = "prefix:"
