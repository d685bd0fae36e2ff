// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counts

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	safemath "github.com/ava-labs/subsample/utils/math"
)

var (
	ErrShape            = errors.New("counts must be one-dimensional")
	ErrType             = errors.New("counts must be integers")
	ErrNegative         = errors.New("counts must be non-negative")
	ErrNegativeDrawSize = errors.New("draw size must be non-negative")

	jsonNumberType = reflect.TypeOf(json.Number(""))
)

// Parse validates [input] as a count vector and returns a copy of it.
//
// [input] may be any slice or array of integers, or a []any holding integers
// and json.Numbers, as produced by decoding JSON with UseNumber or by decoding
// YAML. Anything that is not exactly one-dimensional is rejected with
// ErrShape. Any element that is not an integer, including floating point
// values that happen to be integral, is rejected with ErrType.
func Parse(input any) (Vector, error) {
	if v, ok := input.(Vector); ok {
		return v.Clone(), nil
	}

	value := reflect.ValueOf(input)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: got %T", ErrShape, input)
	}

	length := value.Len()
	for i := 0; i < length; i++ {
		if isSequence(value.Index(i)) {
			return nil, fmt.Errorf("%w: element %d is a sequence", ErrShape, i)
		}
	}

	// A float typed container can't hold counts, even if it is empty.
	switch value.Type().Elem().Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil, fmt.Errorf("%w: got %T", ErrType, input)
	}

	vector := make(Vector, length)
	for i := 0; i < length; i++ {
		count, err := parseCount(value.Index(i))
		if err != nil {
			return nil, fmt.Errorf("%w: element %d", err, i)
		}
		vector[i] = count
	}
	return vector, nil
}

// ParseDrawSize validates an untyped draw size the same way vector elements
// are validated.
func ParseDrawSize(input any) (uint64, error) {
	value := reflect.ValueOf(input)
	if isSequence(value) {
		return 0, fmt.Errorf("%w: draw size must be a scalar, got %T", ErrType, input)
	}
	n, err := parseCount(value)
	if errors.Is(err, ErrNegative) {
		return 0, fmt.Errorf("%w: %v", ErrNegativeDrawSize, input)
	}
	return n, err
}

// DrawSize converts a signed draw size.
func DrawSize(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDrawSize, n)
	}
	return uint64(n), nil
}

func isSequence(value reflect.Value) bool {
	value = unwrap(value)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func unwrap(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Interface && !value.IsNil() {
		value = value.Elem()
	}
	return value
}

func parseCount(value reflect.Value) (uint64, error) {
	value = unwrap(value)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := value.Int()
		if i < 0 {
			return 0, fmt.Errorf("%w: %d", ErrNegative, i)
		}
		return uint64(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.Uint(), nil
	case reflect.String:
		if value.Type() == jsonNumberType {
			return parseNumber(value.String())
		}
	case reflect.Invalid, reflect.Interface:
		return 0, fmt.Errorf("%w: got nil", ErrType)
	}
	return 0, fmt.Errorf("%w: got %s", ErrType, value.Type())
}

// parseNumber accepts only integer literals, so "2.0" and "1e3" are rejected.
func parseNumber(s string) (uint64, error) {
	negative := strings.HasPrefix(s, "-")
	u, err := strconv.ParseUint(strings.TrimPrefix(s, "-"), 10, 64)
	switch {
	case err == nil && (u == 0 || !negative):
		return u, nil
	case err == nil, negative && errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %s", ErrNegative, s)
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %s", safemath.ErrOverflow, s)
	default:
		return 0, fmt.Errorf("%w: got non-integer number %s", ErrType, s)
	}
}
