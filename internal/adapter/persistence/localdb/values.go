package localdb

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// toNumber reports v as float64 when it is numeric. Stored rows always hold
// float64, while callers may filter with int or a numeric string.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func valuesEqual(a, b any) bool {
	na, aNum := toNumber(a)
	nb, bNum := toNumber(b)
	switch {
	case aNum && bNum:
		return na == nb
	case aNum:
		if s, ok := b.(string); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			return err == nil && f == na
		}
	case bNum:
		if s, ok := a.(string); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			return err == nil && f == nb
		}
	}
	if sa, ok := a.(string); ok {
		if bb, ok := b.(bool); ok {
			return sa == strconv.FormatBool(bb)
		}
	}
	if sb, ok := b.(string); ok {
		if ba, ok := a.(bool); ok {
			return sb == strconv.FormatBool(ba)
		}
	}
	return reflect.DeepEqual(a, b)
}

// compareValues orders nil first, then numbers, booleans and strings by their
// natural order. Values of different kinds compare by their printed form.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if na, ok := toNumber(a); ok {
		if nb, ok := toNumber(b); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
