package resume

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// usable reports whether a value counts as provided. Missing keys, nil,
// empty strings, false and zero numbers fall through to the next candidate.
func usable(value interface{}) (ok bool) {
	switch v := value.(type) {
	case nil:
		ok = false
	case string:
		ok = v != ""
	case bool:
		ok = v
	case float64:
		ok = v != 0 && !math.IsNaN(v)
	case float32:
		ok = v != 0
	case int:
		ok = v != 0
	case int64:
		ok = v != 0
	case int32:
		ok = v != 0
	case uint64:
		ok = v != 0
	case time.Time:
		ok = !v.IsZero()
	case *time.Time:
		ok = v != nil && !v.IsZero()
	default:
		ok = true
	}
	return ok
}

// firstScalar walks the candidate keys in order and returns the first usable
// scalar. Objects and sequences under a key are malformed and skipped.
func firstScalar(record Record, keys ...string) (value interface{}, found bool) {
	for _, key := range keys {
		candidate, exists := record[key]
		if exists && usable(candidate) && isScalar(candidate) {
			value = candidate
			found = true
			return value, found
		}
	}
	return value, found
}

// firstString resolves a fallback chain to a string, using def when no key
// holds a usable scalar.
func firstString(record Record, def string, keys ...string) (result string) {
	value, found := firstScalar(record, keys...)
	if !found {
		result = def
		return result
	}
	result = stringify(value)
	return result
}

// stringify renders a scalar the way it would appear in a document.
func stringify(value interface{}) (result string) {
	switch v := value.(type) {
	case nil:
		result = ""
	case string:
		result = v
	case float64:
		result = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		result = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		result = strconv.FormatBool(v)
	case fmt.Stringer:
		result = v.String()
	default:
		result = fmt.Sprint(v)
	}
	return result
}

// asRecord returns value as a Record, or an empty Record when it is not an object.
func asRecord(value interface{}) (record Record) {
	switch v := value.(type) {
	case Record:
		record = v
	case map[string]interface{}:
		record = Record(v)
	default:
		record = Record{}
	}
	return record
}

// isScalar reports whether value is neither an object nor a sequence.
func isScalar(value interface{}) (ok bool) {
	if isObject(value) {
		return ok
	}
	_, isList := asList(value)
	ok = !isList
	return ok
}

func isObject(value interface{}) (ok bool) {
	switch value.(type) {
	case Record, map[string]interface{}:
		ok = true
	}
	return ok
}

// asList returns value as a slice when it is a sequence.
func asList(value interface{}) (list []interface{}, ok bool) {
	switch v := value.(type) {
	case []interface{}:
		list = v
		ok = true
	case []string:
		list = make([]interface{}, len(v))
		for i, s := range v {
			list[i] = s
		}
		ok = true
	case []map[string]interface{}:
		list = make([]interface{}, len(v))
		for i, m := range v {
			list[i] = m
		}
		ok = true
	}
	return list, ok
}

// splitList turns "Go, Rust" into ["Go", "Rust"].
func splitList(value string) (parts []string) {
	raw := strings.Split(value, ",")
	parts = make([]string, len(raw))
	for i, part := range raw {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
