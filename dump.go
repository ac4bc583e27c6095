package log

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Maximum recursion depth and slice elements included per dump.
const (
	maxDumpDepth    = 10
	maxDumpElements = 10
)

// Dump logs the full structure of v as a single debug-level entry whose
// fields are the flattened contents: struct fields under "value.Field", map
// entries under "value[key]", slice elements under "value[i]". It follows
// the normal debug gate and guards against cycles and excessive depth.
func (s *Service) Dump(v any) {
	if s == nil {
		return
	}
	r, _ := Rank(LevelDebug)
	if int32(r) > s.threshold.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}

	e := logger.WithLevel(zerolog.DebugLevel)
	e.Str(timestampFieldName, time.Now().UTC().Format(timestampFormat))

	visited := make(map[uintptr]bool)
	dumpValue(e, "value", v, visited, 0)
	e.Msg("dump")
}

func dumpValue(e *zerolog.Event, prefix string, v any, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		e.Str(prefix, "<max depth reached>")
		return
	}
	if v == nil {
		e.Str(prefix, "<nil>")
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers with cycle detection.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Pointer {
		if val.IsNil() {
			e.Str(prefix, "<nil>")
			return
		}
		if val.Kind() == reflect.Pointer {
			ptr := val.Pointer()
			if visited[ptr] {
				e.Str(prefix, "<circular reference>")
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		t := val.Type()
		for i := 0; i < t.NumField(); i++ {
			fv := val.Field(i)
			if !fv.CanInterface() {
				continue
			}
			dumpValue(e, prefix+"."+t.Field(i).Name, fv.Interface(), visited, depth+1)
		}

	case reflect.Map:
		keys := make([]string, 0, val.Len())
		elems := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			elems[k] = iter.Value().Interface()
		}
		sort.Strings(keys)
		for _, k := range keys {
			dumpValue(e, prefix+"["+k+"]", elems[k], visited, depth+1)
		}

	case reflect.Slice, reflect.Array:
		n := val.Len()
		for i := 0; i < n && i < maxDumpElements; i++ {
			elem := val.Index(i)
			if !elem.CanInterface() {
				continue
			}
			dumpValue(e, fmt.Sprintf("%s[%d]", prefix, i), elem.Interface(), visited, depth+1)
		}
		if n > maxDumpElements {
			e.Str(prefix, fmt.Sprintf("<%d more elements>", n-maxDumpElements))
		}

	default:
		if val.IsValid() && val.CanInterface() {
			e.Interface(prefix, val.Interface())
		} else {
			e.Str(prefix, fmt.Sprint(v))
		}
	}
}
