package log

import "reflect"

// classified holds a call's arguments partitioned into the three groups the
// entry builder consumes. Each slice preserves the arguments' original
// relative order.
type classified struct {
	errors    []any // error-like values
	contexts  []any // maps, structs, slices and arrays to merge as fields
	fragments []any // everything else; becomes the message
}

// classify partitions call arguments. The groups are mutually exclusive: an
// error-like value is never also treated as a context object even though it
// is map- or struct-shaped.
func classify(args []any) classified {
	var c classified
	for _, arg := range args {
		switch {
		case isErrorLike(arg):
			c.errors = append(c.errors, arg)
		case isContextObject(arg):
			c.contexts = append(c.contexts, arg)
		default:
			c.fragments = append(c.fragments, arg)
		}
	}
	return c
}

// isErrorLike reports whether v qualifies as an error value: a Go error, or
// any non-nil value exposing both a name and a message attribute.
func isErrorLike(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(error); ok {
		return true
	}
	return hasNameAndMessage(v)
}

// hasNameAndMessage is the capability predicate for duck-typed errors from
// other subsystems: Name/Message accessor methods, exported struct fields,
// or "name"/"message" keys in a string-keyed map all qualify.
func hasNameAndMessage(v any) bool {
	if _, ok := v.(interface {
		Name() string
		Message() string
	}); ok {
		return true
	}
	rv := derefValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false
		}
		return mapHasKey(rv, "name") && mapHasKey(rv, "message")
	case reflect.Struct:
		return structHasField(rv, "Name") && structHasField(rv, "Message")
	default:
		return false
	}
}

func isContextObject(v any) bool {
	if v == nil {
		return false
	}
	rv := derefValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// derefValue unwraps pointers and interfaces. It returns an invalid value
// for nil links so callers can treat them as absent.
func derefValue(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func mapHasKey(rv reflect.Value, key string) bool {
	return rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).IsValid()
}

func structHasField(rv reflect.Value, name string) bool {
	f, ok := rv.Type().FieldByName(name)
	return ok && f.IsExported()
}

// isNilValue reports whether v is a typed nil (e.g. a nil *MyError stored in
// an error interface). Calling Error() on such a value would panic.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
