package log

import (
	stderrs "errors"
	"fmt"
	"reflect"

	pkgerrors "github.com/pkg/errors"
)

// NormalizedError is the canonical shape every error-like value is reduced
// to, independent of its original representation.
type NormalizedError struct {
	Name    string
	Message string
	Stack   string // empty when the input carried no stack
	Code    any    // nil when the input carried no code
}

// stackTracer is the pkg/errors capability for errors that captured a stack
// at creation time.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// normalizeError reduces any error-like value to a NormalizedError. It never
// panics: malformed inputs degrade to safe defaults (Name "Error", empty
// message, no stack, no code).
func normalizeError(v any) NormalizedError {
	n := NormalizedError{Name: "Error"}

	if name, ok := errorAttr(v, "name", "Name"); ok {
		if s, ok := name.(string); ok && s != emptyString {
			n.Name = s
		}
	}

	if err, ok := v.(error); ok {
		if !isNilValue(v) {
			n.Message = err.Error()
		}
	} else if msg, ok := errorAttr(v, "message", "Message"); ok {
		n.Message = coerceString(msg)
	}

	if stack, ok := errorAttr(v, "stack", "Stack"); ok {
		// kept only if it is already a string
		if s, ok := stack.(string); ok {
			n.Stack = s
		}
	}
	if n.Stack == emptyString {
		if st, ok := v.(stackTracer); ok && !isNilValue(v) {
			n.Stack = fmt.Sprintf("%+v", st.StackTrace())
		}
	}

	if code, ok := errorAttr(v, "code", "Code"); ok {
		n.Code = code
	}

	return n
}

// errorAttr looks up an attribute on a duck-typed error-like value: a
// "mapKey" entry in a string-keyed map, or an exported "fieldName" struct
// field. Accessor methods of the form Name()/Message() are covered by the
// struct path's method set check below.
func errorAttr(v any, mapKey, fieldName string) (any, bool) {
	rv := derefValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(mapKey).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		if mv.Kind() == reflect.Interface && mv.IsNil() {
			return nil, true
		}
		return mv.Interface(), true
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(fieldName)
		if !ok || !f.IsExported() {
			return methodAttr(v, fieldName)
		}
		fv := rv.FieldByIndex(f.Index)
		if fv.Kind() == reflect.Interface && fv.IsNil() {
			return nil, true
		}
		return fv.Interface(), true
	default:
		return methodAttr(v, fieldName)
	}
}

// methodAttr resolves a nullary string accessor such as Name() or Message().
func methodAttr(v any, name string) (any, bool) {
	if isNilValue(v) {
		return nil, false
	}
	m := reflect.ValueOf(v).MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 || t.Out(0).Kind() != reflect.String {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

// coerceString renders a message attribute to its string form; nil becomes
// the empty string.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return emptyString
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

// buildErrorChain walks an error's cause chain and returns the messages from
// outermost to innermost plus the innermost (root) message. The traversal
// prefers pkg/errors Cause() links and falls back to stdlib Unwrap. It
// guards against excessive depth and repeated messages to avoid cycles.
func buildErrorChain(err error) (chain []string, root string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for depth := 0; err != nil && depth < maxDepth; depth++ {
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)

		if causer, ok := err.(interface{ Cause() error }); ok {
			err = causer.Cause()
			continue
		}
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return chain, root
}
