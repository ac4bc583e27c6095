package log

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// writeEntry assembles and emits one entry for a non-gated call. The
// timestamp is the instant the call started processing, captured by the
// facade before classification. The same classified input always produces a
// structurally identical entry except for the timestamp.
func writeEntry(logger *zerolog.Logger, level string, ts time.Time, cls classified) {
	e := logger.WithLevel(zerologLevel(level))
	e.Str(timestampFieldName, ts.UTC().Format(timestampFormat))

	fields := newFieldSet()
	for _, ctx := range cls.contexts {
		fields.merge(ctx)
	}
	for _, key := range fields.keys {
		e.Interface(key, fields.values[key])
	}

	switch len(cls.errors) {
	case 0:
	case 1:
		e.Dict(errorFieldName, errorDict(cls.errors[0]))
	default:
		// primary error first, then the full set
		e.Dict(errorFieldName, errorDict(cls.errors[0]))
		e.Int(errorCountFieldName, len(cls.errors))
		arr := zerolog.Arr()
		for _, ev := range cls.errors {
			arr.Dict(errorDict(ev))
		}
		e.Array(errorsFieldName, arr)
	}

	if msg := renderMessage(cls.fragments); msg != emptyString {
		e.Msg(msg)
	} else {
		e.Send()
	}
}

// errorDict renders one error-like value as a nested JSON object. Wrapped Go
// errors with a cause chain deeper than one link additionally carry the
// chain (outermost -> root) and the root cause message.
func errorDict(v any) *zerolog.Event {
	n := normalizeError(v)
	d := zerolog.Dict().
		Str("name", n.Name).
		Str("message", n.Message)
	if n.Stack != emptyString {
		d.Str("stack", n.Stack)
	}
	if n.Code != nil {
		d.Interface("code", n.Code)
	}
	if err, ok := v.(error); ok && !isNilValue(v) {
		if chain, root := buildErrorChain(err); len(chain) > 1 {
			d.Strs("chain", chain)
			d.Str("root", root)
		}
	}
	return d
}

// renderMessage joins the message fragments with single spaces. The field is
// omitted when the result is empty.
func renderMessage(fragments []any) string {
	if len(fragments) == 0 {
		return emptyString
	}
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, fragmentText(f))
	}
	return strings.Join(parts, " ")
}

// fragmentText converts one fragment to text: strings pass through
// unchanged, error-like values render as their stack when present and their
// message otherwise, everything else is JSON-encoded (nil becomes "null").
func fragmentText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if isErrorLike(v) {
		n := normalizeError(v)
		if n.Stack != emptyString {
			return n.Stack
		}
		return n.Message
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// fieldSet accumulates merged context fields preserving first-insertion
// order. A later value for an existing key overwrites in place, so object
// order determines precedence while key position stays stable.
type fieldSet struct {
	keys   []string
	values map[string]any
}

func newFieldSet() *fieldSet {
	return &fieldSet{values: make(map[string]any)}
}

func (f *fieldSet) set(key string, value any) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// merge shallow-merges one context object into the set. Map keys are visited
// in sorted order so entries are deterministic; struct fields follow their
// declaration order and honor json tags; slice and array elements merge
// under their index.
func (f *fieldSet) merge(ctx any) {
	rv := derefValue(reflect.ValueOf(ctx))
	if !rv.IsValid() {
		return
	}
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		elems := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			elems[k] = iter.Value().Interface()
		}
		sort.Strings(keys)
		for _, k := range keys {
			f.set(k, elems[k])
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Name
			if tag, ok := field.Tag.Lookup("json"); ok {
				tagName, _, _ := strings.Cut(tag, ",")
				if tagName == "-" {
					continue
				}
				if tagName != emptyString {
					name = tagName
				}
			}
			f.set(name, rv.Field(i).Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			f.set(strconv.Itoa(i), rv.Index(i).Interface())
		}
	}
}
