package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpStruct(t *testing.T) {
	type address struct {
		City string
	}
	type person struct {
		Name    string
		Age     int
		Tags    []string
		Attrs   map[string]int
		Address *address
	}

	l, c := newCapturedLogger(t, "debug")
	l.Dump(person{
		Name:    "Ada",
		Age:     37,
		Tags:    []string{"x", "y"},
		Attrs:   map[string]int{"a": 1},
		Address: &address{City: "London"},
	})

	entry := singleEntry(t, &c.def)
	assert.Equal(t, "dump", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "Ada", entry["value.Name"])
	assert.Equal(t, float64(37), entry["value.Age"])
	assert.Equal(t, "x", entry["value.Tags[0]"])
	assert.Equal(t, "y", entry["value.Tags[1]"])
	assert.Equal(t, float64(1), entry["value.Attrs[a]"])
	assert.Equal(t, "London", entry["value.Address.City"])
}

func TestDumpNil(t *testing.T) {
	l, c := newCapturedLogger(t, "debug")
	l.Dump(nil)

	entry := singleEntry(t, &c.def)
	assert.Equal(t, "<nil>", entry["value"])
}

func TestDumpGated(t *testing.T) {
	l, c := newCapturedLogger(t, "warn")
	l.Dump(map[string]int{"a": 1})
	assert.Empty(t, c.all(t))
}

func TestDumpCircularReference(t *testing.T) {
	type node struct {
		Next *node
	}
	n := &node{}
	n.Next = n

	l, c := newCapturedLogger(t, "debug")
	l.Dump(n)

	entry := singleEntry(t, &c.def)
	assert.Equal(t, "<circular reference>", entry["value.Next"])
}

func TestDumpLargeSliceCapped(t *testing.T) {
	vals := make([]int, 25)
	for i := range vals {
		vals[i] = i
	}

	l, c := newCapturedLogger(t, "debug")
	l.Dump(vals)

	entry := singleEntry(t, &c.def)
	require.Contains(t, entry, "value[0]")
	require.Contains(t, entry, "value[9]")
	assert.NotContains(t, entry, "value[10]")
	assert.Equal(t, "<15 more elements>", entry["value"])
}
