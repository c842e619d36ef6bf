package trace_test

import (
	"bytes"
	"cmp"
	"strings"
	"testing"

	mergesort "github.com/ikorason/merge-sort"
	"github.com/ikorason/merge-sort/list"
	"github.com/ikorason/merge-sort/position"
	"github.com/ikorason/merge-sort/trace"
	"github.com/stretchr/testify/assert"
)

var _ mergesort.Tracer[int] = (*trace.Printer[int])(nil)

func TestPrint(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		newline bool
		want    string
	}{
		{name: "with newline", values: []int{1, 2, 3}, newline: true, want: "1 2 3 \n"},
		{name: "without newline", values: []int{1, 2, 3}, newline: false, want: "1 2 3 "},
		{name: "empty", values: []int{}, newline: true, want: "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := list.New(tt.values...)
			trace.Print(&buf, l.Begin(), l.End(), tt.newline)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintStrings(t *testing.T) {
	var buf bytes.Buffer
	s := position.NewSlice("b", "a")
	trace.Print(&buf, s.Begin(), s.End(), false)
	assert.Equal(t, "b a ", buf.String())
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	l := list.New(2, 5, 1)

	mergesort.SortFunc(l.Begin(), l.End(), cmp.Less[int], mergesort.WithTracer[int](trace.NewPrinter[int](&buf)))

	want := strings.Join([]string{
		"sort  2 5 1 ",
		"sort  2 ",
		"sort  5 1 ",
		"sort  5 ",
		"sort  1 ",
		"merge 5 ↔ 1 ",
		" ⇒    1 5 ",
		"merge 2 ↔ 1 5 ",
		" ⇒    1 2 5 ",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, []int{1, 2, 5}, l.Values())
}

func TestPrinterEmpty(t *testing.T) {
	var buf bytes.Buffer
	l := list.New[int]()

	mergesort.Sort(l.Begin(), l.End(), mergesort.WithTracer[int](trace.NewPrinter[int](&buf)))
	assert.Equal(t, "sort  \n", buf.String())
}
