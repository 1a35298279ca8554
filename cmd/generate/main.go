// Command generate writes query_generated.go, the Query2..Query4 types.
//
// Run it through go generate from the repository root:
//
//	go generate ./...
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const (
	minArity = 2
	maxArity = 4
	output   = "query_generated.go"
)

type arity struct {
	N int
}

// Idx returns 1..N.
func (a arity) Idx() []int {
	out := make([]int, a.N)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// join renders format once per index in 1..n and joins the results with sep.
func join(n int, format, sep string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strings.ReplaceAll(format, "#", fmt.Sprint(i+1))
	}
	return strings.Join(parts, sep)
}

var funcs = template.FuncMap{"join": join}

var tmpl = template.Must(template.New("query").Funcs(funcs).Parse(`// Code generated by cmd/generate. DO NOT EDIT.

package sekai

import (
	"iter"

	"github.com/pkg/errors"
)
{{range .}}{{$n := .N}}
// Query{{$n}} iterates the slots matching {{$n}} terms and yields their values.
type Query{{$n}}[{{join $n "T# any" ", "}}] struct {
{{- range .Idx}}
	t{{.}} Term[T{{.}}]
{{- end}}
	cursor
	cur Index
	ok  bool
}

// Row{{$n}} holds the values of one Query{{$n}} match.
type Row{{$n}}[{{join $n "T# any" ", "}}] struct {
{{- range .Idx}}
	V{{.}} *T{{.}}
{{- end}}
}

// NewQuery{{$n}} composes a query over {{$n}} terms. It fails if the terms span
// different domains, repeat a column or are all optional.
func NewQuery{{$n}}[{{join $n "T# any" ", "}}]({{join $n "t# Term[T#]" ", "}}) (*Query{{$n}}[{{join $n "T#" ", "}}], error) {
	masks, err := compose({{join $n "specOf(t#)" ", "}})
	if err != nil {
		return nil, errors.Wrap(err, "sekai: compose Query{{$n}}")
	}
	q := &Query{{$n}}[{{join $n "T#" ", "}}]{ {{- join $n "t#: t#" ", "}}, cursor: cursor{masks: masks}}
	q.Reset()
	return q, nil
}

// Reset rewinds the query to the first matching slot.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) Reset() {
	q.cursor.reset()
	q.ok = false
}

// Next advances to the next matching slot and reports whether there is one.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) Next() bool {
	q.cur, q.ok = q.cursor.next()
	return q.ok
}

// Index returns the current slot. Only valid after Next returned true.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) Index() Index {
	return q.cur
}

// Get returns the values at the current slot. Pointers of optional terms
// are nil where the slot is absent; all pointers are nil before the first
// Next and after Next returned false.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) Get() ({{join $n "*T#" ", "}}) {
	if !q.ok {
		return {{join $n "nil" ", "}}
	}
	return {{join $n "q.t#.fetch(q.cur)" ", "}}
}

// Each calls fn for every matching slot.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) Each(fn func(Index, {{join $n "*T#" ", "}})) {
	c := cursor{masks: q.masks}
	c.reset()
	for i, ok := c.next(); ok; i, ok = c.next() {
		fn(i, {{join $n "q.t#.fetch(i)" ", "}})
	}
}

// All returns the matching slots paired with their values.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) All() iter.Seq2[Index, Row{{$n}}[{{join $n "T#" ", "}}]] {
	return func(yield func(Index, Row{{$n}}[{{join $n "T#" ", "}}]) bool) {
		c := cursor{masks: q.masks}
		c.reset()
		for i, ok := c.next(); ok; i, ok = c.next() {
			if !yield(i, Row{{$n}}[{{join $n "T#" ", "}}]{ {{- join $n "V#: q.t#.fetch(i)" ", "}}}) {
				return
			}
		}
	}
}

// Indices returns the matching slots.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) Indices() iter.Seq[Index] {
	return indices(q.masks)
}

// Count returns the number of matching slots.
func (q *Query{{$n}}[{{join $n "T#" ", "}}]) Count() int {
	return count(q.masks)
}
{{end}}`))

func main() {
	var arities []arity
	for n := minArity; n <= maxArity; n++ {
		arities = append(arities, arity{N: n})
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatalf("generate: execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("generate: format output: %v", err)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		log.Fatalf("generate: write %s: %v", output, err)
	}
}
