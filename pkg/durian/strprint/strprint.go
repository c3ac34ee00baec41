// Package strprint provides small adapters between string sinks and
// io.Writer, for code that wants to print somewhere without caring where.
package strprint

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes strings to a sink one piece at a time. The zero value is
// not usable; construct with New or NewWriter.
type Printer struct {
	sink func(string)
}

// New creates a Printer that passes every piece to sink.
func New(sink func(string)) *Printer {
	return &Printer{sink: sink}
}

// NewWriter creates a Printer backed by w. Write errors are discarded; a
// printer is a fire-and-forget sink.
func NewWriter(w io.Writer) *Printer {
	return New(func(s string) {
		_, _ = io.WriteString(w, s)
	})
}

// Print writes s to the sink.
func (p *Printer) Print(s string) {
	p.sink(s)
}

// Println writes s followed by a newline.
func (p *Printer) Println(s string) {
	p.sink(s)
	p.sink("\n")
}

// Printf formats and writes to the sink.
func (p *Printer) Printf(format string, args ...any) {
	p.sink(fmt.Sprintf(format, args...))
}

// Writer returns an io.Writer view of the printer, for handing the sink to
// code that wants a writer.
func (p *Printer) Writer() io.Writer {
	return writerAdapter{p: p}
}

type writerAdapter struct {
	p *Printer
}

func (w writerAdapter) Write(b []byte) (int, error) {
	w.p.sink(string(b))
	return len(b), nil
}

// BuildString runs fn against a printer that accumulates into a string and
// returns everything it printed.
func BuildString(fn func(*Printer)) string {
	var b strings.Builder
	fn(New(func(s string) {
		b.WriteString(s)
	}))
	return b.String()
}
