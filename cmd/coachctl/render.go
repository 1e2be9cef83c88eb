package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("reported")

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

// footer prints the pagination line under a list.
func footer[T any](w io.Writer, p domain.PagedResult[T]) {
	if p.IsEmpty() {
		fmt.Fprintln(w, "No records found.")
		return
	}
	fmt.Fprintf(w, "\nPage %d of %d, %d total\n", p.CurrentPage, p.LastPage, p.Total)
}

// report prints an outcome and maps non-success kinds to errReported.
func report[T any](w io.Writer, o controller.Outcome[T]) error {
	fmt.Fprintln(w, o.Message)
	if o.Kind == controller.OutcomeSuccess || o.Kind == controller.OutcomeCancelled {
		return nil
	}
	for _, name := range o.Validation.Fields() {
		fmt.Fprintf(w, "  %s: %s\n", name, o.Validation.Errors[name])
	}
	return errReported
}

// describe prints label/value pairs aligned in two columns.
func describe(w io.Writer, pairs ...any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%v:\t%v\n", pairs[i], pairs[i+1])
	}
	return tw.Flush()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func joinOrDash(items []string) string {
	return orDash(strings.Join(items, ", "))
}
