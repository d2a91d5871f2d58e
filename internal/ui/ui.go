// Package ui renders user-facing terminal output: rebuild summaries and
// watch-mode event lines on stderr, and the asset table for the list
// command. Diagnostic logging goes through slog, not this package.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/syncer"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes human-facing status lines.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return &Printer{out: os.Stderr}
}

// NewWriter returns a Printer writing to w.
func NewWriter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Rebuilt reports a completed full rebuild.
func (p *Printer) Rebuilt(total int, registry string) {
	fmt.Fprintf(p.out, green+bold+"✓ synced"+reset+" %d asset(s) → %s\n", total, registry)
}

// CategoryRebuilt reports a single-category rebuild in watch mode.
func (p *Printer) CategoryRebuilt(category asset.Category, count int) {
	fmt.Fprintf(p.out, cyan+"↻ %s"+reset+dim+" (%d asset(s))"+reset+"\n", category, count)
}

// Event reports one qualifying watch event.
func (p *Printer) Event(e syncer.Event) {
	fmt.Fprintf(p.out, yellow+"• "+reset+"%s %s/%s\n", e.Op, e.Category, e.Name)
}

// Watching announces watch mode startup.
func (p *Printer) Watching(root string) {
	fmt.Fprintf(p.out, bold+"watching "+reset+"%s"+dim+" (ctrl-c to stop)"+reset+"\n", root)
}

// Problem reports one unhealthy container found by the check command.
func (p *Printer) Problem(path string, err error) {
	fmt.Fprintf(p.out, red+"✗ %s"+reset+": %v\n", path, err)
}

// Healthy reports a clean check result.
func (p *Printer) Healthy(total int) {
	fmt.Fprintf(p.out, green+bold+"✓ %d container(s) healthy"+reset+"\n", total)
}

// Error reports a fatal error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, red+bold+"error: "+reset+"%s\n", msg)
}
