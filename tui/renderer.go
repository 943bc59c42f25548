// Package tui renders published run snapshots as terminal frames.
//
// The renderer is a pure observer: it implements the step sink
// interfaces, consumes immutable snapshots and never reaches back into
// an engine. On color-capable terminals each frame repaints in place;
// on plain outputs (pipes, files, the Ascii profile) frames append as
// blank-line separated blocks with no escape codes, so captured logs
// stay readable.
package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/lvlviz/core"
)

// barWidth is the widest array bar, in cells. Values scale into 1..barWidth.
const barWidth = 40

// ANSI palette indices for the board states.
const (
	colorCompared = "11" // bright yellow
	colorSwapped  = "9"  // bright red
	colorSorted   = "10" // bright green
	colorCurrent  = "13" // bright magenta
	colorQueued   = "14" // bright cyan
	colorVisited  = "10" // bright green
)

// Renderer draws array and graph snapshots to a terminal. It
// implements step.ArraySink and step.GraphSink.
//
// Safe for concurrent use; frames from interleaved publishers never
// tear.
type Renderer struct {
	mu        sync.Mutex
	out       *termenv.Output
	lastLines int
}

// Option configures a Renderer.
type Option func(*settings)

type settings struct {
	outputOpts []termenv.OutputOption
}

// WithProfile pins the color profile instead of detecting it from the
// environment. Ascii yields plain text frames.
func WithProfile(p termenv.Profile) Option {
	return func(s *settings) {
		s.outputOpts = append(s.outputOpts, termenv.WithProfile(p))
	}
}

// NewRenderer builds a renderer that writes frames to w. Without
// WithProfile the color profile follows termenv detection, so a
// non-terminal writer automatically gets plain text.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &Renderer{out: termenv.NewOutput(w, s.outputOpts...)}
}

// PublishArray implements step.ArraySink: one bar row per element,
// tinted by the element's step flags.
func (r *Renderer) PublishArray(s core.ArraySnapshot) {
	if len(s) == 0 {
		return
	}
	lo, hi := s[0].Value, s[0].Value
	for _, el := range s[1:] {
		if el.Value < lo {
			lo = el.Value
		}
		if el.Value > hi {
			hi = el.Value
		}
	}
	span := hi - lo

	lines := make([]string, 0, len(s))
	for _, el := range s {
		w := barWidth
		if span > 0 {
			w = 1 + (el.Value-lo)*(barWidth-1)/span
		}
		bar := strings.Repeat("█", w)
		switch {
		case el.Swapped:
			bar = r.paint(bar, colorSwapped)
		case el.Compared:
			bar = r.paint(bar, colorCompared)
		case el.Sorted:
			bar = r.paint(bar, colorSorted)
		}
		lines = append(lines, fmt.Sprintf("%4d %s", el.Value, bar))
	}
	r.flush(lines)
}

// PublishGraph implements step.GraphSink: a vertex strip, the arcs
// under examination, and the traversal order so far.
//
// Each vertex renders as marker+ID with its distance when one is
// known: ">" current, "+" queued, "*" visited. The markers carry the
// same information as the colors, so plain outputs lose nothing.
func (r *Renderer) PublishGraph(s core.GraphSnapshot) {
	if len(s.Nodes) == 0 {
		return
	}

	var strip strings.Builder
	for i, n := range s.Nodes {
		if i > 0 {
			strip.WriteString("  ")
		}
		label := marker(n) + n.ID
		if n.Dist != core.Unreached {
			label = fmt.Sprintf("%s:%d", label, n.Dist)
		}
		switch {
		case n.Current:
			label = r.paint(label, colorCurrent)
		case n.InQueue:
			label = r.paint(label, colorQueued)
		case n.Visited:
			label = r.paint(label, colorVisited)
		}
		strip.WriteString(label)
	}

	lines := []string{strip.String()}
	for _, e := range s.Edges {
		if e.Highlighted {
			lines = append(lines, fmt.Sprintf("  %s -> %s (%d)", e.From, e.To, e.Weight))
		}
	}
	if len(s.Order) > 0 {
		lines = append(lines, "order: "+strings.Join(s.Order, " "))
	}
	r.flush(lines)
}

func marker(n core.Node) string {
	switch {
	case n.Current:
		return ">"
	case n.InQueue:
		return "+"
	case n.Visited:
		return "*"
	}
	return " "
}

// paint tints s on color profiles and passes it through untouched on
// plain ones.
func (r *Renderer) paint(s, color string) string {
	if !r.colored() {
		return s
	}
	return r.out.String(s).Foreground(r.out.Profile.Color(color)).String()
}

func (r *Renderer) colored() bool {
	switch r.out.Profile {
	case termenv.TrueColor, termenv.ANSI256, termenv.ANSI:
		return true
	}
	return false
}

// flush writes one frame. On color profiles the previous frame is
// erased first so the board repaints in place; on plain profiles
// frames are separated by a blank line instead.
func (r *Renderer) flush(lines []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastLines > 0 {
		if r.colored() {
			r.out.ClearLines(r.lastLines)
		} else {
			fmt.Fprintln(r.out)
		}
	}
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
	r.lastLines = len(lines)
}
