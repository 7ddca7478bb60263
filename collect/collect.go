// seehuhn.de/go/wpd - read WordPerfect files and recover raw byte encodings
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package collect turns the event stream of a parsed document into an
// ordered list of text runs.
package collect

import (
	"strconv"

	"seehuhn.de/go/wpd"
)

// Run is one unit of decoded text, together with the font label in
// effect when the text was collected.
type Run struct {
	// Seq numbers the runs of a document in collection order,
	// starting at zero.
	Seq int

	// Text is the decoded text.
	Text string

	// Font is the font label.  This is either a real font name, or a
	// generic label of the form "font7" if no name could be
	// determined, or "default" for text seen before the first
	// style-defining event.
	Font string
}

// Collector implements [wpd.Handler] and gathers document text into an
// ordered list of runs.  Every content event becomes a run, including
// pure whitespace; filtering is left to the consumer.
//
// A Collector accumulates across calls, so a fresh one is needed for
// each parsed document.
type Collector struct {
	wpd.NopHandler

	// Warn, if non-nil, receives diagnostic messages about the
	// document.  Each message is delivered at most once.
	Warn func(msg string)

	runs      []Run
	font      string
	numStyles int
	warned    bool
	sawName   bool
}

// New returns a Collector ready for use with [wpd.Document.Parse].
func New() *Collector {
	return &Collector{font: "default"}
}

// Runs returns the collected runs in document order.
func (c *Collector) Runs() []Run {
	return c.runs
}

// SawRealFontName reports whether at least one style-defining event
// carried a usable font name.
func (c *Collector) SawRealFontName() bool {
	return c.sawName
}

// UsedSyntheticLabels reports whether any run was labelled with a
// generic "fontN" name.
func (c *Collector) UsedSyntheticLabels() bool {
	return c.warned
}

// OpenSpan implements the [wpd.Handler] interface.
func (c *Collector) OpenSpan(props wpd.Properties) {
	c.setFont(props)
}

// DefineCharacterStyle implements the [wpd.Handler] interface.
func (c *Collector) DefineCharacterStyle(props wpd.Properties) {
	c.setFont(props)
}

// DefineEmbeddedFont implements the [wpd.Handler] interface.
func (c *Collector) DefineEmbeddedFont(props wpd.Properties) {
	c.setFont(props)
}

// InsertText implements the [wpd.Handler] interface.
func (c *Collector) InsertText(text string) {
	c.push(text)
}

// InsertSpace implements the [wpd.Handler] interface.
func (c *Collector) InsertSpace() {
	c.push(" ")
}

// InsertTab implements the [wpd.Handler] interface.
func (c *Collector) InsertTab() {
	c.push("\t")
}

// InsertLineBreak implements the [wpd.Handler] interface.
func (c *Collector) InsertLineBreak() {
	c.push("\n")
}

// setFont updates the current font label.  Every style-defining event
// advances the style counter, whether or not it carries a name, so a
// synthetic label identifies the event which introduced it.
func (c *Collector) setFont(props wpd.Properties) {
	c.numStyles++
	if name := resolveFontName(props); name != "" {
		c.font = name
		c.sawName = true
		return
	}
	c.font = "font" + strconv.Itoa(c.numStyles)
	if !c.warned {
		c.warned = true
		if c.Warn != nil {
			c.Warn("no font name in style properties; using generic font labels")
		}
	}
}

func (c *Collector) push(text string) {
	c.runs = append(c.runs, Run{Seq: len(c.runs), Text: text, Font: c.font})
}
