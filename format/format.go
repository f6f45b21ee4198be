// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package format writes a parsed document back out as Markdown
// in the dialect that [zombiezen.com/go/minimark.Parse] reads.
package format

import (
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/minimark"
)

// listIndent matches the parser's nesting step:
// content indented two more spaces than a marker belongs to the marker.
const listIndent = 2

// Format writes the given blocks as Markdown to the given writer.
// Ordered items are renumbered from 1;
// emphasis markers are emitted at style boundaries,
// so the text round-trips to an equivalent tree
// rather than to the original character stream.
func Format(w io.Writer, blocks []*minimark.Block) error {
	ww := &errWriter{w: w}
	for i, b := range blocks {
		if i > 0 {
			ww.WriteString("\n")
		}
		writeBlock(ww, b, "")
	}
	return ww.err
}

func writeBlock(w *errWriter, b *minimark.Block, indent string) {
	switch b.Kind() {
	case minimark.ParagraphKind:
		w.WriteString(indent)
		writeSpans(w, b.Text())
		w.WriteString("\n")
	case minimark.HeadingKind:
		w.WriteString(indent)
		w.WriteString(strings.Repeat("#", b.HeadingLevel()))
		w.WriteString(" ")
		writeSpans(w, b.Text())
		w.WriteString("\n")
	case minimark.ThematicBreakKind:
		w.WriteString(indent)
		w.WriteString("---\n")
	case minimark.ListKind:
		for i, li := range b.Items() {
			w.WriteString(indent)
			if b.IsOrderedList() {
				w.WriteString(strconv.Itoa(i + 1))
				w.WriteString(". ")
			} else {
				w.WriteString("- ")
			}
			blocks := li.Blocks()
			if len(blocks) > 0 && blocks[0].Kind() == minimark.ParagraphKind {
				writeSpans(w, blocks[0].Text())
				blocks = blocks[1:]
			}
			w.WriteString("\n")
			for _, c := range blocks {
				writeBlock(w, c, indent+strings.Repeat(" ", listIndent))
			}
		}
	}
}

// writeSpans emits the text of each span,
// inserting toggle markers wherever the style changes
// between spans and at the line's edges.
// Span text cannot contain marker characters
// (the parser strips them), so no escaping is needed.
func writeSpans(w *errWriter, spans []minimark.Span) {
	cur := minimark.Plain
	for _, s := range spans {
		writeToggles(w, cur, s.Style)
		w.WriteString(s.Text)
		cur = s.Style
	}
	writeToggles(w, cur, minimark.Plain)
}

func writeToggles(w *errWriter, from, to minimark.Style) {
	if from.IsBold() != to.IsBold() {
		w.WriteString("**")
	}
	if from.IsItalic() != to.IsItalic() {
		w.WriteString("*")
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
