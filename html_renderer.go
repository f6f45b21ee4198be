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

package minimark

import (
	"fmt"
	"html"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// An HTMLRenderer converts parsed blocks into HTML.
// The renderer reads the tree and never modifies it.
//
// The output uses a fixed set of elements
// (headings, p, ul, ol, li, hr, strong, em)
// and all text is escaped,
// so untrusted input cannot introduce markup.
type HTMLRenderer struct {
	// If HeadingIDs is true, heading tags are given an id attribute
	// derived from the heading text.
	HeadingIDs bool
}

// RenderHTML writes the given sequence of parsed blocks
// to the given writer as HTML
// using the default options for [HTMLRenderer].
// It will return the first error encountered, if any.
func RenderHTML(w io.Writer, blocks []*Block) error {
	return new(HTMLRenderer).Render(w, blocks)
}

// Render writes the given sequence of parsed blocks
// to the given writer as HTML.
// It will return the first error encountered, if any.
func (r *HTMLRenderer) Render(w io.Writer, blocks []*Block) error {
	var buf []byte
	for i, b := range blocks {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = r.AppendBlock(buf, b)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("render document to html: %w", err)
		}
	}
	return nil
}

// AppendBlock appends the rendered HTML of a block to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendBlock(dst []byte, block *Block) []byte {
	state := &renderState{
		HTMLRenderer: r,
		dst:          dst,
	}
	state.block(block)
	return state.dst
}

type renderState struct {
	*HTMLRenderer
	dst []byte
}

func (r *renderState) openTag(name atom.Atom) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

func (r *renderState) openTagAttr(name atom.Atom) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name.String()...)
}

func (r *renderState) closeTag(name atom.Atom) {
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

func (r *renderState) block(block *Block) {
	switch block.Kind() {
	case ParagraphKind:
		r.openTag(atom.P)
		r.spans(block.Text())
		r.closeTag(atom.P)
	case ThematicBreakKind:
		r.openTag(atom.Hr)
	case HeadingKind:
		var tagName atom.Atom
		switch block.HeadingLevel() {
		case 1:
			tagName = atom.H1
		case 2:
			tagName = atom.H2
		case 3:
			tagName = atom.H3
		case 4:
			tagName = atom.H4
		case 5:
			tagName = atom.H5
		default:
			tagName = atom.H6
		}
		slug := ""
		if r.HeadingIDs {
			slug = headingSlug(block.PlainText())
		}
		if slug != "" {
			r.openTagAttr(tagName)
			r.dst = append(r.dst, ` id="`...)
			r.dst = append(r.dst, html.EscapeString(slug)...)
			r.dst = append(r.dst, `">`...)
		} else {
			r.openTag(tagName)
		}
		r.spans(block.Text())
		r.closeTag(tagName)
	case ListKind:
		tagName := atom.Ul
		if block.IsOrderedList() {
			tagName = atom.Ol
		}
		r.openTag(tagName)
		for _, li := range block.Items() {
			r.dst = append(r.dst, '\n')
			r.openTag(atom.Li)
			r.item(li)
			r.closeTag(atom.Li)
		}
		r.dst = append(r.dst, '\n')
		r.closeTag(tagName)
	}
}

func (r *renderState) item(li *ListItem) {
	blocks := li.Blocks()
	// The item's own paragraph renders inline inside the <li>.
	if len(blocks) > 0 && blocks[0].Kind() == ParagraphKind {
		r.spans(blocks[0].Text())
		blocks = blocks[1:]
	}
	for _, c := range blocks {
		r.dst = append(r.dst, '\n')
		r.block(c)
	}
}

func (r *renderState) spans(spans []Span) {
	for _, s := range spans {
		if s.Style.IsBold() {
			r.openTag(atom.Strong)
		}
		if s.Style.IsItalic() {
			r.openTag(atom.Em)
		}
		r.dst = append(r.dst, html.EscapeString(s.Text)...)
		if s.Style.IsItalic() {
			r.closeTag(atom.Em)
		}
		if s.Style.IsBold() {
			r.closeTag(atom.Strong)
		}
	}
}

// headingSlug derives an HTML id from heading text:
// lowercased, with runs of non-alphanumeric characters
// collapsed into single hyphens.
// The result may be empty.
func headingSlug(text string) string {
	text = cases.Lower(language.Und).String(text)
	sb := new(strings.Builder)
	hyphen := false
	for _, c := range text {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			if hyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			hyphen = false
			sb.WriteRune(c)
		} else {
			hyphen = true
		}
	}
	return sb.String()
}
