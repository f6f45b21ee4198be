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
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// itemIndentWidth is the fixed column width of a list item prefix.
// Nested item content is indented by the same amount,
// so markers and their content stay aligned at every depth.
const itemIndentWidth = 4

// defaultRuleWidth is the width of a thematic break
// when [TermRenderer.Width] is unset.
const defaultRuleWidth = 72

// TermStyles is the set of lipgloss styles used by [TermRenderer].
// The zero value renders everything unstyled.
type TermStyles struct {
	// Headings styles heading text by level, from h1 at index 0.
	Headings [6]lipgloss.Style
	// HeadingFallback styles headings whose level is out of range.
	HeadingFallback lipgloss.Style

	Text       lipgloss.Style
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	BoldItalic lipgloss.Style

	Bullet  lipgloss.Style
	Ordinal lipgloss.Style
	Rule    lipgloss.Style
}

// DefaultTermStyles returns the standard color scheme.
func DefaultTermStyles() TermStyles {
	const (
		magenta = "#FF6188"
		yellow  = "#FFD866"
		border  = "#5B595C"
	)
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(magenta))
	ts := TermStyles{
		HeadingFallback: lipgloss.NewStyle().Bold(true),
		Text:            lipgloss.NewStyle(),
		Bold:            lipgloss.NewStyle().Bold(true),
		Italic:          lipgloss.NewStyle().Italic(true),
		BoldItalic:      lipgloss.NewStyle().Bold(true).Italic(true),
		Bullet:          lipgloss.NewStyle().Foreground(lipgloss.Color(yellow)),
		Ordinal:         lipgloss.NewStyle().Foreground(lipgloss.Color(yellow)),
		Rule:            lipgloss.NewStyle().Foreground(lipgloss.Color(border)),
	}
	ts.Headings[0] = heading.Underline(true)
	ts.Headings[1] = heading
	ts.Headings[2] = heading.UnsetForeground()
	for i := 3; i < len(ts.Headings); i++ {
		ts.Headings[i] = lipgloss.NewStyle().Italic(true)
	}
	return ts
}

// A TermRenderer converts parsed blocks into styled terminal text.
// The renderer reads the tree and never modifies it.
// The zero value renders unstyled, which suits dumb terminals and tests.
type TermRenderer struct {
	Styles TermStyles
	// Width is the column width of a thematic break rule.
	// If Width is not positive, a default is used.
	Width int
}

// NewTermRenderer returns a renderer using [DefaultTermStyles].
func NewTermRenderer() *TermRenderer {
	return &TermRenderer{Styles: DefaultTermStyles()}
}

// Render writes the given sequence of parsed blocks
// to the given writer as terminal text.
// Top-level blocks are separated by blank lines.
// It will return the first error encountered, if any.
func (r *TermRenderer) Render(w io.Writer, blocks []*Block) error {
	sb := new(strings.Builder)
	for i, b := range blocks {
		sb.Reset()
		if i > 0 {
			sb.WriteByte('\n')
		}
		r.block(sb, b, "")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("render document to terminal: %w", err)
		}
	}
	return nil
}

func (r *TermRenderer) block(sb *strings.Builder, b *Block, indent string) {
	switch b.Kind() {
	case ParagraphKind:
		sb.WriteString(indent)
		r.spans(sb, b.Text())
		sb.WriteByte('\n')
	case HeadingKind:
		style := r.Styles.HeadingFallback
		if lvl := b.HeadingLevel(); 1 <= lvl && lvl <= 6 {
			style = r.Styles.Headings[lvl-1]
		}
		sb.WriteString(indent)
		sb.WriteString(style.Render(b.PlainText()))
		sb.WriteByte('\n')
	case ThematicBreakKind:
		width := r.Width
		if width <= 0 {
			width = defaultRuleWidth
		}
		sb.WriteString(indent)
		sb.WriteString(r.Styles.Rule.Render(strings.Repeat("─", width)))
		sb.WriteByte('\n')
	case ListKind:
		for i, li := range b.Items() {
			marker := r.Styles.Bullet.Render("•")
			markerWidth := 1
			if b.IsOrderedList() {
				num := strconv.Itoa(i+1) + "."
				marker = r.Styles.Ordinal.Render(num)
				markerWidth = len(num)
			}
			pad := itemIndentWidth - markerWidth
			if pad < 1 {
				pad = 1
			}
			sb.WriteString(indent)
			sb.WriteString(marker)
			sb.WriteString(strings.Repeat(" ", pad))

			blocks := li.Blocks()
			if len(blocks) > 0 && blocks[0].Kind() == ParagraphKind {
				r.spans(sb, blocks[0].Text())
				blocks = blocks[1:]
			}
			sb.WriteByte('\n')
			for _, c := range blocks {
				r.block(sb, c, indent+strings.Repeat(" ", itemIndentWidth))
			}
		}
	}
}

func (r *TermRenderer) spans(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s.Style {
		case Bold:
			sb.WriteString(r.Styles.Bold.Render(s.Text))
		case Italic:
			sb.WriteString(r.Styles.Italic.Render(s.Text))
		case BoldItalic:
			sb.WriteString(r.Styles.BoldItalic.Render(s.Text))
		default:
			sb.WriteString(r.Styles.Text.Render(s.Text))
		}
	}
}
