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
	"strconv"
	"strings"
)

// A Block is a structural element in a document:
// a heading, a paragraph, a list, or a thematic break.
// Blocks form a strict tree:
// a block owns its items and an item owns its blocks,
// with no sharing between parents.
// Blocks are not modified after [Parse] returns.
type Block struct {
	kind    BlockKind
	level   int
	ordered bool
	text    []Span
	items   []*ListItem
}

// Kind returns the type of block
// or zero if the block is nil.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// HeadingLevel returns the level of a [HeadingKind] block in [1, 6],
// or zero if the block is nil or of a different kind.
func (b *Block) HeadingLevel() int {
	if b == nil || b.kind != HeadingKind {
		return 0
	}
	return b.level
}

// Text returns the styled spans of a [HeadingKind] or [ParagraphKind] block.
// Other kinds have no inline text and return nil.
func (b *Block) Text() []Span {
	if b == nil {
		return nil
	}
	return b.text
}

// PlainText returns the block's inline text with styling dropped.
func (b *Block) PlainText() string {
	if b == nil {
		return ""
	}
	sb := new(strings.Builder)
	for _, span := range b.text {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// IsOrderedList reports whether the block is a [ListKind] block
// whose items are numbered rather than bulleted.
func (b *Block) IsOrderedList() bool {
	return b != nil && b.kind == ListKind && b.ordered
}

// Items returns the items of a [ListKind] block.
// The returned slice is non-empty for every list produced by [Parse].
func (b *Block) Items() []*ListItem {
	if b == nil {
		return nil
	}
	return b.items
}

// BlockKind is an enumeration of values returned by [*Block.Kind].
type BlockKind uint16

const (
	ParagraphKind BlockKind = 1 + iota
	ThematicBreakKind
	HeadingKind
	ListKind
)

// String returns the Go constant name of the kind.
func (kind BlockKind) String() string {
	switch kind {
	case ParagraphKind:
		return "ParagraphKind"
	case ThematicBreakKind:
		return "ThematicBreakKind"
	case HeadingKind:
		return "HeadingKind"
	case ListKind:
		return "ListKind"
	default:
		return "BlockKind(" + strconv.Itoa(int(kind)) + ")"
	}
}

// A ListItem is a single entry in a [ListKind] block.
// If the item's marker line had trailing text,
// the first block is a paragraph holding that text;
// any following blocks were nested under the marker by indentation.
type ListItem struct {
	blocks []*Block
}

// Blocks returns the item's content in document order.
func (li *ListItem) Blocks() []*Block {
	if li == nil {
		return nil
	}
	return li.blocks
}

// A Span is a maximal run of inline text sharing one style.
// The Text of a span produced by [ParseInline] is never empty.
type Span struct {
	Text  string
	Style Style
}

// Style is a set of inline text attributes.
// The zero value is unstyled text.
type Style uint8

const (
	Plain  Style = 0
	Bold   Style = 1 << 0
	Italic Style = 1 << 1

	BoldItalic Style = Bold | Italic
)

// IsBold reports whether the style includes bold weight.
func (s Style) IsBold() bool {
	return s&Bold != 0
}

// IsItalic reports whether the style includes italics.
func (s Style) IsItalic() bool {
	return s&Italic != 0
}

// String returns the Go constant name of the style.
func (s Style) String() string {
	switch s {
	case Plain:
		return "Plain"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case BoldItalic:
		return "BoldItalic"
	default:
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
}
