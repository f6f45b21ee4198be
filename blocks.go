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

// Package minimark parses a small dialect of Markdown
// into a tree of typed block and inline elements.
//
// The dialect covers ATX headings, paragraphs,
// ordered and unordered lists nested by indentation,
// thematic breaks, and bold/italic emphasis.
// It is deliberately not CommonMark:
// consecutive text lines form separate paragraphs,
// and the */_ and **/__ delimiter families are interchangeable.
// See [Parse] and [ParseInline] for the exact rules.
//
// Parsing never fails.
// Input that matches no stricter pattern
// is kept as literal paragraph text.
package minimark

import (
	"strconv"
	"strings"
)

// listIndent is the number of additional spaces of indentation
// that nests content under a list item marker.
const listIndent = 2

// Parse converts source text into a sequence of top-level blocks.
// Every input produces a valid (possibly empty) sequence.
//
// Parse is a pure function:
// it holds no state between calls
// and may be called concurrently from multiple goroutines.
func Parse(source string) []*Block {
	blocks, _ := parseBlocks(strings.Split(source, "\n"), 0)
	return blocks
}

// parseBlocks parses a contiguous prefix of lines
// whose indentation is at least minIndent,
// returning the blocks and the number of lines consumed.
// A line indented less than minIndent belongs to an enclosing scope
// and is left for the caller.
func parseBlocks(lines []string, minIndent int) (blocks []*Block, n int) {
	i := 0
	for i < len(lines) {
		indent := indentation(lines[i])
		if indent < minIndent {
			break
		}
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			// Blank lines are structurally insignificant
			// but do not terminate a block run.
			i++
			continue
		}
		if level := headingLevel(trimmed); level > 0 {
			blocks = append(blocks, &Block{
				kind:  HeadingKind,
				level: level,
				text:  ParseInline(strings.TrimSpace(trimmed[level:])),
			})
			i++
			continue
		}
		if _, _, ok := listMarker(trimmed); ok {
			list, consumed := parseList(lines[i:], indent)
			blocks = append(blocks, list)
			i += consumed
			continue
		}
		if isThematicBreak(trimmed) {
			blocks = append(blocks, &Block{kind: ThematicBreakKind})
			i++
			continue
		}
		blocks = append(blocks, &Block{
			kind: ParagraphKind,
			text: ParseInline(trimmed),
		})
		i++
	}
	return blocks, i
}

// parseList consumes the run of consecutive marker lines
// at the exact indentation of lines[0]
// that share the first line's marker type,
// along with each marker's nested content.
// The first line must match listMarker.
// A change of indentation or of marker type ends the list;
// the mismatched line is left for the caller.
func parseList(lines []string, indent int) (list *Block, n int) {
	_, ordered, _ := listMarker(strings.TrimSpace(lines[0]))
	list = &Block{kind: ListKind, ordered: ordered}
	i := 0
	for i < len(lines) {
		if indentation(lines[i]) != indent {
			break
		}
		trimmed := strings.TrimSpace(lines[i])
		width, lineOrdered, ok := listMarker(trimmed)
		if !ok || lineOrdered != ordered {
			break
		}
		item := new(ListItem)
		if initial := strings.TrimSpace(trimmed[width:]); initial != "" {
			item.blocks = append(item.blocks, &Block{
				kind: ParagraphKind,
				text: ParseInline(initial),
			})
		}
		i++

		// Slice out the contiguous run of lines nested under the marker
		// and parse it as a new scope.
		end := i
		for end < len(lines) && indentation(lines[end]) >= indent+listIndent {
			end++
		}
		nested, _ := parseBlocks(lines[i:end], indent+listIndent)
		item.blocks = append(item.blocks, nested...)
		i = end

		list.items = append(list.items, item)
	}
	return list, i
}

// indentation counts the leading space (U+0020) characters of a line.
// Tabs do not count toward indentation.
func indentation(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// headingLevel returns the ATX heading level of a trimmed line
// or zero if the line is not a heading.
// A heading is a run of 1–6 '#' characters followed by a space;
// a longer run or a run without the space is paragraph text.
func headingLevel(trimmed string) int {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(trimmed) || trimmed[level] != ' ' {
		return 0
	}
	return level
}

// listMarker reports whether a trimmed line opens a list item.
// width is the length of the marker prefix to strip,
// including the whitespace character that follows the marker, if any.
func listMarker(trimmed string) (width int, ordered bool, ok bool) {
	if len(trimmed) >= 2 &&
		(trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+') &&
		trimmed[1] == ' ' {
		return 2, false, true
	}

	// An ordered marker is the first whitespace-delimited token
	// when it is an integer immediately followed by a dot, e.g. "12.".
	token := trimmed
	if sp := strings.IndexAny(trimmed, " \t"); sp >= 0 {
		token = trimmed[:sp]
	}
	if len(token) < 2 || !strings.HasSuffix(token, ".") {
		return 0, false, false
	}
	if _, err := strconv.Atoi(token[:len(token)-1]); err != nil {
		return 0, false, false
	}
	width = len(token)
	if width < len(trimmed) {
		// Include the whitespace after the marker.
		width++
	}
	return width, true, true
}

// isThematicBreak reports whether a trimmed line is a thematic break.
// Only the exact three-character forms are recognized.
func isThematicBreak(trimmed string) bool {
	return trimmed == "---" || trimmed == "***" || trimmed == "___"
}
