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

import "strings"

// ParseInline tokenizes the emphasis markers in a single line of text,
// returning the line's styled spans in order with the markers stripped.
// Concatenating the spans' Text yields the line minus its markers;
// empty runs between markers are dropped rather than emitted.
//
// The two-character markers ** and __ toggle bold
// and take priority over the one-character markers * and _,
// which toggle italics.
// The delimiter families share their toggles:
// a _ closes emphasis opened by * and vice versa,
// and likewise for __ and **.
// Markers need not balance;
// an open toggle styles the remainder of the line.
func ParseInline(text string) []Span {
	var spans []Span
	var bold, italic bool
	plainStart := 0
	pos := 0
	flush := func() {
		if pos > plainStart {
			spans = append(spans, Span{
				Text:  text[plainStart:pos],
				Style: styleOf(bold, italic),
			})
		}
	}
	for pos < len(text) {
		switch {
		case strings.HasPrefix(text[pos:], "**") || strings.HasPrefix(text[pos:], "__"):
			flush()
			bold = !bold
			pos += 2
			plainStart = pos
		case text[pos] == '*' || text[pos] == '_':
			flush()
			italic = !italic
			pos++
			plainStart = pos
		default:
			pos++
		}
	}
	flush()
	return spans
}

func styleOf(bold, italic bool) Style {
	s := Plain
	if bold {
		s |= Bold
	}
	if italic {
		s |= Italic
	}
	return s
}
