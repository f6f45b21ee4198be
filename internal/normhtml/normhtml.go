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

// Package normhtml provides a function for normalizing HTML
// which ignores insignificant output differences,
// so renderer tests can compare documents structurally.
package normhtml

import (
	"bytes"
	"regexp"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips insignificant output differences from HTML:
// whitespace runs collapse to single spaces,
// text around block element boundaries is trimmed,
// and character data is re-escaped consistently.
func NormalizeHTML(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	last := html.StartTagToken
	var lastTag string
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := whitespaceRE.ReplaceAll(tok.Text(), []byte(" "))
			if last == html.StartTagToken && isBlockTag(lastTag) {
				data = bytes.TrimLeftFunc(data, unicode.IsSpace)
			} else if last == html.EndTagToken && isBlockTag(lastTag) {
				data = bytes.TrimSpace(data)
			}
			output = append(output, htmlEscaper.Replace(bytes.Clone(data))...)
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			tag := string(tagBytes)
			if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "</"...)
			output = append(output, tag...)
			output = append(output, ">"...)
			lastTag = tag
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				for {
					k, v, more := tok.TagAttr()
					output = append(output, " "...)
					output = append(output, k...)
					if len(v) > 0 {
						output = append(output, `="`...)
						output = append(output, html.EscapeString(string(v))...)
						output = append(output, `"`...)
					}
					if !more {
						break
					}
				}
			}
			output = append(output, ">"...)
			lastTag = tag
		case html.CommentToken:
			output = append(output, tok.Raw()...)
		}

		last = tt
		if tt == html.SelfClosingTagToken {
			last = html.EndTagToken
		}
	}
}

// blockTags is the set of block-level elements the renderer can emit.
var blockTags = map[string]struct{}{
	atom.Div.String(): {},
	atom.H1.String():  {},
	atom.H2.String():  {},
	atom.H3.String():  {},
	atom.H4.String():  {},
	atom.H5.String():  {},
	atom.H6.String():  {},
	atom.Hr.String():  {},
	atom.Li.String():  {},
	atom.Ol.String():  {},
	atom.P.String():   {},
	atom.Ul.String():  {},
}

func isBlockTag(tag string) bool {
	_, ok := blockTags[tag]
	return ok
}
