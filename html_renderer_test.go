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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/minimark/internal/normhtml"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "Paragraph",
			markdown: "Hello, World!\n",
			want:     "<p>Hello, World!</p>",
		},
		{
			name:     "Emphasis",
			markdown: "Hello, **World**!\n",
			want:     "<p>Hello, <strong>World</strong>!</p>",
		},
		{
			name:     "BoldItalic",
			markdown: "***both***\n",
			want:     "<p><strong><em>both</em></strong></p>",
		},
		{
			name:     "Heading",
			markdown: "# Hello\n",
			want:     "<h1>Hello</h1>",
		},
		{
			name:     "SevenHashes",
			markdown: "####### H\n",
			want:     "<p>####### H</p>",
		},
		{
			name:     "ThematicBreak",
			markdown: "---\n",
			want:     "<hr>",
		},
		{
			name:     "Escaping",
			markdown: "a < b & c\n",
			want:     "<p>a &lt; b &amp; c</p>",
		},
		{
			name:     "UnorderedList",
			markdown: "- a\n- b\n",
			want:     "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name:     "OrderedList",
			markdown: "1. one\n2. two\n",
			want:     "<ol><li>one</li><li>two</li></ol>",
		},
		{
			name:     "NestedList",
			markdown: "- A\n    - B\n- C\n",
			want:     "<ul><li>A<ul><li>B</li></ul></li><li>C</li></ul>",
		},
		{
			name:     "ItemContinuationParagraph",
			markdown: "- A\n  more\n",
			want:     "<ul><li>A<p>more</p></li></ul>",
		},
		{
			name:     "Document",
			markdown: "# T\n\npara\n\n---\n",
			want:     "<h1>T</h1>\n<p>para</p>\n<hr>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			blocks := Parse(test.markdown)
			buf := new(bytes.Buffer)
			if err := RenderHTML(buf, blocks); err != nil {
				t.Error("RenderHTML:", err)
			}
			got := string(normhtml.NormalizeHTML(buf.Bytes()))
			want := string(normhtml.NormalizeHTML([]byte(test.want)))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", test.markdown, diff)
			}
		})
	}
}

func TestRenderHTMLHeadingIDs(t *testing.T) {
	tests := []struct {
		markdown string
		want     string
	}{
		{"## My Heading!\n", `<h2 id="my-heading">My Heading!</h2>`},
		{"# Héllo Wörld\n", `<h1 id="héllo-wörld">Héllo Wörld</h1>`},
		{"# 1.2 Versioned\n", `<h1 id="1-2-versioned">1.2 Versioned</h1>`},
		// No id attribute when the text slugs to nothing.
		{"# !!!\n", `<h1>!!!</h1>`},
	}
	r := &HTMLRenderer{HeadingIDs: true}
	for _, test := range tests {
		blocks := Parse(test.markdown)
		buf := new(bytes.Buffer)
		if err := r.Render(buf, blocks); err != nil {
			t.Error("Render:", err)
		}
		got := string(normhtml.NormalizeHTML(buf.Bytes()))
		want := string(normhtml.NormalizeHTML([]byte(test.want)))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", test.markdown, diff)
		}
	}
}

func TestRenderHTMLHeadingFallback(t *testing.T) {
	// Levels outside [1, 6] cannot come from Parse,
	// but a renderer must still map them somewhere.
	block := &Block{kind: HeadingKind, level: 9, text: []Span{plain("deep")}}
	got := string(new(HTMLRenderer).AppendBlock(nil, block))
	const want = "<h6>deep</h6>"
	if got != want {
		t.Errorf("AppendBlock = %q; want %q", got, want)
	}
}
