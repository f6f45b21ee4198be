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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWalk(t *testing.T) {
	// - A
	//     - B
	// - C
	blocks := Parse("- A\n    - B\n- C\n")
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d; want 1", len(blocks))
	}

	t.Run("Order", func(t *testing.T) {
		var pre, post []string
		Walk(blocks[0].AsNode(), &WalkOptions{
			Pre: func(c *Cursor) bool {
				pre = append(pre, describeNode(c.Node()))
				return true
			},
			Post: func(c *Cursor) bool {
				post = append(post, describeNode(c.Node()))
				return true
			},
		})
		wantPre := []string{
			"ListKind",
			"item",
			"ParagraphKind(A)",
			"ListKind",
			"item",
			"ParagraphKind(B)",
			"item",
			"ParagraphKind(C)",
		}
		if diff := cmp.Diff(wantPre, pre); diff != "" {
			t.Errorf("pre-order (-want +got):\n%s", diff)
		}
		wantPost := []string{
			"ParagraphKind(A)",
			"ParagraphKind(B)",
			"item",
			"ListKind",
			"item",
			"ParagraphKind(C)",
			"item",
			"ListKind",
		}
		if diff := cmp.Diff(wantPost, post); diff != "" {
			t.Errorf("post-order (-want +got):\n%s", diff)
		}
	})

	t.Run("EachNodeOnce", func(t *testing.T) {
		seen := make(map[Node]int)
		Walk(blocks[0].AsNode(), &WalkOptions{
			Pre: func(c *Cursor) bool {
				seen[c.Node()]++
				return true
			},
		})
		for n, count := range seen {
			if count != 1 {
				t.Errorf("%s visited %d times; the tree must not alias nodes", describeNode(n), count)
			}
		}
	})

	t.Run("PreFalseSkipsChildren", func(t *testing.T) {
		var visited []string
		Walk(blocks[0].AsNode(), &WalkOptions{
			Pre: func(c *Cursor) bool {
				visited = append(visited, describeNode(c.Node()))
				// Do not descend into items.
				return c.Node().Item() == nil
			},
		})
		want := []string{"ListKind", "item", "item"}
		if diff := cmp.Diff(want, visited); diff != "" {
			t.Errorf("visited (-want +got):\n%s", diff)
		}
	})

	t.Run("PostFalseStops", func(t *testing.T) {
		count := 0
		Walk(blocks[0].AsNode(), &WalkOptions{
			Post: func(c *Cursor) bool {
				count++
				return false
			},
		})
		if count != 1 {
			t.Errorf("Post called %d times; want 1", count)
		}
	})

	t.Run("Parent", func(t *testing.T) {
		Walk(blocks[0].AsNode(), &WalkOptions{
			Pre: func(c *Cursor) bool {
				if c.Node() == blocks[0].AsNode() {
					if c.Parent() != (Node{}) {
						t.Errorf("root parent = %v; want zero Node", c.Parent())
					}
				} else if c.Parent() == (Node{}) {
					t.Errorf("%s has zero parent", describeNode(c.Node()))
				}
				return true
			},
		})
	})
}

func describeNode(n Node) string {
	if b := n.Block(); b != nil {
		if text := b.PlainText(); text != "" {
			return b.Kind().String() + "(" + text + ")"
		}
		return b.Kind().String()
	}
	if n.Item() != nil {
		return "item"
	}
	return "zero"
}
