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

import "unsafe"

const (
	nodeTypeBlock = 1 + iota
	nodeTypeItem
)

// Node is a pointer to a [Block] or a [ListItem].
// Nodes can be compared for equality using the == operator.
type Node struct {
	ptr unsafe.Pointer
	typ uint8
}

// Block returns the referenced block
// or nil if the pointer does not reference a block.
func (n Node) Block() *Block {
	if n.typ != nodeTypeBlock {
		return nil
	}
	return (*Block)(n.ptr)
}

// Item returns the referenced list item
// or nil if the pointer does not reference a list item.
func (n Node) Item() *ListItem {
	if n.typ != nodeTypeItem {
		return nil
	}
	return (*ListItem)(n.ptr)
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on the zero value returns 0.
func (n Node) ChildCount() int {
	if b := n.Block(); b != nil {
		return len(b.Items())
	}
	if li := n.Item(); li != nil {
		return len(li.Blocks())
	}
	return 0
}

// Child returns the i'th child of the node.
// The children of a [ListKind] block are its items;
// the children of an item are its blocks.
// Other blocks have no children:
// inline spans are not part of the node tree.
func (n Node) Child(i int) Node {
	if b := n.Block(); b != nil {
		return b.items[i].AsNode()
	}
	if li := n.Item(); li != nil {
		return li.blocks[i].AsNode()
	}
	panic("Child on nil Node")
}

// AsNode converts the block to a [Node] pointer.
func (b *Block) AsNode() Node {
	if b == nil {
		return Node{}
	}
	return Node{
		typ: nodeTypeBlock,
		ptr: unsafe.Pointer(b),
	}
}

// AsNode converts the list item to a [Node] pointer.
func (li *ListItem) AsNode() Node {
	if li == nil {
		return Node{}
	}
	return Node{
		typ: nodeTypeItem,
		ptr: unsafe.Pointer(li),
	}
}
