// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements an ordered map from string keys to string values
// backed by a height-balanced (AVL) binary search tree.
//
// An Index is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access themselves.
package index

// Record is a single stored entry, e.g. a contact name and its phone number.
type Record struct {
	Key   string
	Value string
}

type node struct {
	record Record
	height int
	left   *node
	right  *node
}

// Index is a height-balanced binary search tree keyed by Record.Key.
type Index struct {
	root *node
	size int
}

// New returns an empty Index.
func New() *Index {
	return &Index{root: nil}
}

// Len reports the number of records stored.
func (idx *Index) Len() int {
	return idx.size
}

// Height reports the height of the tree, 0 when empty.
func (idx *Index) Height() int {
	return idx.getHeight(idx.root)
}

func (idx *Index) getHeight(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (idx *Index) updateHeight(n *node) {
	n.height = max(idx.getHeight(n.left), idx.getHeight(n.right)) + 1
}

func (idx *Index) getBalanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return idx.getHeight(n.left) - idx.getHeight(n.right)
}

// rotateLeft promotes the right child of n and returns the new subtree root.
func (idx *Index) rotateLeft(n *node) *node {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so its height must be fixed first
	idx.updateHeight(n)
	idx.updateHeight(pivot)

	return pivot
}

// rotateRight promotes the left child of n and returns the new subtree root.
func (idx *Index) rotateRight(n *node) *node {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	idx.updateHeight(n)
	idx.updateHeight(pivot)

	return pivot
}

// rebalance refreshes the cached height of n and restores the balance
// invariant at n with at most two rotations. It returns the subtree root.
func (idx *Index) rebalance(n *node) *node {
	idx.updateHeight(n)

	balanceFactor := idx.getBalanceFactor(n)

	// Left-heavy
	if balanceFactor > 1 {
		if idx.getBalanceFactor(n.left) >= 0 {
			return idx.rotateRight(n)
		}
		// Left-Right case
		n.left = idx.rotateLeft(n.left)
		return idx.rotateRight(n)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if idx.getBalanceFactor(n.right) <= 0 {
			return idx.rotateLeft(n)
		}
		// Right-Left case
		n.right = idx.rotateRight(n.right)
		return idx.rotateLeft(n)
	}

	return n
}

// Insert stores value under key. Duplicate keys are rejected: when key is
// already present the stored value is left untouched and Insert returns false.
func (idx *Index) Insert(key, value string) bool {
	root, inserted := idx.insertRecursive(idx.root, key, value)
	idx.root = root
	if inserted {
		idx.size++
	}
	return inserted
}

func (idx *Index) insertRecursive(n *node, key, value string) (*node, bool) {
	if n == nil {
		return &node{record: Record{Key: key, Value: value}, height: 1}, true
	}

	var inserted bool
	switch {
	case key < n.record.Key:
		n.left, inserted = idx.insertRecursive(n.left, key, value)
	case key > n.record.Key:
		n.right, inserted = idx.insertRecursive(n.right, key, value)
	default:
		return n, false
	}

	if !inserted {
		return n, false
	}
	return idx.rebalance(n), true
}

// Remove deletes the record stored under key. It returns false, leaving the
// tree unchanged, when key is absent.
func (idx *Index) Remove(key string) bool {
	root, removed := idx.deleteRecursive(idx.root, key)
	idx.root = root
	if removed {
		idx.size--
	}
	return removed
}

func (idx *Index) deleteRecursive(n *node, key string) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < n.record.Key:
		n.left, removed = idx.deleteRecursive(n.left, key)
	case key > n.record.Key:
		n.right, removed = idx.deleteRecursive(n.right, key)
	default:
		// At most one child: splice n out.
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// Two children: take over the in-order successor's record, then
		// drop the successor from the right subtree.
		successor := idx.findMin(n.right)
		n.record = successor.record
		n.right, _ = idx.deleteRecursive(n.right, successor.record.Key)
		removed = true
	}

	if !removed {
		return n, false
	}
	return idx.rebalance(n), true
}

func (idx *Index) findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Search looks up key and returns a copy of its record.
// The boolean is false when the key is absent.
func (idx *Index) Search(key string) (Record, bool) {
	n := searchNode(idx.root, key)
	if n == nil {
		return Record{}, false
	}
	return n.record, true
}

func searchNode(n *node, key string) *node {
	for n != nil {
		switch {
		case key < n.record.Key:
			n = n.left
		case key > n.record.Key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
