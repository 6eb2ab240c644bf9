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

package index

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type IndexTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestIndexOperations(t *testing.T) {
	testCases := []IndexTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Duplicate Insertion",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"dog", "cat", "dog"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Delete Absent Key",
			InitialKeys:   []string{"dog", "cat", "emu"},
			KeysToDelete:  []string{"zebra", "ant"},
			ExpectedOrder: []string{"cat", "dog", "emu"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"d", "b", "f", "a", "c", "e", "g"},
			KeysToDelete:  []string{"d", "a", "g", "b", "f", "c", "e"},
			ExpectedOrder: nil,
		},
		{
			Name:          "Empty Key",
			InitialKeys:   []string{"b", "", "a"},
			ExpectedOrder: []string{"", "a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			idx := New()
			for _, key := range tc.InitialKeys {
				idx.Insert(key, "v-"+key)
			}
			for _, key := range tc.KeysToInsert {
				idx.Insert(key, "v-"+key)
			}
			for _, key := range tc.KeysToDelete {
				idx.Remove(key)
			}

			assert.Equal(t, tc.ExpectedOrder, inOrderKeys(idx.root))
			assert.Equal(t, len(tc.ExpectedOrder), idx.Len())
			checkInvariants(t, idx)
		})
	}
}

func TestRotationCases(t *testing.T) {
	testCases := []struct {
		name string
		keys []string
	}{
		{name: "right rotation", keys: []string{"c", "b", "a"}},
		{name: "left rotation", keys: []string{"a", "b", "c"}},
		{name: "left-right rotation", keys: []string{"c", "a", "b"}},
		{name: "right-left rotation", keys: []string{"a", "c", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idx := New()
			for _, key := range tc.keys {
				require.True(t, idx.Insert(key, key))
			}
			require.NotNil(t, idx.root)
			assert.Equal(t, "b", idx.root.record.Key)
			assert.Equal(t, 2, idx.Height())
			checkInvariants(t, idx)
		})
	}
}

func TestInsertRejectsDuplicate(t *testing.T) {
	idx := New()
	assert.True(t, idx.Insert("John Doe", "123-456-7890"))
	assert.False(t, idx.Insert("John Doe", "000-000-0000"))

	rec, ok := idx.Search("John Doe")
	require.True(t, ok)
	assert.Equal(t, "123-456-7890", rec.Value)
	assert.Equal(t, 1, idx.Len())
}

func TestRemoveAbsentKeyLeavesTreeUnchanged(t *testing.T) {
	idx := New()
	assert.False(t, idx.Remove("nobody"))
	assert.Equal(t, 0, idx.Len())
	assert.Nil(t, idx.root)

	for _, key := range []string{"m", "f", "t", "c", "h"} {
		idx.Insert(key, key)
	}
	before := inOrderKeys(idx.root)
	height := idx.Height()

	assert.False(t, idx.Remove("z"))
	assert.False(t, idx.Remove("a"))
	assert.Equal(t, before, inOrderKeys(idx.root))
	assert.Equal(t, height, idx.Height())
	assert.Equal(t, 5, idx.Len())
}

func TestRemoveNodeWithTwoChildrenPromotesSuccessor(t *testing.T) {
	idx := New()
	for _, key := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		idx.Insert(key, "v-"+key)
	}
	require.Equal(t, "d", idx.root.record.Key)

	assert.True(t, idx.Remove("d"))
	assert.Equal(t, "e", idx.root.record.Key)
	assert.Equal(t, "v-e", idx.root.record.Value)
	assert.Equal(t, []string{"a", "b", "c", "e", "f", "g"}, inOrderKeys(idx.root))

	_, ok := idx.Search("d")
	assert.False(t, ok)
	checkInvariants(t, idx)
}

func TestRemoveRebalancesEveryAncestor(t *testing.T) {
	// Draining the right half of a perfect tree forces rotations at the root
	// and then again inside the promoted subtree.
	idx := New()
	for _, key := range []string{"h", "d", "l", "b", "f", "j", "n", "a", "c", "e", "i", "k", "m", "o", "g"} {
		idx.Insert(key, key)
	}
	for _, key := range []string{"i", "k", "m", "o", "j", "n", "l"} {
		require.True(t, idx.Remove(key))
		checkInvariants(t, idx)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, inOrderKeys(idx.root))
}

func TestContactScenario(t *testing.T) {
	idx := New()
	idx.Insert("John Doe", "123-456-7890")
	idx.Insert("Jane Smith", "987-654-3210")
	idx.Insert("Alice Johnson", "555-555-5555")

	rec, ok := idx.Search("Jane Smith")
	require.True(t, ok)
	assert.Equal(t, Record{Key: "Jane Smith", Value: "987-654-3210"}, rec)

	assert.True(t, idx.Remove("Jane Smith"))

	_, ok = idx.Search("Jane Smith")
	assert.False(t, ok)

	rec, ok = idx.Search("John Doe")
	require.True(t, ok)
	assert.Equal(t, "123-456-7890", rec.Value)
	checkInvariants(t, idx)
}

func TestSearchReturnsCopy(t *testing.T) {
	idx := New()
	idx.Insert("k", "v")

	rec, ok := idx.Search("k")
	require.True(t, ok)
	rec.Value = "changed"

	again, _ := idx.Search("k")
	assert.Equal(t, "v", again.Value)
}

func TestSequentialInsertStaysLogarithmic(t *testing.T) {
	idx := New()
	for _, key := range []string{"A", "B", "C", "D", "E"} {
		idx.Insert(key, key)
		n := idx.Len()
		assert.LessOrEqual(t, idx.Height(), bits.Len(uint(n))+1, "after inserting %q", key)
	}

	idx = New()
	for i := 0; i < 2048; i++ {
		idx.Insert(fmt.Sprintf("%05d", i), "")
		n := idx.Len()
		require.LessOrEqual(t, idx.Height(), bits.Len(uint(n))+1, "after %d inserts", n)
	}
	checkInvariants(t, idx)
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	idx := New()
	model := make(map[string]string)

	const keySpace = 300
	for op := 0; op < 5000; op++ {
		key := fmt.Sprintf("key-%03d", rng.Intn(keySpace))
		if rng.Intn(3) == 0 {
			_, present := model[key]
			assert.Equal(t, present, idx.Remove(key), "remove %q", key)
			delete(model, key)
		} else {
			value := fmt.Sprintf("value-%d", op)
			_, present := model[key]
			assert.Equal(t, !present, idx.Insert(key, value), "insert %q", key)
			if !present {
				model[key] = value
			}
		}

		require.Equal(t, len(model), idx.Len())
		checkInvariants(t, idx)

		n := float64(idx.Len())
		maxHeight := 1.4405*math.Log2(n+2) - 0.3277
		require.LessOrEqual(t, float64(idx.Height()), maxHeight)

		if op%250 == 0 {
			for i := 0; i < keySpace; i++ {
				k := fmt.Sprintf("key-%03d", i)
				want, present := model[k]
				rec, ok := idx.Search(k)
				require.Equal(t, present, ok, "search %q", k)
				if ok {
					assert.Equal(t, want, rec.Value)
					assert.Equal(t, k, rec.Key)
				}
			}
		}
	}
}

func inOrderKeys(n *node) []string {
	var keys []string
	var walk func(*node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		keys = append(keys, n.record.Key)
		walk(n.right)
	}
	walk(n)
	return keys
}

// checkInvariants verifies ordering, cached heights and balance for every node.
func checkInvariants(t *testing.T, idx *Index) {
	t.Helper()

	count := 0
	var walk func(n *node, low, high *string) int
	walk = func(n *node, low, high *string) int {
		if n == nil {
			return 0
		}
		count++
		key := n.record.Key
		if low != nil && key <= *low {
			t.Fatalf("key %q not greater than %q", key, *low)
		}
		if high != nil && key >= *high {
			t.Fatalf("key %q not less than %q", key, *high)
		}

		lh := walk(n.left, low, &key)
		rh := walk(n.right, &key, high)
		if d := lh - rh; d > 1 || d < -1 {
			t.Fatalf("node %q out of balance: left %d right %d", key, lh, rh)
		}
		h := max(lh, rh) + 1
		if n.height != h {
			t.Fatalf("node %q caches height %d, want %d", key, n.height, h)
		}
		return h
	}
	walk(idx.root, nil, nil)

	if count != idx.Len() {
		t.Fatalf("tree holds %d nodes, Len reports %d", count, idx.Len())
	}
}
