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

package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLookupModel(t *testing.T) LookupModel {
	t.Helper()
	pb := newTestPhonebook()
	for _, c := range demoContacts {
		require.NoError(t, pb.AddContact(c.Name, c.PhoneNumber))
	}
	return NewLookupModel(pb)
}

func pressEnter(t *testing.T, m LookupModel, query string) LookupModel {
	t.Helper()
	m.input.SetValue(query)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	return next.(LookupModel)
}

func TestLookupModelFindsContact(t *testing.T) {
	m := pressEnter(t, newTestLookupModel(t), "  Jane Smith ")

	require.NotNil(t, m.found)
	assert.Equal(t, "987-654-3210", m.found.Value)
	assert.Contains(t, m.result, "Contact found: Jane Smith - 987-654-3210")
}

func TestLookupModelNotFound(t *testing.T) {
	m := pressEnter(t, newTestLookupModel(t), "Jane Smith")
	require.NotNil(t, m.found)

	m = pressEnter(t, m, "Bob")
	assert.Nil(t, m.found)
	assert.Contains(t, m.result, "Contact not found.")
}

func TestLookupModelCopyWithoutResult(t *testing.T) {
	m := newTestLookupModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)
	assert.Contains(t, next.(LookupModel).status, "Nothing to copy")
}

func TestLookupModelCopiedMessage(t *testing.T) {
	m := newTestLookupModel(t)
	next, _ := m.Update(copiedMsg{text: "123-456-7890"})
	assert.Contains(t, next.(LookupModel).status, "Copied 123-456-7890")
}

func TestLookupModelQuit(t *testing.T) {
	m := newTestLookupModel(t)
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

func TestLookupModelView(t *testing.T) {
	m := newTestLookupModel(t)
	assert.Equal(t, "Initializing...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := next.(LookupModel).View()
	assert.Contains(t, view, "Phonebook lookup")
	assert.Contains(t, view, "3 contacts loaded.")
}
