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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/phonebook/index"
)

// copiedMsg reports the outcome of a clipboard write
type copiedMsg struct {
	text string
	err  error
}

// LookupModel is the Bubble Tea state of the interactive lookup screen
type LookupModel struct {
	book   *Phonebook
	input  textinput.Model
	styles *Styles

	found  *index.Record
	result string
	status string

	width int
	ready bool
}

// NewLookupModel creates the initial model
func NewLookupModel(book *Phonebook) LookupModel {
	ti := textinput.New()
	ti.Placeholder = "Type a contact name and press Enter..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return LookupModel{
		book:   book,
		input:  ti,
		styles: NewStyles(),
		result: fmt.Sprintf("%d contacts loaded.", book.Len()),
	}
}

// Init is called when the program starts
func (m LookupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.search(strings.TrimSpace(m.input.Value()))
			return m, nil
		case "ctrl+y":
			if m.found == nil {
				m.status = m.styles.ErrorMessage.Render("Nothing to copy yet.")
				return m, nil
			}
			phone := m.found.Value
			return m, func() tea.Msg {
				return copiedMsg{text: phone, err: clipboard.WriteAll(phone)}
			}
		}

	case copiedMsg:
		if msg.err != nil {
			m.status = m.styles.ErrorMessage.Render(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			m.status = m.styles.SuccessMessage.Render(fmt.Sprintf("📋 Copied %s to clipboard.", msg.text))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LookupModel) search(name string) {
	m.status = ""
	if name == "" {
		m.found = nil
		m.result = m.styles.NotFound.Render("Enter a name to search for.")
		return
	}

	rec, err := m.book.SearchContact(name)
	if err != nil {
		m.found = nil
		m.result = m.styles.NotFound.Render("Contact not found.")
		return
	}
	m.found = &rec
	m.result = m.styles.Found.Render(fmt.Sprintf("Contact found: %s - %s", rec.Key, rec.Value))
}

func (m LookupModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("📒 Phonebook lookup"),
		"",
		m.styles.InputPrompt.Render("Name: ")+m.input.View(),
		"",
		m.result,
		m.status,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Border.Width(width).Render(body),
		m.renderHelp(),
	)
}

func (m LookupModel) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "search"},
		{"ctrl+y", "copy number"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	return strings.Join(parts, "  •  ")
}

func runLookupApp(book *Phonebook) error {
	program := tea.NewProgram(NewLookupModel(book), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
