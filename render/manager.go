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

package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cybrota/phonebook/index"
)

// DefaultFormat is used when no format is requested
const DefaultFormat = "plain"

// Manager picks a renderer for a requested format
type Manager struct {
	renderers []Renderer
}

// NewManager creates a manager with the built-in renderers registered
func NewManager() *Manager {
	m := &Manager{}
	m.Register(&PlainRenderer{})
	m.Register(&YAMLRenderer{})
	m.Register(NewMarkdownRenderer(80))
	return m
}

// Register adds a renderer. Renderers are consulted in priority order.
func (m *Manager) Register(r Renderer) {
	m.renderers = append(m.renderers, r)
	sort.SliceStable(m.renderers, func(i, j int) bool {
		return m.renderers[i].Priority() < m.renderers[j].Priority()
	})
}

// Render formats rec with the best renderer supporting format
func (m *Manager) Render(format string, rec index.Record) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultFormat
	}

	for _, r := range m.renderers {
		if r.SupportsFormat(format) {
			return r.Render(rec)
		}
	}
	return "", fmt.Errorf("no renderer found for format %q", format)
}
