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

// Package render formats contact records for the terminal.
package render

import "github.com/cybrota/phonebook/index"

// Renderer defines the interface for the different output formats
type Renderer interface {
	Render(rec index.Record) (string, error)
	SupportsFormat(format string) bool
	Priority() int // Lower number = higher priority
}

// Contact is the serialised shape of a record
type Contact struct {
	Name        string `yaml:"name"`
	PhoneNumber string `yaml:"phone_number"`
}

// NewContact converts an index record into a Contact
func NewContact(rec index.Record) Contact {
	return Contact{Name: rec.Key, PhoneNumber: rec.Value}
}
