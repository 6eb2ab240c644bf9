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

	"github.com/cybrota/phonebook/index"
)

// PlainRenderer prints the one-line "Contact found" form
type PlainRenderer struct{}

func (p *PlainRenderer) SupportsFormat(format string) bool {
	return format == "plain" || format == "text"
}

func (p *PlainRenderer) Priority() int {
	return 1
}

func (p *PlainRenderer) Render(rec index.Record) (string, error) {
	return fmt.Sprintf("Contact found: %s - %s", rec.Key, rec.Value), nil
}
