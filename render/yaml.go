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
	"gopkg.in/yaml.v3"
)

// YAMLRenderer emits a contact as a YAML document
type YAMLRenderer struct{}

func (y *YAMLRenderer) SupportsFormat(format string) bool {
	return format == "yaml" || format == "yml"
}

func (y *YAMLRenderer) Priority() int {
	return 2
}

func (y *YAMLRenderer) Render(rec index.Record) (string, error) {
	out, err := yaml.Marshal(NewContact(rec))
	if err != nil {
		return "", fmt.Errorf("failed to marshal contact %q: %v", rec.Key, err)
	}
	return string(out), nil
}
