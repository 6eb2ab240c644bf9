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
	"runtime"

	"github.com/charmbracelet/glamour"
)

func usageMarkdown() string {
	return fmt.Sprintf(`
# Phonebook %s

Keep contact names and phone numbers in a balanced search tree and find any of them by exact name.

Built with Go %s

## Commands
* **phonebook demo** runs the built-in example (default when no command is given)
* **phonebook find NAME** prints a contact; add **--format yaml|markdown** or **--copy**
* **phonebook add NAME PHONE** stores a new contact (existing names are never overwritten)
* **phonebook remove NAME** deletes a contact
* **phonebook lookup** opens the interactive lookup screen
* **phonebook settings** shows the configuration in ~/%s

## Contacts file
One contact per line, the phone number last:

    'John Doe' 123-456-7890
    # comments and blank lines are ignored

## Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

## License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version(), configFileName)
}

func getHelpMessage() string {
	message := usageMarkdown()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return message
	}

	result, err := renderer.Render(message)
	if err != nil {
		return message
	}
	return result
}
