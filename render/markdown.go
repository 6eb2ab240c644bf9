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
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/cybrota/phonebook/index"
)

// markdownEscaper backslash-escapes the characters the markdown parser would
// otherwise read as emphasis, headings, links or inline HTML.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"#", `\#`,
	"!", `\!`,
	"|", `\|`,
	"<", `\<`,
	">", `\>`,
	"~", `\~`,
)

func markdownSource(rec index.Record) string {
	return fmt.Sprintf("# %s\n\n* **Phone:** %s\n",
		markdownEscaper.Replace(rec.Key), markdownEscaper.Replace(rec.Value))
}

// MarkdownRenderer draws a small contact card for the terminal
type MarkdownRenderer struct {
	lineWidth int
}

func NewMarkdownRenderer(lineWidth int) *MarkdownRenderer {
	return &MarkdownRenderer{lineWidth: lineWidth}
}

func (m *MarkdownRenderer) SupportsFormat(format string) bool {
	return format == "markdown" || format == "md"
}

func (m *MarkdownRenderer) Priority() int {
	return 3
}

func (m *MarkdownRenderer) Render(rec index.Record) (string, error) {
	return string(markdown.Render(markdownSource(rec), m.lineWidth, 2)), nil
}
