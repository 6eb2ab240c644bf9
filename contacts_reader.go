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
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cybrota/phonebook/index"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
)

// ContactEntry is one parsed line of a contacts file
type ContactEntry struct {
	Name        string
	PhoneNumber string
}

// LoadStats summarises a contacts file load.
type LoadStats struct {
	Loaded     int
	Duplicates int
	Skipped    int
}

// parseContactLine splits a line into a contact. The last shell word is the
// phone number; every word before it makes up the name. ok is false for
// blank and comment lines. An unquoted shell operator (; & | < >) ends
// shellwords parsing early, so such a line is rejected rather than read
// as a shorter contact.
func parseContactLine(line string) (entry ContactEntry, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ContactEntry{}, false, nil
	}

	parser := shellwords.NewParser()
	words, err := parser.Parse(line)
	if err != nil {
		return ContactEntry{}, false, errors.Wrapf(err, "failed to parse %q", line)
	}
	if parser.Position != -1 {
		return ContactEntry{}, false, errors.Errorf("unquoted shell operator in %q", line)
	}
	if len(words) < 2 {
		return ContactEntry{}, false, errors.Errorf("expected a name and a phone number in %q", line)
	}

	return ContactEntry{
		Name:        strings.Join(words[:len(words)-1], " "),
		PhoneNumber: words[len(words)-1],
	}, true, nil
}

// readContacts parses every contact in r. Malformed lines are logged and
// counted in skipped.
func readContacts(r io.Reader) (entries []ContactEntry, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		entry, ok, err := parseContactLine(scanner.Text())
		if err != nil {
			log.Printf("skipping contacts line %d: %v", lineNo, err)
			skipped++
			continue
		}
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}
	return entries, skipped, nil
}

// readContactsAndPopulateBook loads the contacts file at path into pb.
// A missing file is an empty phonebook, not an error.
func readContactsAndPopulateBook(fs afero.Fs, path string, pb *Phonebook, showProgress bool) (LoadStats, error) {
	var stats LoadStats

	file, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, errors.Wrapf(err, "open contacts file %s", path)
	}
	defer file.Close()

	entries, skipped, err := readContacts(file)
	if err != nil {
		return stats, errors.Wrapf(err, "read contacts file %s", path)
	}
	stats.Skipped = skipped

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetDescription("📒 Loading contacts..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, entry := range entries {
		err := pb.AddContact(entry.Name, entry.PhoneNumber)
		switch {
		case err == nil:
			stats.Loaded++
		case errors.Is(err, index.ErrAlreadyExists):
			stats.Duplicates++
		default:
			log.Printf("skipping contact %q: %v", entry.Name, err)
			stats.Skipped++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return stats, nil
}
