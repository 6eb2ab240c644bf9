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
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// shellQuote wraps s in single quotes so shellwords reads it back verbatim.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func formatContactLine(name, phoneNumber string) string {
	return shellQuote(name) + " " + shellQuote(phoneNumber)
}

// appendContact adds one line to the contacts file, creating it if needed.
func appendContact(fs afero.Fs, path, name, phoneNumber string) error {
	if err := checkContactFields(name, phoneNumber); err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}

	file, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "open contacts file %s", path)
	}
	defer file.Close()

	if _, err := file.WriteString(formatContactLine(name, phoneNumber) + "\n"); err != nil {
		return errors.Wrapf(err, "write contacts file %s", path)
	}
	return nil
}

// dropContact rewrites the contacts file without the lines whose parsed name
// equals name. Comments and unparsable lines are kept. It returns the number
// of lines removed.
func dropContact(fs afero.Fs, path, name string) (int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "read contacts file %s", path)
	}

	var out bytes.Buffer
	dropped := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if entry, ok, err := parseContactLine(line); err == nil && ok && entry.Name == name {
			dropped++
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrapf(err, "read contacts file %s", path)
	}

	if dropped == 0 {
		return 0, nil
	}
	if err := afero.WriteFile(fs, path, out.Bytes(), 0644); err != nil {
		return 0, errors.Wrapf(err, "write contacts file %s", path)
	}
	return dropped, nil
}
