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
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	"github.com/cybrota/phonebook/index"
	"github.com/cybrota/phonebook/render"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var appFs = afero.NewOsFs()

// demoContacts is the example data set used by the demo command
var demoContacts = []ContactEntry{
	{Name: "John Doe", PhoneNumber: "123-456-7890"},
	{Name: "Jane Smith", PhoneNumber: "987-654-3210"},
	{Name: "Alice Johnson", PhoneNumber: "555-555-5555"},
}

// runDemo adds a few contacts, looks one up, removes it and looks again.
func runDemo(w io.Writer, showStats bool) error {
	book := NewPhonebook(defaultConfig().Lookup)
	for _, c := range demoContacts {
		if err := book.AddContact(c.Name, c.PhoneNumber); err != nil {
			return err
		}
	}

	renderers := render.NewManager()
	printContact := func(name string) error {
		rec, err := book.SearchContact(name)
		if errors.Is(err, index.ErrNotFound) {
			fmt.Fprintln(w, "Contact not found.")
			return nil
		}
		if err != nil {
			return err
		}
		out, err := renderers.Render(render.DefaultFormat, rec)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		return nil
	}

	if err := printContact("Jane Smith"); err != nil {
		return err
	}
	if err := book.RemoveContact("Jane Smith"); err != nil {
		return err
	}
	if err := printContact("Jane Smith"); err != nil {
		return err
	}
	if err := printContact("John Doe"); err != nil {
		return err
	}

	if showStats {
		fmt.Fprintf(w, "contacts: %d, tree height: %d\n", book.Len(), book.Height())
	}
	return nil
}

// loadSettings reads the config file, falling back to defaults on error.
func loadSettings(contactsOverride string) *Config {
	config, err := LoadConfig(appFs)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if contactsOverride != "" {
		config.Contacts.File = contactsOverride
	}
	config.Contacts.File = expandHome(config.Contacts.File)
	return config
}

func loadPhonebook(fs afero.Fs, config *Config) (*Phonebook, error) {
	book := NewPhonebook(config.Lookup)
	stats, err := readContactsAndPopulateBook(fs, config.Contacts.File, book, config.Contacts.ShowProgress)
	if err != nil {
		return nil, err
	}
	if stats.Duplicates > 0 || stats.Skipped > 0 {
		log.Printf("Loaded %d contacts from %s (%d duplicates, %d skipped)",
			stats.Loaded, config.Contacts.File, stats.Duplicates, stats.Skipped)
	}
	return book, nil
}

// runAdd stores a new contact in the book and appends it to the contacts file.
func runAdd(fs afero.Fs, w io.Writer, config *Config, name, phoneNumber string) error {
	book, err := loadPhonebook(fs, config)
	if err != nil {
		return err
	}
	if err := book.AddContact(name, phoneNumber); err != nil {
		return err
	}
	if err := appendContact(fs, config.Contacts.File, name, phoneNumber); err != nil {
		return err
	}
	fmt.Fprintln(w, styles.SuccessMessage.Render("Added "+name))
	return nil
}

// runRemove deletes a contact and rewrites the contacts file without it.
func runRemove(fs afero.Fs, w io.Writer, config *Config, name string) error {
	book, err := loadPhonebook(fs, config)
	if err != nil {
		return err
	}
	if err := book.RemoveContact(name); err != nil {
		return err
	}
	if _, err := dropContact(fs, config.Contacts.File, name); err != nil {
		return err
	}
	fmt.Fprintln(w, styles.SuccessMessage.Render("Removed "+name))
	return nil
}

func main() {
	banner := fmt.Sprintf("📒 Phonebook [Version: %s]\nA balanced-tree contact index for your terminal.\n",
		styles.Title.Render(version))

	var contactsPath string

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in phonebook example",
		Long:  fmt.Sprintf("%s\n%s", banner, "Demo adds three contacts, looks one up, removes it and looks again"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, _ := cmd.Flags().GetBool("stats")
			return runDemo(cmd.OutOrStdout(), stats)
		},
	}
	cmdDemo.Flags().Bool("stats", false, "print contact count and tree height")

	var cmdFind = &cobra.Command{
		Use:   "find NAME",
		Short: "Look up a contact by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadPhonebook(appFs, loadSettings(contactsPath))
			if err != nil {
				return err
			}

			rec, err := book.SearchContact(args[0])
			if errors.Is(err, index.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), styles.NotFound.Render("Contact not found."))
				return nil
			}
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			out, err := render.NewManager().Render(format, rec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if copyNumber, _ := cmd.Flags().GetBool("copy"); copyNumber {
				if err := clipboard.WriteAll(rec.Value); err != nil {
					return errors.Wrap(err, "copy to clipboard")
				}
				fmt.Fprintln(os.Stderr, styles.SuccessMessage.Render("📋 Copied "+rec.Value+" to clipboard."))
			}
			return nil
		},
	}
	cmdFind.Flags().String("format", render.DefaultFormat, "output format: plain, yaml or markdown")
	cmdFind.Flags().Bool("copy", false, "copy the phone number to the clipboard")

	var cmdAdd = &cobra.Command{
		Use:   "add NAME PHONE",
		Short: "Add a contact (existing names are kept)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(appFs, cmd.OutOrStdout(), loadSettings(contactsPath), args[0], args[1])
		},
	}

	var cmdRemove = &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(appFs, cmd.OutOrStdout(), loadSettings(contactsPath), args[0])
		},
	}

	var cmdLookup = &cobra.Command{
		Use:   "lookup",
		Short: "Open the interactive lookup screen",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			book, err := loadPhonebook(appFs, loadSettings(contactsPath))
			if err != nil {
				log.Fatalf("Error reading contacts: %v", err)
			}
			if err := runLookupApp(book); err != nil {
				log.Fatalf("Error running lookup: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(appFs)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Phonebook usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Phonebook version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "phonebook",
		Version:      version,
		Long:         banner,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the demo when no subcommand is provided
			return runDemo(cmd.OutOrStdout(), false)
		},
	}
	rootCmd.PersistentFlags().StringVar(&contactsPath, "contacts", "", "contacts file (overrides contacts.file in ~/"+configFileName+")")
	rootCmd.AddCommand(cmdDemo, cmdFind, cmdAdd, cmdRemove, cmdLookup, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
