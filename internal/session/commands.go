package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"contactbook/internal/contact"
)

// command describes one entry of the command table.
type command struct {
	name    string
	aliases []string
	usage   string
	summary string
	minArgs int
	maxArgs int
	quit    bool
	run     func(s *Session, args []string) (string, error)
}

// commands is filled in init so that help can refer to the table.
var commands []command

func init() {
	commands = []command{
		{name: "hello", summary: "greet the bot", run: hello},
		{name: "add", usage: "<name> [phone]", summary: "add a contact or a phone to an existing contact", minArgs: 1, maxArgs: 2, run: addContact},
		{name: "change", usage: "<name> [old_phone] <new_phone>", summary: "replace a phone number", minArgs: 2, maxArgs: 3, run: changeContact},
		{name: "phone", usage: "<name>", summary: "show a contact's phone numbers", minArgs: 1, maxArgs: 1, run: showPhone},
		{name: "delete", usage: "<name>", summary: "remove a contact", minArgs: 1, maxArgs: 1, run: deleteContact},
		{name: "all", summary: "list every contact", run: showAll},
		{name: "add-birthday", usage: "<name> <DD.MM.YYYY>", summary: "set a contact's birthday", minArgs: 2, maxArgs: 2, run: addBirthday},
		{name: "show-birthday", usage: "<name>", summary: "show a contact's birthday", minArgs: 1, maxArgs: 1, run: showBirthday},
		{name: "birthdays", usage: "[days]", summary: "list birthdays in the coming days", maxArgs: 1, run: birthdays},
		{name: "help", summary: "show this list", run: help},
		{name: "exit", aliases: []string{"close"}, summary: "leave", quit: true, run: goodbye},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
		for _, a := range c.aliases {
			if a == name {
				return c, true
			}
		}
	}
	return command{}, false
}

func hello(*Session, []string) (string, error) {
	return "How can I help you?", nil
}

func goodbye(*Session, []string) (string, error) {
	return "Good bye!", nil
}

// addContact creates the contact when it is missing and appends the phone,
// if given. An invalid phone leaves the directory unchanged.
func addContact(s *Session, args []string) (string, error) {
	r, err := s.dir.Find(args[0])
	created := errors.Is(err, contact.ErrNotFound)
	if created {
		if r, err = contact.NewRecord(args[0]); err != nil {
			return "", err
		}
	}

	if len(args) > 1 {
		if err := r.AddPhone(args[1]); err != nil {
			return "", err
		}
	}

	if created {
		s.dir.AddRecord(r)
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

// changeContact replaces the named phone, or the first phone when only the
// new number is given. The new number is checked before anything is removed.
func changeContact(s *Session, args []string) (string, error) {
	r, err := s.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	newNumber := args[len(args)-1]
	if _, err := contact.NewPhone(newNumber); err != nil {
		return "", err
	}

	var oldNumber string
	if len(args) == 3 {
		oldNumber = args[1]
		if _, ok := r.FindPhone(oldNumber); !ok {
			return "", fmt.Errorf("phone %s not found for %s", oldNumber, r.Name())
		}
	} else {
		phones := r.Phones()
		if len(phones) == 0 {
			return "", fmt.Errorf("no phone numbers for %s", r.Name())
		}
		oldNumber = phones[0].String()
	}

	if err := r.EditPhone(oldNumber, newNumber); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func showPhone(s *Session, args []string) (string, error) {
	r, err := s.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("No phone numbers for %s", r.Name()), nil
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; "), nil
}

func deleteContact(s *Session, args []string) (string, error) {
	if _, err := s.dir.Find(args[0]); err != nil {
		return "", err
	}
	s.dir.Delete(args[0])
	return "Contact deleted.", nil
}

func showAll(s *Session, _ []string) (string, error) {
	records := s.dir.All()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}
	return renderRecords(records), nil
}

func addBirthday(s *Session, args []string) (string, error) {
	r, err := s.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s", r.Name()), nil
}

func showBirthday(s *Session, args []string) (string, error) {
	r, err := s.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	b, ok := r.Birthday()
	if !ok {
		return fmt.Sprintf("No birthday set for %s", r.Name()), nil
	}
	return fmt.Sprintf("Birthday for %s: %s", r.Name(), b), nil
}

func birthdays(s *Session, args []string) (string, error) {
	window := s.window
	if len(args) == 1 {
		days, err := strconv.Atoi(args[0])
		if err != nil || days < 0 {
			return "", &ArgumentError{Command: "birthdays", Usage: "[days]"}
		}
		window = days
	}

	upcoming := s.dir.UpcomingBirthdays(s.now(), window)
	if len(upcoming) == 0 {
		return "No upcoming birthdays", nil
	}
	return renderRecords(upcoming), nil
}

func help(*Session, []string) (string, error) {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range commands {
		name := c.name
		if len(c.aliases) > 0 {
			name += "|" + strings.Join(c.aliases, "|")
		}
		fmt.Fprintf(&b, "\n  %-14s %-30s %s", name, c.usage, c.summary)
	}
	return b.String(), nil
}

func renderRecords(records []*contact.Record) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
