// Package contact holds the contact record model and the in-memory
// directory that stores records by name.
package contact

import (
	"fmt"
	"slices"
	"strings"
)

// Record is one contact: an immutable name, an ordered phone list and an
// optional birthday that can be set once.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord returns a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: ReasonNameRequired}
	}
	return &Record{name: name}, nil
}

// Name returns the record's key.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// AddPhone validates number and appends it. Duplicates are kept.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// DeletePhone removes every phone equal to number. Absent numbers are ignored.
func (r *Record) DeletePhone(number string) {
	r.phones = slices.DeleteFunc(r.phones, func(p Phone) bool { return string(p) == number })
}

// EditPhone replaces oldNumber with newNumber. It is not atomic: when
// newNumber fails validation, oldNumber has already been removed.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	r.DeletePhone(oldNumber)
	return r.AddPhone(newNumber)
}

// FindPhone reports whether number is on the record.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.phones {
		if string(p) == number {
			return p, true
		}
	}
	return "", false
}

// SetBirthday parses s as DD.MM.YYYY and stores it. A second call fails
// and keeps the first value.
func (r *Record) SetBirthday(s string) error {
	if r.birthday != nil {
		return &ValidationError{Field: "birthday", Reason: ReasonBirthdayAlready}
	}
	b, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record on a single line.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := "No birthday"
	if b, ok := r.Birthday(); ok {
		birthday = b.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
