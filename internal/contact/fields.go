package contact

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the DD.MM.YYYY layout accepted for birthdays.
const DateLayout = "02.01.2006"

// phoneRule admits exactly ten ASCII decimal digits.
const phoneRule = "len=10,number"

var validate = validator.New()

// Phone is a validated 10-digit phone number.
type Phone string

// NewPhone validates number and returns it as a Phone.
func NewPhone(number string) (Phone, error) {
	if err := validate.Var(number, phoneRule); err != nil {
		return "", &ValidationError{Field: "phone", Reason: ReasonPhoneFormat}
	}
	return Phone(number), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a calendar date. Only year, month and day are meaningful.
type Birthday struct {
	time.Time
}

// ParseBirthday parses a DD.MM.YYYY string. time.Parse rejects dates that do
// not exist, such as 30.02.2024.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: ReasonBirthdayFormat}
	}
	return Birthday{Time: t}, nil
}

func (b Birthday) String() string { return b.Format(DateLayout) }

// nextOccurrence returns the first anniversary of b on or after day,
// where day is a midnight UTC date. 29 February falls back to 28 February
// in non-leap years.
func (b Birthday) nextOccurrence(day time.Time) time.Time {
	for year := day.Year(); ; year++ {
		d := anniversary(b, year)
		if !d.Before(day) {
			return d
		}
	}
}

func anniversary(b Birthday, year int) time.Time {
	month, dom := b.Month(), b.Day()
	if month == time.February && dom == 29 && !isLeap(year) {
		dom = 28
	}
	return time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// dateOf truncates t to its calendar date in t's own location, expressed as
// midnight UTC so that dates compare without DST effects.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
