package model

import (
	"fmt"
	"strconv"
	"time"

	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/timezone"
	"staysync/shared/validator"
)

const (
	EntityName = "booking"
)

// Field names a BookingDraft field. The same names key validation errors.
type Field string

const (
	FieldGuestName       Field = "guest_name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldRoomType        Field = "room_type"
	FieldCheckIn         Field = "check_in"
	FieldCheckOut        Field = "check_out"
	FieldAdults          Field = "adults"
	FieldChildren        Field = "children"
	FieldSpecialRequests Field = "special_requests"
)

// Fields lists every draft field in form order.
var Fields = []Field{
	FieldGuestName,
	FieldEmail,
	FieldPhone,
	FieldRoomType,
	FieldCheckIn,
	FieldCheckOut,
	FieldAdults,
	FieldChildren,
	FieldSpecialRequests,
}

const (
	MinAdults   = 1
	MaxAdults   = 10
	MinChildren = 0
	MaxChildren = 10
)

// Draft is the in-progress, unsaved reservation. Zero dates mean unset.
type Draft struct {
	GuestName       string
	Email           string
	Phone           string
	RoomType        string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
}

// NewDraft returns the empty draft a freshly opened form starts with.
func NewDraft() Draft {
	return Draft{
		Adults:   MinAdults,
		Children: MinChildren,
	}
}

// Errors maps a field to the message shown next to it.
type Errors map[Field]string

// Ordered returns the failing fields in form order.
func (e Errors) Ordered() []Field {
	fields := make([]Field, 0, len(e))

	for _, field := range Fields {
		if _, ok := e[field]; ok {
			fields = append(fields, field)
		}
	}

	return fields
}

// ParseField reports whether name is a known draft field.
func ParseField(name string) (Field, bool) {
	for _, field := range Fields {
		if string(field) == name {
			return field, true
		}
	}

	return constant.Empty, false
}

// Set assigns the raw input value to field. Malformed input leaves the draft untouched.
func (d *Draft) Set(field Field, value string) error {
	switch field {
	case FieldGuestName:
		d.GuestName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldRoomType:
		d.RoomType = value
	case FieldSpecialRequests:
		d.SpecialRequests = value
	case FieldCheckIn, FieldCheckOut:
		date, err := parseDate(field, value)
		if err != nil {
			return err
		}

		if field == FieldCheckIn {
			d.CheckIn = date
		} else {
			d.CheckOut = date
		}
	case FieldAdults:
		count, err := parseCount(field, value, MinAdults, MaxAdults)
		if err != nil {
			return err
		}

		d.Adults = count
	case FieldChildren:
		count, err := parseCount(field, value, MinChildren, MaxChildren)
		if err != nil {
			return err
		}

		d.Children = count
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unknown field %q", field)) // nolint:wrapcheck
	}

	return nil
}

func parseDate(field Field, value string) (time.Time, error) {
	if value == constant.Empty {
		return time.Time{}, nil
	}

	if err := validator.ValidateVar(value, "calendardate"); err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)) // nolint:wrapcheck
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	// The zero time is how an unset date is stored.
	if date.Year() <= 1 {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("%s must be a date after year 1", field)) // nolint:wrapcheck
	}

	return date, nil
}

func parseCount(field Field, value string, minimum, maximum int) (int, error) {
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be a number", field)) // nolint:wrapcheck
	}

	if err := validator.ValidateVar(count, fmt.Sprintf("gte=%d,lte=%d", minimum, maximum)); err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be between %d and %d", field, minimum, maximum)) // nolint:wrapcheck
	}

	return count, nil
}

const (
	StatusCheckedIn = "checked-in"
	StatusConfirmed = "confirmed"
)

// RecentBooking is a read-only row of the recent bookings panel.
type RecentBooking struct {
	ID       int    `json:"id"`
	Guest    string `json:"guest"`
	Room     string `json:"room"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}
