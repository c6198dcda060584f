package form

import (
	"regexp"
	"strings"

	"staysync/internal/domains/booking/model"
)

const (
	MessageGuestNameRequired = "Guest name is required"
	MessageEmailRequired     = "Email is required"
	MessageEmailInvalid      = "Email is invalid"
	MessagePhoneRequired     = "Phone number is required"
	MessageRoomTypeRequired  = "Please select a room type"
	MessageCheckInRequired   = "Check-in date is required"
	MessageCheckOutRequired  = "Check-out date is required"
	MessageCheckOutOrder     = "Check-out date must be after check-in date"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// RoomChecker tells whether a room code belongs to the configured catalog.
type RoomChecker interface {
	Has(id string) bool
}

// Validate reports every failing field of draft at once. An empty result means the draft can be
// submitted. A nil rooms accepts any non-empty room code.
func Validate(draft model.Draft, rooms RoomChecker) model.Errors {
	errs := model.Errors{}

	if strings.TrimSpace(draft.GuestName) == "" {
		errs[model.FieldGuestName] = MessageGuestNameRequired
	}

	switch {
	case strings.TrimSpace(draft.Email) == "":
		errs[model.FieldEmail] = MessageEmailRequired
	case !emailPattern.MatchString(draft.Email):
		errs[model.FieldEmail] = MessageEmailInvalid
	}

	if strings.TrimSpace(draft.Phone) == "" {
		errs[model.FieldPhone] = MessagePhoneRequired
	}

	if draft.RoomType == "" || (rooms != nil && !rooms.Has(draft.RoomType)) {
		errs[model.FieldRoomType] = MessageRoomTypeRequired
	}

	if draft.CheckIn.IsZero() {
		errs[model.FieldCheckIn] = MessageCheckInRequired
	}

	switch {
	case draft.CheckOut.IsZero():
		errs[model.FieldCheckOut] = MessageCheckOutRequired
	case !draft.CheckIn.IsZero() && !draft.CheckOut.After(draft.CheckIn):
		errs[model.FieldCheckOut] = MessageCheckOutOrder
	}

	return errs
}
