package dto

import (
	"fmt"
	"strconv"

	"staysync/internal/domains/booking/form"
	"staysync/internal/domains/booking/model"
	"staysync/shared"
	"staysync/shared/timezone"
)

type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=guest_name email phone room_type check_in check_out adults children special_requests"`
	Value string `json:"value" validate:"max=1000"`
}

// DraftRequest is a complete draft sent for stateless validation.
type DraftRequest struct {
	GuestName       string `json:"guest_name"       validate:"max=100"`
	Email           string `json:"email"            validate:"max=100"`
	Phone           string `json:"phone"            validate:"max=20"`
	RoomType        string `json:"room_type"        validate:"max=50"`
	CheckIn         string `json:"check_in"         validate:"calendardate"`
	CheckOut        string `json:"check_out"        validate:"calendardate"`
	Adults          *int   `json:"adults"           validate:"omitempty,gte=1,lte=10"`
	Children        *int   `json:"children"         validate:"omitempty,gte=0,lte=10"`
	SpecialRequests string `json:"special_requests" validate:"max=1000"`
}

// ToModel builds a draft by replaying every field through Draft.Set.
func (r *DraftRequest) ToModel() (model.Draft, error) {
	draft := model.NewDraft()

	values := map[model.Field]string{
		model.FieldGuestName:       r.GuestName,
		model.FieldEmail:           r.Email,
		model.FieldPhone:           r.Phone,
		model.FieldRoomType:        r.RoomType,
		model.FieldCheckIn:         r.CheckIn,
		model.FieldCheckOut:        r.CheckOut,
		model.FieldSpecialRequests: r.SpecialRequests,
	}

	if r.Adults != nil {
		values[model.FieldAdults] = strconv.Itoa(*r.Adults)
	}

	if r.Children != nil {
		values[model.FieldChildren] = strconv.Itoa(*r.Children)
	}

	for _, field := range model.Fields {
		value, ok := values[field]
		if !ok {
			continue
		}

		if err := draft.Set(field, value); err != nil {
			return model.Draft{}, fmt.Errorf("failed to set %s: %w", field, err)
		}
	}

	return draft, nil
}

type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func (r *ValidationResponse) FromModel(errs model.Errors) {
	r.Errors = ErrorsFromModel(errs)
	r.Valid = len(errs) == 0
}

func ErrorsFromModel(errs model.Errors) map[string]string {
	res := make(map[string]string, len(errs))
	for field, msg := range errs {
		res[string(field)] = msg
	}

	return res
}

type DraftResponse struct {
	GuestName       string `json:"guest_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomType        string `json:"room_type"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
}

func (r *DraftResponse) FromModel(draft model.Draft) {
	r.GuestName = draft.GuestName
	r.Email = draft.Email
	r.Phone = draft.Phone
	r.RoomType = draft.RoomType
	r.CheckIn = timezone.FormatDate(draft.CheckIn)
	r.CheckOut = timezone.FormatDate(draft.CheckOut)
	r.Adults = draft.Adults
	r.Children = draft.Children
	r.SpecialRequests = draft.SpecialRequests
}

type ViewResponse struct {
	Panel          string `json:"panel"`
	ToggleLabel    string `json:"toggle_label"`
	SubmitLabel    string `json:"submit_label"`
	SubmitDisabled bool   `json:"submit_disabled"`
	Message        string `json:"message,omitempty"`
	CheckInMin     string `json:"check_in_min"`
	CheckOutMin    string `json:"check_out_min"`
}

func (r *ViewResponse) FromModel(view form.View) {
	r.Panel = string(view.Panel)
	r.ToggleLabel = view.ToggleLabel
	r.SubmitLabel = view.SubmitLabel
	r.SubmitDisabled = view.SubmitDisabled
	r.Message = view.Message
	r.CheckInMin = timezone.FormatDate(view.CheckInMin)
	r.CheckOutMin = timezone.FormatDate(view.CheckOutMin)
}

type FormResponse struct {
	ID          string            `json:"id"`
	Phase       string            `json:"phase"`
	Draft       DraftResponse     `json:"draft"`
	Errors      map[string]string `json:"errors"`
	SubmitError string            `json:"submit_error,omitempty"`
	View        ViewResponse      `json:"view"`
}

func (r *FormResponse) FromModel(id string, state form.State) {
	r.ID = id
	r.Phase = state.Phase.String()
	r.Draft.FromModel(state.Draft)
	r.Errors = ErrorsFromModel(state.Errors)
	r.SubmitError = state.SubmitError
	r.View.FromModel(form.Render(state, timezone.Today()))
}

type RecentBookingResponse struct {
	ID       int    `json:"id"`
	Guest    string `json:"guest"`
	Room     string `json:"room"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

func (r *RecentBookingResponse) FromModel(model model.RecentBooking) {
	r.ID = model.ID
	r.Guest = model.Guest
	r.Room = model.Room
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.Status = model.Status
}

type GetRecentBookingsResponse struct {
	Bookings  []RecentBookingResponse `json:"bookings"`
	From      int                     `json:"from"`
	To        int                     `json:"to"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

// FromModels fills one page of bookings; offset is the index of the page's first booking.
func (r *GetRecentBookingsResponse) FromModels(models []model.RecentBooking, offset, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]RecentBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}

	if len(models) > 0 {
		r.From = offset + 1
		r.To = offset + len(models)
	}
}
