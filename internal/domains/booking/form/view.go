package form

import (
	"time"
)

// Panel is the part of the reservation card that is visible.
type Panel string

const (
	PanelBookings Panel = "bookings"
	PanelForm     Panel = "form"
	PanelSuccess  Panel = "success"
)

const (
	LabelNewBooking    = "New Booking"
	LabelCancel        = "Cancel"
	LabelCreateBooking = "Create Booking"
	LabelProcessing    = "Processing..."
	MessageSuccess     = "Booking successfully created!"
)

// View is everything a client needs to draw the reservation card for one state.
type View struct {
	Panel          Panel
	ToggleLabel    string
	SubmitLabel    string
	SubmitDisabled bool
	Message        string
	CheckInMin     time.Time
	CheckOutMin    time.Time
}

// Render maps a state to its view. It has no side effects; today is the first selectable date.
func Render(state State, today time.Time) View {
	view := View{
		ToggleLabel: LabelCancel,
		SubmitLabel: LabelCreateBooking,
		CheckInMin:  today,
		CheckOutMin: today,
	}

	if !state.Draft.CheckIn.IsZero() {
		view.CheckOutMin = state.Draft.CheckIn
	}

	switch state.Phase {
	case PhaseIdle:
		view.Panel = PanelBookings
		view.ToggleLabel = LabelNewBooking
	case PhaseEditing:
		view.Panel = PanelForm
		view.Message = state.SubmitError
	case PhaseSubmitting:
		view.Panel = PanelForm
		view.SubmitLabel = LabelProcessing
		view.SubmitDisabled = true
	case PhaseSuccess:
		view.Panel = PanelSuccess
		view.SubmitDisabled = true
		view.Message = MessageSuccess
	}

	return view
}
