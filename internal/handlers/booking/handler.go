package booking

import (
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/booking/model/dto"
	"staysync/internal/domains/booking/service"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/validator"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/recent", handler.GetRecentBookings)
		routerGroup.Post("/validate", handler.ValidateDraft)

		routerGroup.Route("/forms", func(formGroup chi.Router) {
			formGroup.Post("/", handler.OpenForm)
			formGroup.Get("/{id}", handler.GetForm)
			formGroup.Patch("/{id}/fields", handler.UpdateField)
			formGroup.Post("/{id}/submit", handler.SubmitForm)
			formGroup.Post("/{id}/toggle", handler.ToggleForm)
			formGroup.Delete("/{id}", handler.DiscardForm)
		})
	})
}

// GetRecentBookings lists the recent bookings panel.
// @Summary Get recent bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination and search parameters"
// @Success 200 {object} response.Data[dto.GetRecentBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/recent [get]
func (handler *Handler) GetRecentBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := validator.ValidateStruct(&queryParams); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetRecent(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ValidateDraft checks a complete draft without opening a form.
// @Summary Validate a booking draft
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.DraftRequest true "Draft"
// @Success 200 {object} response.Data[dto.ValidationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/validate [post]
func (handler *Handler) ValidateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateDraft")
	defer scope.End()

	req := dto.DraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("invalid draft request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Validate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// OpenForm starts a booking form session in the editing phase.
// @Summary Open a booking form
// @Tags Booking
// @Produce json
// @Success 201 {object} response.Data[dto.FormResponse]
// @Failure 500 {object} response.Error
// @Router /v1/reservations/forms [post]
func (handler *Handler) OpenForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenForm")
	defer scope.End()

	res, err := handler.service.Open(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open booking form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetForm returns the form state and its rendered view.
// @Summary Get a booking form
// @Tags Booking
// @Produce json
// @Param id path string true "Form session ID"
// @Success 200 {object} response.Data[dto.FormResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/forms/{id} [get]
func (handler *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForm")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateField sets one draft field.
// @Summary Update a booking form field
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Form session ID"
// @Param request body dto.UpdateFieldRequest true "Field and value"
// @Success 200 {object} response.Data[dto.FormResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/forms/{id}/fields [patch]
func (handler *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateField")
	defer scope.End()

	req := dto.UpdateFieldRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateField(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitForm validates the draft and starts the booking when it is valid.
// @Summary Submit a booking form
// @Tags Booking
// @Produce json
// @Param id path string true "Form session ID"
// @Success 202 {object} response.Data[dto.FormResponse] "Booking is being created"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Data[dto.FormResponse] "Draft has validation errors"
// @Router /v1/reservations/forms/{id}/submit [post]
func (handler *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitForm")
	defer scope.End()

	res, err := handler.service.Submit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if len(res.Errors) > 0 {
		response.WithJSON(w, http.StatusUnprocessableEntity, res)

		return
	}

	response.WithJSON(w, http.StatusAccepted, res)
}

// ToggleForm opens an idle form or closes an open one.
// @Summary Toggle a booking form
// @Tags Booking
// @Produce json
// @Param id path string true "Form session ID"
// @Success 200 {object} response.Data[dto.FormResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/forms/{id}/toggle [post]
func (handler *Handler) ToggleForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleForm")
	defer scope.End()

	res, err := handler.service.Toggle(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DiscardForm closes the form and drops the session.
// @Summary Discard a booking form
// @Tags Booking
// @Param id path string true "Form session ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /v1/reservations/forms/{id} [delete]
func (handler *Handler) DiscardForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DiscardForm")
	defer scope.End()

	if err := handler.service.Discard(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}
