package preference

import (
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/preference/model/dto"
	"staysync/internal/domains/preference/service"
	"staysync/shared/constant"
	"staysync/shared/validator"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Preference
	otel    otel.Otel
}

func New(service service.Preference, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/preferences", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPreference)
		routerGroup.Put("/dark-mode", handler.SetDarkMode)
		routerGroup.Post("/dark-mode/toggle", handler.ToggleDarkMode)
	})
}

// GetPreference returns the effective dark mode preference of the calling client.
// @Summary Get display preference
// @Tags Preference
// @Produce json
// @Param X-Client-ID header string false "Client ID"
// @Param Sec-CH-Prefers-Color-Scheme header string false "System color scheme"
// @Success 200 {object} response.Data[dto.PreferenceResponse]
// @Router /v1/preferences [get]
func (handler *Handler) GetPreference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPreference")
	defer scope.End()

	res, err := handler.service.Get(ctx, clientID(r), r.Header.Get(constant.RequestHeaderPrefersColorScheme))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get preference")

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.ResponseHeaderAcceptCH, constant.RequestHeaderPrefersColorScheme)
	response.WithJSON(w, http.StatusOK, res)
}

// SetDarkMode stores the dark mode preference.
// @Summary Set dark mode
// @Tags Preference
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client ID"
// @Param request body dto.SetDarkModeRequest true "Dark mode"
// @Success 200 {object} response.Data[dto.PreferenceResponse]
// @Failure 400 {object} response.Error
// @Router /v1/preferences/dark-mode [put]
func (handler *Handler) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDarkMode")
	defer scope.End()

	req := dto.SetDarkModeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SetDarkMode(ctx, clientID(r), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set dark mode")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ToggleDarkMode flips the effective dark mode preference and stores it.
// @Summary Toggle dark mode
// @Tags Preference
// @Produce json
// @Param X-Client-ID header string true "Client ID"
// @Success 200 {object} response.Data[dto.PreferenceResponse]
// @Failure 400 {object} response.Error
// @Router /v1/preferences/dark-mode/toggle [post]
func (handler *Handler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleDarkMode")
	defer scope.End()

	res, err := handler.service.ToggleDarkMode(ctx, clientID(r), r.Header.Get(constant.RequestHeaderPrefersColorScheme))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle dark mode")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func clientID(r *http.Request) string {
	return r.Header.Get(constant.RequestHeaderClientID)
}
