package dto

import (
	"staysync/internal/domains/preference/model"
	"staysync/shared/constant"
)

type SetDarkModeRequest struct {
	DarkMode *bool `json:"dark_mode" validate:"required"`
}

type PreferenceResponse struct {
	DarkMode bool   `json:"dark_mode"`
	Theme    string `json:"theme"`
	Source   string `json:"source"`
}

func (r *PreferenceResponse) FromModel(pref model.Preference, source model.Source) {
	r.DarkMode = pref.DarkMode
	r.Source = string(source)

	r.Theme = constant.ColorSchemeLight
	if pref.DarkMode {
		r.Theme = constant.ColorSchemeDark
	}
}
