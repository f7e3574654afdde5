package dto

import "strings"

type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	TeamName string `json:"team_name"`
	TeamCode string `json:"team_code"`
	Portal   string `json:"portal"`

	// camelCase aliases kept for the existing web client
	TeamNameCamel string `json:"teamName"`
	TeamCodeCamel string `json:"teamCode"`
}

func (r *SignupReq) Normalize() {
	if r.TeamName == "" && r.TeamNameCamel != "" {
		r.TeamName = r.TeamNameCamel
	}
	if r.TeamCode == "" && r.TeamCodeCamel != "" {
		r.TeamCode = r.TeamCodeCamel
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.TeamCode = strings.TrimSpace(r.TeamCode)
	r.Portal = strings.TrimSpace(r.Portal)
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	TeamCode string `json:"team_code"`
	Portal   string `json:"portal"`

	TeamCodeCamel string `json:"teamCode"`
}

func (r *LoginReq) Normalize() {
	if r.TeamCode == "" && r.TeamCodeCamel != "" {
		r.TeamCode = r.TeamCodeCamel
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.TeamCode = strings.TrimSpace(r.TeamCode)
	r.Portal = strings.TrimSpace(r.Portal)
}

type SelectPortalReq struct {
	Portal string `json:"portal" binding:"required"`
}
