package http

import (
	"pronote-gateway/internal/fetch"
)

// --- Request DTOs ---

type fetchReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Days     int    `json:"days"     binding:"omitempty,min=1,max=90"`
	Start    string `json:"start"    binding:"omitempty,datetime=2006-01-02"`
	End      string `json:"end"      binding:"omitempty,datetime=2006-01-02"`
}

func (r fetchReq) validate() error { return nil }

func (r fetchReq) toInput() fetch.Input {
	days := r.Days
	if days <= 0 {
		days = 7
	}
	return fetch.Input{
		Username: r.Username,
		Password: r.Password,
		Days:     days,
		Start:    r.Start,
		End:      r.End,
	}
}

type probeReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (r probeReq) validate() error { return nil }

// --- Response DTOs ---

// The fetch endpoint returns the envelope verbatim: downstream widgets
// consume its exact key layout, so no wrapper is applied.

type probeResp struct {
	OK       bool `json:"ok"`
	LoggedIn bool `json:"logged_in"`
	Mock     bool `json:"mock,omitempty"`
}

func (h *handler) newProbeResp(out fetch.ProbeOutput) probeResp {
	return probeResp{
		OK:       out.OK,
		LoggedIn: out.LoggedIn,
		Mock:     out.Mock,
	}
}

type pingResp struct {
	OK             bool   `json:"ok"`
	Mode           string `json:"mode"`
	IncludeContent bool   `json:"include_content"`
}

func (h *handler) newPingResp() pingResp {
	mode := "REAL"
	if h.uc.Mock() {
		mode = "MOCK"
	}
	return pingResp{
		OK:             true,
		Mode:           mode,
		IncludeContent: h.uc.IncludeContent(),
	}
}
