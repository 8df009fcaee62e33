package handlers

import (
	"net/http"

	"github.com/partytracker/party-service/internal/application/catalog"
	"github.com/partytracker/party-service/internal/transport/http/dto"
	"github.com/partytracker/party-service/internal/transport/http/response"
)

type HomeHandler struct {
	svc *catalog.Service
}

func NewHomeHandler(svc *catalog.Service) *HomeHandler {
	return &HomeHandler{svc: svc}
}

// Home serves the upcoming, trending and featured-club selections.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Home(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToHomeResp(page))
}
