package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/partytracker/party-service/internal/application/catalog"
	"github.com/partytracker/party-service/internal/application/listing"
	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/transport/http/dto"
	"github.com/partytracker/party-service/internal/transport/http/response"
	"github.com/partytracker/party-service/internal/transport/http/validate"
)

type ClubsHandler struct {
	svc *catalog.Service
}

func NewClubsHandler(svc *catalog.Service) *ClubsHandler {
	return &ClubsHandler{svc: svc}
}

func (h *ClubsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListClubs(r.Context(), listing.QueryFromValues(r.URL.Query()))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToClubList(page))
}

func (h *ClubsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "club_id")
	if !validate.IsRecordID(id) {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"club_id": "must be a record id",
		}))
		return
	}
	c, err := h.svc.GetClub(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToClubResp(c))
}
