package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/partytracker/party-service/internal/application/catalog"
	"github.com/partytracker/party-service/internal/application/listing"
	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/transport/http/dto"
	"github.com/partytracker/party-service/internal/transport/http/middleware"
	"github.com/partytracker/party-service/internal/transport/http/response"
	"github.com/partytracker/party-service/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *catalog.Service
}

func NewEventsHandler(svc *catalog.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// List serves the filtered events listing. Unknown or malformed query keys
// are dropped, and the response echoes the canonical query.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListEvents(r.Context(), listing.QueryFromValues(r.URL.Query()))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventList(page))
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsRecordID(id) {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"event_id": "must be a record id",
		}))
		return
	}
	ev, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev))
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or unknown fields",
		}))
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, r, err)
		return
	}

	actor := catalog.Actor{ID: middleware.UserID(r), Role: middleware.Role(r)}
	ev, err := h.svc.CreateEvent(r.Context(), actor, req.ToCmd())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/events/"+ev.ID)
	response.Data(w, http.StatusCreated, dto.ToEventResp(ev))
}
