package www

import (
	"net/http"
)

func (h *Handlers) apiCreateWorkStation(w http.ResponseWriter, r *http.Request) {
	var req createStationRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	s, err := req.toStation()
	if err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	if err := h.engine.CreateWorkStation(r.Context(), s); err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	h.jsonOK(w, s)
}

func (h *Handlers) apiListWorkStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.engine.ListWorkStations(r.Context())
	if err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	h.jsonOK(w, stations)
}

func (h *Handlers) apiGetWorkStation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	s, err := h.engine.GetWorkStation(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	h.jsonOK(w, s)
}

func (h *Handlers) apiUpdateWorkStation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	var req updateStationRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	s, err := h.engine.UpdateWorkStation(r.Context(), id, req.toPatch())
	if err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	h.jsonOK(w, s)
}

func (h *Handlers) apiDeleteWorkStation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	if err := h.engine.DeleteWorkStation(r.Context(), id); err != nil {
		h.writeError(w, r, err, stationResource)
		return
	}
	h.jsonMessage(w, stationResource.deleted)
}
