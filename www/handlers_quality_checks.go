package www

import (
	"net/http"
)

func (h *Handlers) apiCreateQualityCheck(w http.ResponseWriter, r *http.Request) {
	var req createCheckRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	c, err := req.toCheck()
	if err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	if err := h.engine.CreateQualityCheck(r.Context(), c); err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	h.jsonOK(w, c)
}

func (h *Handlers) apiListQualityChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.engine.ListQualityChecks(r.Context())
	if err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	h.jsonOK(w, checks)
}

func (h *Handlers) apiGetQualityCheck(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	c, err := h.engine.GetQualityCheck(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	h.jsonOK(w, c)
}

func (h *Handlers) apiUpdateQualityCheck(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	var req updateCheckRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	c, err := h.engine.UpdateQualityCheck(r.Context(), id, req.toPatch())
	if err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	h.jsonOK(w, c)
}

func (h *Handlers) apiDeleteQualityCheck(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	if err := h.engine.DeleteQualityCheck(r.Context(), id); err != nil {
		h.writeError(w, r, err, checkResource)
		return
	}
	h.jsonMessage(w, checkResource.deleted)
}
