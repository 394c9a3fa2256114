package www

import (
	"net/http"
)

func (h *Handlers) apiCreateProductionOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	o, err := req.toOrder()
	if err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	if err := h.engine.CreateProductionOrder(r.Context(), o); err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	h.jsonOK(w, o)
}

func (h *Handlers) apiListProductionOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.engine.ListProductionOrders(r.Context())
	if err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	h.jsonOK(w, orders)
}

func (h *Handlers) apiGetProductionOrder(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	o, err := h.engine.GetProductionOrder(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	h.jsonOK(w, o)
}

func (h *Handlers) apiUpdateProductionOrder(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	var req updateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	o, err := h.engine.UpdateProductionOrder(r.Context(), id, req.toPatch())
	if err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	h.jsonOK(w, o)
}

func (h *Handlers) apiDeleteProductionOrder(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	if err := h.engine.DeleteProductionOrder(r.Context(), id); err != nil {
		h.writeError(w, r, err, orderResource)
		return
	}
	h.jsonMessage(w, orderResource.deleted)
}
