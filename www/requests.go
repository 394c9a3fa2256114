package www

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mescore/store"
)

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func required(field string) error {
	return &ValidationError{Field: field, Msg: "field required"}
}

// timestampLayouts are tried in order. Zone-less forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp accepts RFC 3339 as well as the zone-less date and datetime
// strings that HTML date inputs produce.
type Timestamp time.Time

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string")
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Timestamp(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t *Timestamp) ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := time.Time(*t)
	return &v
}

// optionalID tells an absent current_order_id apart from an explicit null.
type optionalID struct {
	store.OptionalID
}

func (o *optionalID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		o.OptionalID = store.ClearID()
		return nil
	}
	var id int64
	if err := json.Unmarshal(b, &id); err != nil {
		return fmt.Errorf("current_order_id must be an integer or null")
	}
	o.OptionalID = store.SetID(id)
	return nil
}

// --- Production orders ---

type createOrderRequest struct {
	OrderNumber *string    `json:"order_number"`
	ProductCode *string    `json:"product_code"`
	Quantity    *int       `json:"quantity"`
	DueDate     *Timestamp `json:"due_date"`
}

func (req *createOrderRequest) toOrder() (*store.ProductionOrder, error) {
	switch {
	case req.OrderNumber == nil:
		return nil, required("order_number")
	case req.ProductCode == nil:
		return nil, required("product_code")
	case req.Quantity == nil:
		return nil, required("quantity")
	case req.DueDate == nil:
		return nil, required("due_date")
	}
	return &store.ProductionOrder{
		OrderNumber: *req.OrderNumber,
		ProductCode: *req.ProductCode,
		Quantity:    *req.Quantity,
		DueDate:     time.Time(*req.DueDate),
	}, nil
}

type updateOrderRequest struct {
	OrderNumber *string    `json:"order_number"`
	ProductCode *string    `json:"product_code"`
	Quantity    *int       `json:"quantity"`
	Status      *string    `json:"status"`
	DueDate     *Timestamp `json:"due_date"`
}

func (req *updateOrderRequest) toPatch() store.ProductionOrderPatch {
	return store.ProductionOrderPatch{
		OrderNumber: req.OrderNumber,
		ProductCode: req.ProductCode,
		Quantity:    req.Quantity,
		Status:      req.Status,
		DueDate:     req.DueDate.ptr(),
	}
}

// --- Workstations ---

type createStationRequest struct {
	Name           *string `json:"name"`
	Location       *string `json:"location"`
	Status         *string `json:"status"`
	CurrentOrderID *int64  `json:"current_order_id"`
}

func (req *createStationRequest) toStation() (*store.WorkStation, error) {
	switch {
	case req.Name == nil:
		return nil, required("name")
	case req.Location == nil:
		return nil, required("location")
	}
	s := &store.WorkStation{
		Name:           *req.Name,
		Location:       *req.Location,
		CurrentOrderID: req.CurrentOrderID,
	}
	if req.Status != nil {
		s.Status = *req.Status
	}
	return s, nil
}

type updateStationRequest struct {
	Name           *string    `json:"name"`
	Location       *string    `json:"location"`
	Status         *string    `json:"status"`
	CurrentOrderID optionalID `json:"current_order_id"`
}

func (req *updateStationRequest) toPatch() store.WorkStationPatch {
	return store.WorkStationPatch{
		Name:           req.Name,
		Location:       req.Location,
		Status:         req.Status,
		CurrentOrderID: req.CurrentOrderID.OptionalID,
	}
}

// --- Quality checks ---

// Passed is read so clients that send it are not rejected; the stored value
// is always derived.
type createCheckRequest struct {
	OrderID          *int64   `json:"order_id"`
	Parameter        *string  `json:"parameter"`
	Value            *float64 `json:"value"`
	SpecificationMin *float64 `json:"specification_min"`
	SpecificationMax *float64 `json:"specification_max"`
	Passed           *bool    `json:"passed"`
}

func (req *createCheckRequest) toCheck() (*store.QualityCheck, error) {
	switch {
	case req.OrderID == nil:
		return nil, required("order_id")
	case req.Parameter == nil:
		return nil, required("parameter")
	case req.Value == nil:
		return nil, required("value")
	case req.SpecificationMin == nil:
		return nil, required("specification_min")
	case req.SpecificationMax == nil:
		return nil, required("specification_max")
	}
	return &store.QualityCheck{
		OrderID:          *req.OrderID,
		Parameter:        *req.Parameter,
		Value:            *req.Value,
		SpecificationMin: *req.SpecificationMin,
		SpecificationMax: *req.SpecificationMax,
	}, nil
}

// measurement is an update field that may be omitted but never null, since
// a null would touch the pass/fail inputs without giving them a value.
type measurement struct {
	v *float64
}

func (m *measurement) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return fmt.Errorf("value, specification_min and specification_max cannot be null")
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("value, specification_min and specification_max must be numbers")
	}
	m.v = &f
	return nil
}

type updateCheckRequest struct {
	OrderID          *int64      `json:"order_id"`
	Parameter        *string     `json:"parameter"`
	Value            measurement `json:"value"`
	SpecificationMin measurement `json:"specification_min"`
	SpecificationMax measurement `json:"specification_max"`
	Passed           *bool       `json:"passed"`
}

func (req *updateCheckRequest) toPatch() store.QualityCheckPatch {
	return store.QualityCheckPatch{
		OrderID:          req.OrderID,
		Parameter:        req.Parameter,
		Value:            req.Value.v,
		SpecificationMin: req.SpecificationMin.v,
		SpecificationMax: req.SpecificationMax.v,
		Passed:           req.Passed,
	}
}
