package store

import "time"

// A nil pointer field in a patch means "not present": the stored value is kept.

type ProductionOrderPatch struct {
	OrderNumber *string
	ProductCode *string
	Quantity    *int
	Status      *string
	DueDate     *time.Time
}

// Apply merges the patch into o and returns the result. id and created_at
// are never touched.
func (p ProductionOrderPatch) Apply(o ProductionOrder) ProductionOrder {
	if p.OrderNumber != nil {
		o.OrderNumber = *p.OrderNumber
	}
	if p.ProductCode != nil {
		o.ProductCode = *p.ProductCode
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.DueDate != nil {
		o.DueDate = stamp(*p.DueDate)
	}
	return o
}

// OptionalID is a patch field for a nullable reference. Set reports presence;
// a present field with Valid=false clears the reference.
type OptionalID struct {
	Set   bool
	Valid bool
	Value int64
}

// SetID returns a present, non-null OptionalID.
func SetID(id int64) OptionalID { return OptionalID{Set: true, Valid: true, Value: id} }

// ClearID returns a present OptionalID that clears the reference.
func ClearID() OptionalID { return OptionalID{Set: true} }

type WorkStationPatch struct {
	Name           *string
	Location       *string
	Status         *string
	CurrentOrderID OptionalID
}

func (p WorkStationPatch) Apply(s WorkStation) WorkStation {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.CurrentOrderID.Set {
		if p.CurrentOrderID.Valid {
			id := p.CurrentOrderID.Value
			s.CurrentOrderID = &id
		} else {
			s.CurrentOrderID = nil
		}
	}
	return s
}

type QualityCheckPatch struct {
	OrderID          *int64
	Parameter        *string
	Value            *float64
	SpecificationMin *float64
	SpecificationMax *float64
	Passed           *bool
}

// TouchesMeasurement reports whether the patch changes any input of the
// pass/fail rule.
func (p QualityCheckPatch) TouchesMeasurement() bool {
	return p.Value != nil || p.SpecificationMin != nil || p.SpecificationMax != nil
}

// Apply merges the patch into c. When value or either bound is present,
// passed is recomputed from the merged values and any explicit Passed in the
// same patch is overridden. Otherwise an explicit Passed is taken as given.
func (p QualityCheckPatch) Apply(c QualityCheck) QualityCheck {
	if p.OrderID != nil {
		c.OrderID = *p.OrderID
	}
	if p.Parameter != nil {
		c.Parameter = *p.Parameter
	}
	if p.Value != nil {
		c.Value = *p.Value
	}
	if p.SpecificationMin != nil {
		c.SpecificationMin = *p.SpecificationMin
	}
	if p.SpecificationMax != nil {
		c.SpecificationMax = *p.SpecificationMax
	}
	if p.Passed != nil {
		c.Passed = *p.Passed
	}
	if p.TouchesMeasurement() {
		c.Passed = c.Evaluate()
	}
	return c
}
