package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UpdateProductInput is the request body for partially updating a product.
// Every field is wrapped in Optional so that only the fields the caller
// actually sent are validated and forwarded to the repository.
type UpdateProductInput struct {
	Name         Optional[string]       `json:"name"`
	EAN          Optional[string]       `json:"ean"`
	Price        Optional[float64]      `json:"price"`
	Description  Optional[string]       `json:"description"`
	Active       Optional[bool]         `json:"active"`
	SellingPlace Optional[SellingPlace] `json:"selling_place"`
	Picture      Optional[[]byte]       `json:"picture"`
}

// Validate checks each supplied field against the same rules the create
// input enforces. Fields that were not supplied are skipped. An explicit
// null is rejected for active: for the string-typed fields below null decays
// to "" and the required rule already catches it, but for a bool the zero
// value is a legal false and must not be written unless the caller sent it.
func (in *UpdateProductInput) Validate(validate *validator.Validate) error {
	if in.Active.Set && in.Active.Null {
		return fmt.Errorf("field 'active' is invalid: must not be null")
	}
	checks := []struct {
		field string
		set   bool
		value any
		rule  string
	}{
		{"name", in.Name.Set, in.Name.Value, "required,max=150"},
		{"ean", in.EAN.Set, in.EAN.Value, "required,len=13,numeric"},
		{"price", in.Price.Set, in.Price.Value, "required,gt=0"},
		{"description", in.Description.Set, in.Description.Value, "required,max=250"},
		{"selling_place", in.SellingPlace.Set, in.SellingPlace.Value, "required,oneof=event store"},
	}

	for _, c := range checks {
		if !c.set {
			continue
		}
		if err := validate.Var(c.value, c.rule); err != nil {
			// %v on purpose: a Var error carries no field name, so the
			// message here is the whole detail the client gets.
			return fmt.Errorf("field '%s' is invalid: %v", c.field, err)
		}
	}
	return nil
}

// Fields returns the column/value map for the supplied fields only. The map
// feeds the repository's partial update, so omitted fields never overwrite
// stored values. ID and inserted_at are not updatable and never appear here.
func (in *UpdateProductInput) Fields() map[string]any {
	fields := make(map[string]any)
	if in.Name.Set {
		fields["name"] = in.Name.Value
	}
	if in.EAN.Set {
		fields["ean"] = in.EAN.Value
	}
	if in.Price.Set {
		fields["price"] = in.Price.Value
	}
	if in.Description.Set {
		fields["description"] = in.Description.Value
	}
	if in.Active.Set {
		fields["active"] = in.Active.Value
	}
	if in.SellingPlace.Set {
		fields["selling_place"] = in.SellingPlace.Value
	}
	if in.Picture.Set {
		fields["picture"] = in.Picture.Value
	}
	return fields
}
