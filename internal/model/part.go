package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const OutOfStockStatus = "Out of stock"

// Part is a validated computer part record.
type Part struct {
	// Identifier assigned by the document store. Zero until inserted.
	GeneratedID GeneratedID
	// Business identifier chosen by the client.
	ID CustomID
	// Human-readable part name.
	Name string
	// Manufacturer brand.
	Brand string
	// Unit price, never negative.
	Price float64
	// Units available, never negative.
	Stock int64
	// Optional free-form description; nil when not supplied.
	Description *string
}

func (p *Part) OutOfStock() bool { return p.Stock == 0 }

// AsUpdate returns the merge set for an update by custom id. The
// description is only included when it was supplied.
func (p *Part) AsUpdate() PartUpdate {
	id, name, brand := p.ID, p.Name, p.Brand
	price, stock := p.Price, p.Stock

	return PartUpdate{
		ID:          &id,
		Name:        &name,
		Brand:       &brand,
		Price:       &price,
		Stock:       &stock,
		Description: p.Description,
	}
}

// PartInput is an unvalidated part. Nil fields were not supplied. The json
// tags name the fields in validation errors.
type PartInput struct {
	ID          *string  `json:"id"`
	Name        *string  `json:"name"`
	Brand       *string  `json:"brand"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
	Description *string  `json:"description"`
}

// NewPart validates in and builds a Part from it.
func NewPart(in PartInput) (Part, error) {
	required := validation.NotNil.Error("is required")

	err := validation.ValidateStruct(&in,
		validation.Field(&in.ID, required),
		validation.Field(&in.Name, required),
		validation.Field(&in.Brand, required),
		validation.Field(&in.Price,
			required,
			validation.Min(0.0).Error("cannot be negative"),
		),
		validation.Field(&in.Stock,
			required,
			validation.Min(int64(0)).Error("cannot be negative"),
		),
	)
	if err != nil {
		return Part{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return Part{
		ID:          CustomID(*in.ID),
		Name:        *in.Name,
		Brand:       *in.Brand,
		Price:       *in.Price,
		Stock:       *in.Stock,
		Description: in.Description,
	}, nil
}

// PartUpdate is a partial set of fields merged into a stored part.
type PartUpdate struct {
	ID          *CustomID
	Name        *string
	Brand       *string
	Price       *float64
	Stock       *int64
	Description *string
}

func (u PartUpdate) Empty() bool {
	return u.ID == nil &&
		u.Name == nil &&
		u.Brand == nil &&
		u.Price == nil &&
		u.Stock == nil &&
		u.Description == nil
}
