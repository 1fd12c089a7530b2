package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
)

func EntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	return &model.Part{
		GeneratedID: model.GeneratedID(e.ObjectID),
		ID:          model.CustomID(e.ID),
		Name:        e.Name,
		Brand:       e.Brand,
		Price:       e.Price,
		Stock:       e.Stock,
		Description: e.Description,
	}
}

func EntityFromModel(p *model.Part) *PartEntity {
	if p == nil {
		return nil
	}

	return &PartEntity{
		ObjectID:    p.GeneratedID.ObjectID(),
		ID:          p.ID.String(),
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
	}
}

// BuildMergeSet returns the $set document for the supplied fields of upd.
func BuildMergeSet(upd model.PartUpdate) bson.M {
	set := bson.M{}

	if upd.ID != nil {
		set[fieldCustomID] = upd.ID.String()
	}
	if upd.Name != nil {
		set[fieldName] = *upd.Name
	}
	if upd.Brand != nil {
		set[fieldBrand] = *upd.Brand
	}
	if upd.Price != nil {
		set[fieldPrice] = *upd.Price
	}
	if upd.Stock != nil {
		set[fieldStock] = *upd.Stock
	}
	if upd.Description != nil {
		set[fieldDescription] = *upd.Description
	}

	return set
}

// BuildOverwriteSet returns the $set document replacing every field of a
// stored part with the fields of p. An absent description is stored as null.
func BuildOverwriteSet(p *model.Part) bson.M {
	return bson.M{
		fieldCustomID:    p.ID.String(),
		fieldName:        p.Name,
		fieldBrand:       p.Brand,
		fieldPrice:       p.Price,
		fieldStock:       p.Stock,
		fieldDescription: p.Description,
	}
}
