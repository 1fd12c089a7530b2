package repository

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	fieldObjectID    = "_id"
	fieldCustomID    = "id"
	fieldName        = "name"
	fieldBrand       = "brand"
	fieldPrice       = "price"
	fieldStock       = "stock"
	fieldDescription = "description"
)

type PartEntity struct {
	ObjectID    bson.ObjectID `bson:"_id"`
	ID          string        `bson:"id"`
	Name        string        `bson:"name"`
	Brand       string        `bson:"brand"`
	Price       float64       `bson:"price"`
	Stock       int64         `bson:"stock"`
	Description *string       `bson:"description"`
}
