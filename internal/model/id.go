package model

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CustomID is the business identifier supplied by clients, e.g. "P001".
type CustomID string

func (id CustomID) String() string { return string(id) }

// GeneratedID is the identifier assigned by the document store on insert.
type GeneratedID bson.ObjectID

func NewGeneratedID() GeneratedID { return GeneratedID(bson.NewObjectID()) }

// ParseGeneratedID accepts the 24 character hex form of a GeneratedID.
func ParseGeneratedID(s string) (GeneratedID, error) {
	oid, err := bson.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return GeneratedID{}, fmt.Errorf("%w: malformed generated id %q", ErrInvalidArgument, s)
	}
	return GeneratedID(oid), nil
}

func (id GeneratedID) ObjectID() bson.ObjectID { return bson.ObjectID(id) }
func (id GeneratedID) String() string          { return bson.ObjectID(id).Hex() }
func (id GeneratedID) IsZero() bool            { return bson.ObjectID(id).IsZero() }
