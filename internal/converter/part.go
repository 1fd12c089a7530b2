package converter

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
	partsv1 "github.com/Bryan-Quispe/Computer-Parts/pkg/api/parts/v1"
)

func PartRequestToInput(req *partsv1.PartRequest) model.PartInput {
	return model.PartInput{
		ID:          req.ID,
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	}
}

func PartToAPI(p *model.Part) partsv1.Part {
	return partsv1.Part{
		MongoID:     p.GeneratedID.String(),
		ID:          p.ID.String(),
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
	}
}

// PartToAPIWithStatus is PartToAPI plus the out of stock annotation used by
// single part reads.
func PartToAPIWithStatus(p *model.Part) partsv1.Part {
	out := PartToAPI(p)
	if p.OutOfStock() {
		out.Status = model.OutOfStockStatus
	}
	return out
}

func PartsToAPI(parts []*model.Part) []partsv1.Part {
	return lo.Map(parts, func(p *model.Part, _ int) partsv1.Part {
		return PartToAPI(p)
	})
}

func InsertedToAPI(id model.GeneratedID) partsv1.InsertedResponse {
	return partsv1.InsertedResponse{InsertedID: id.String()}
}

func PartUpdatedMessage() partsv1.MessageResponse {
	return partsv1.MessageResponse{Message: "Part updated successfully"}
}

func PartDeletedMessage(id model.CustomID) partsv1.MessageResponse {
	return partsv1.MessageResponse{Message: fmt.Sprintf("Part with id '%s' deleted", id)}
}

func PartDeletedByGeneratedIDMessage(id model.GeneratedID) partsv1.MessageResponse {
	return partsv1.MessageResponse{Message: fmt.Sprintf("Part with Mongo _id '%s' deleted", id)}
}
