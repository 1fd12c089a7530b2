package converter

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
	partsv1 "github.com/Bryan-Quispe/Computer-Parts/pkg/api/parts/v1"
)

func TestPartToAPIWithStatus(t *testing.T) {
	t.Parallel()

	base := model.Part{
		GeneratedID: model.NewGeneratedID(),
		ID:          "P001",
		Name:        gofakeit.ProductName(),
		Brand:       gofakeit.Company(),
		Price:       gofakeit.Price(10, 999),
	}

	tests := []struct {
		name       string
		stock      int64
		wantStatus string
	}{
		{name: "in stock has no status", stock: 3},
		{name: "zero stock is annotated", stock: 0, wantStatus: "Out of stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := base
			p.Stock = tt.stock

			got := PartToAPIWithStatus(&p)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, p.GeneratedID.String(), got.MongoID)
			assert.Len(t, got.MongoID, 24)
			assert.Equal(t, "P001", got.ID)
			assert.Equal(t, tt.stock, got.Stock)
			assert.Nil(t, got.Description)
		})
	}
}

func TestPartsToAPINeverAnnotates(t *testing.T) {
	t.Parallel()

	parts := []*model.Part{
		{GeneratedID: model.NewGeneratedID(), ID: "A", Stock: 0},
		{GeneratedID: model.NewGeneratedID(), ID: "B", Stock: 5, Description: lo.ToPtr("fast")},
	}

	got := PartsToAPI(parts)

	require.Len(t, got, 2)
	for _, p := range got {
		assert.Empty(t, p.Status)
	}
	assert.Equal(t, "fast", *got[1].Description)
	assert.Empty(t, PartsToAPI([]*model.Part{}))
}

func TestPartRequestToInput(t *testing.T) {
	t.Parallel()

	req := &partsv1.PartRequest{
		ID:    lo.ToPtr("P009"),
		Name:  lo.ToPtr("SSD 1TB"),
		Brand: lo.ToPtr("Samsung"),
		Price: lo.ToPtr(89.5),
		Stock: lo.ToPtr(int64(4)),
	}

	p, err := model.NewPart(PartRequestToInput(req))

	require.NoError(t, err)
	assert.Equal(t, model.CustomID("P009"), p.ID)
	assert.Equal(t, 89.5, p.Price)
	assert.Nil(t, p.Description)
}

func TestMessages(t *testing.T) {
	t.Parallel()

	id := model.NewGeneratedID()

	assert.Equal(t, "Part updated successfully", PartUpdatedMessage().Message)
	assert.Equal(t, "Part with id 'P001' deleted", PartDeletedMessage("P001").Message)
	assert.Equal(t, "Part with Mongo _id '"+id.String()+"' deleted", PartDeletedByGeneratedIDMessage(id).Message)
	assert.Equal(t, id.String(), InsertedToAPI(id).InsertedID)
}
