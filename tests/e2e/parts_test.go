//go:build integration

package e2e

import (
	"fmt"
	"net/http"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type partBody struct {
	MongoID     string  `json:"_id"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type inserted struct {
	InsertedID string `json:"inserted_id"`
}

type message struct {
	Message string `json:"message"`
}

type detail struct {
	Detail string `json:"detail"`
}

func partJSON(id, name, brand string, price float64, stock int64) string {
	return fmt.Sprintf(`{"id":%q,"name":%q,"brand":%q,"price":%v,"stock":%d}`, id, name, brand, price, stock)
}

func createPart(body string) string {
	var res inserted
	Expect(doJSON(http.MethodPost, "/parts", body, &res)).To(Equal(http.StatusOK))
	Expect(res.InsertedID).To(HaveLen(24))
	return res.InsertedID
}

var _ = Describe("Parts API", Ordered, func() {
	BeforeEach(func() {
		_, err := partsColl.DeleteMany(ctx, bson.M{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("runs the RAM example flow", func() {
		gid := createPart(`{"id":"P001","name":"RAM 16GB","brand":"Corsair","price":59.99,"stock":10}`)

		var got partBody
		Expect(doJSON(http.MethodGet, "/parts/P001", "", &got)).To(Equal(http.StatusOK))
		Expect(got.MongoID).To(Equal(gid))
		Expect(got.Status).To(BeNil())

		var msg message
		Expect(doJSON(http.MethodPut, "/parts/P001",
			`{"id":"P001","name":"RAM 16GB","brand":"Corsair","price":59.99,"stock":0}`, &msg,
		)).To(Equal(http.StatusOK))
		Expect(msg.Message).To(Equal("Part updated successfully"))

		got = partBody{}
		Expect(doJSON(http.MethodGet, "/parts/P001", "", &got)).To(Equal(http.StatusOK))
		Expect(got.Stock).To(BeZero())
		Expect(got.Status).NotTo(BeNil())
		Expect(*got.Status).To(Equal("Out of stock"))
	})

	It("returns every created part from the list endpoint", func() {
		var empty []partBody
		Expect(doJSON(http.MethodGet, "/parts", "", &empty)).To(Equal(http.StatusOK))
		Expect(empty).To(BeEmpty())

		for i := range 5 {
			id := fmt.Sprintf("L%03d", i)
			name := gofakeit.ProductName()
			brand := gofakeit.Company()
			price := float64(gofakeit.Number(0, 100000)) / 100
			stock := int64(gofakeit.Number(0, 50))

			createPart(partJSON(id, name, brand, price, stock))

			var got partBody
			Expect(doJSON(http.MethodGet, "/parts/"+id, "", &got)).To(Equal(http.StatusOK))
			Expect(got.ID).To(Equal(id))
			Expect(got.Name).To(Equal(name))
			Expect(got.Brand).To(Equal(brand))
			Expect(got.Price).To(Equal(price))
			Expect(got.Stock).To(Equal(stock))
			Expect(got.Description).To(BeNil())
			Expect(got.Status != nil).To(Equal(stock == 0))
		}

		var list []partBody
		Expect(doJSON(http.MethodGet, "/parts", "", &list)).To(Equal(http.StatusOK))
		Expect(list).To(HaveLen(5))
		for _, p := range list {
			Expect(p.MongoID).To(HaveLen(24))
			Expect(p.Status).To(BeNil())
		}
	})

	It("rejects negative stock on create and custom id update", func() {
		var d detail
		Expect(doJSON(http.MethodPost, "/parts", partJSON("N001", "PSU", "Seasonic", 99, -1), &d)).
			To(Equal(http.StatusBadRequest))
		Expect(d.Detail).NotTo(BeEmpty())
		Expect(countParts()).To(BeZero())

		createPart(partJSON("N002", "PSU", "Seasonic", 99, 4))

		Expect(doJSON(http.MethodPut, "/parts/N002", partJSON("N002", "PSU", "Seasonic", 99, -5), &d)).
			To(Equal(http.StatusBadRequest))
		Expect(storedPart("N002")["stock"]).To(BeEquivalentTo(4))
	})

	It("rejects a duplicate custom id and keeps the original", func() {
		createPart(partJSON("D001", "CPU", "AMD", 299.9, 3))

		var d detail
		Expect(doJSON(http.MethodPost, "/parts", partJSON("D001", "Other", "Intel", 1, 1), &d)).
			To(Equal(http.StatusBadRequest))
		Expect(d.Detail).To(Equal("A part with this ID already exists"))

		Expect(countParts()).To(BeEquivalentTo(1))
		doc := storedPart("D001")
		Expect(doc["name"]).To(Equal("CPU"))
		Expect(doc["brand"]).To(Equal("AMD"))
	})

	It("rejects malformed bodies", func() {
		var d detail
		Expect(doJSON(http.MethodPost, "/parts", `{"id":"X1","name":"A","brand":"B","price":1}`, &d)).
			To(Equal(http.StatusBadRequest))
		Expect(doJSON(http.MethodPost, "/parts", `{"id":"X1","name":"A","brand":"B","price":1,"stock":2.5}`, &d)).
			To(Equal(http.StatusBadRequest))
		Expect(doJSON(http.MethodPost, "/parts", `not json`, &d)).
			To(Equal(http.StatusBadRequest))
		Expect(countParts()).To(BeZero())
	})

	It("deletes by custom id", func() {
		createPart(partJSON("R001", "Case", "NZXT", 79, 2))

		var d detail
		Expect(doJSON(http.MethodDelete, "/parts/R404", "", &d)).To(Equal(http.StatusNotFound))
		Expect(d.Detail).To(Equal("Part not found"))
		Expect(countParts()).To(BeEquivalentTo(1))

		var msg message
		Expect(doJSON(http.MethodDelete, "/parts/R001", "", &msg)).To(Equal(http.StatusOK))
		Expect(msg.Message).To(Equal("Part with id 'R001' deleted"))

		Expect(doJSON(http.MethodGet, "/parts/R001", "", &d)).To(Equal(http.StatusNotFound))
	})

	It("updates by custom id", func() {
		var d detail
		Expect(doJSON(http.MethodPut, "/parts/U404", partJSON("U404", "Fan", "Noctua", 20, 1), &d)).
			To(Equal(http.StatusNotFound))
		Expect(d.Detail).To(Equal("Part not found or data unchanged"))

		createPart(partJSON("U001", "Fan", "Noctua", 20, 1))

		body := `{"id":"U001","name":"Fan 140mm","brand":"Noctua","price":24.5,"stock":8,"description":"NF-A14"}`
		Expect(doJSON(http.MethodPut, "/parts/U001", body, nil)).To(Equal(http.StatusOK))

		var got partBody
		Expect(doJSON(http.MethodGet, "/parts/U001", "", &got)).To(Equal(http.StatusOK))
		Expect(got.Name).To(Equal("Fan 140mm"))
		Expect(got.Price).To(Equal(24.5))
		Expect(got.Stock).To(BeEquivalentTo(8))
		Expect(*got.Description).To(Equal("NF-A14"))

		By("sending the same data again")
		Expect(doJSON(http.MethodPut, "/parts/U001", body, &d)).To(Equal(http.StatusNotFound))
	})

	It("overwrites and deletes by generated id", func() {
		gid := createPart(`{"id":"G001","name":"GPU","brand":"MSI","price":499,"stock":2,"description":"RTX"}`)

		var msg message
		Expect(doJSON(http.MethodPut, "/parts/mongo/"+gid, partJSON("G001", "GPU Ti", "MSI", 599, 1), &msg)).
			To(Equal(http.StatusOK))
		Expect(msg.Message).To(Equal("Part updated successfully"))

		var got partBody
		Expect(doJSON(http.MethodGet, "/parts/mongo/"+gid, "", &got)).To(Equal(http.StatusOK))
		Expect(got.Name).To(Equal("GPU Ti"))
		Expect(got.Description).To(BeNil())

		var d detail
		Expect(doJSON(http.MethodDelete, "/parts/mongo/not-hex", "", &d)).To(Equal(http.StatusBadRequest))
		Expect(doJSON(http.MethodDelete, "/parts/mongo/"+bson.NewObjectID().Hex(), "", &d)).To(Equal(http.StatusNotFound))

		Expect(doJSON(http.MethodDelete, "/parts/mongo/"+gid, "", &msg)).To(Equal(http.StatusOK))
		Expect(msg.Message).To(Equal("Part with Mongo _id '" + gid + "' deleted"))
		Expect(countParts()).To(BeZero())
	})
})
