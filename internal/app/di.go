package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Bryan-Quispe/Computer-Parts/internal/config"
	repository "github.com/Bryan-Quispe/Computer-Parts/internal/repository/part"
	service "github.com/Bryan-Quispe/Computer-Parts/internal/service/part"
	thttp "github.com/Bryan-Quispe/Computer-Parts/internal/transport/http/part/v1"
	"github.com/Bryan-Quispe/Computer-Parts/platform/closer"
	pmongo "github.com/Bryan-Quispe/Computer-Parts/platform/mongo"
)

type PartRepository interface {
	service.PartRepository
	repository.BatchCreator
}

type PartHandler interface {
	RoutesRegistrar
}

type di struct {
	mongo      *mongo.Client
	collection *mongo.Collection

	repository PartRepository
	service    thttp.PartService
	handler    PartHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		mongoClient, err := pmongo.Connect(ctx, config.C().Mongo.URI())
		if err != nil {
			panic(fmt.Sprintf("failed to connect to mongodb: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) PartsCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(repository.CollectionName)

		if err := repository.EnsureIndexes(ctx, d.collection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.collection
}

func (d *di) PartsRepository(ctx context.Context) PartRepository {
	if d.repository == nil {
		d.repository = repository.NewPartRepository(d.PartsCollection(ctx))
	}

	return d.repository
}

func (d *di) PartService(ctx context.Context) thttp.PartService {
	if d.service == nil {
		d.service = service.NewPartService(
			d.PartsRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) PartHandler(ctx context.Context) PartHandler {
	if d.handler == nil {
		d.handler = thttp.NewPartHandler(d.PartService(ctx))
	}

	return d.handler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = NewRouter(d.PartHandler(ctx), config.C().CORS.AllowedOrigin())
	}

	return d.router
}
