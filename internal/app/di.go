package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/config"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/closer"
	customerrepo "github.com/Vivekjangir90/mobile-repair-shop/internal/repository/customer"
	photorepo "github.com/Vivekjangir90/mobile-repair-shop/internal/repository/photo"
	productrepo "github.com/Vivekjangir90/mobile-repair-shop/internal/repository/product"
	repairjobrepo "github.com/Vivekjangir90/mobile-repair-shop/internal/repository/repairjob"
	salerepo "github.com/Vivekjangir90/mobile-repair-shop/internal/repository/sale"
	billingsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/billing"
	customersvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/customer"
	dashboardsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/dashboard"
	inventorysvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/inventory"
	repairsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/repair"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/state"
	thttp "github.com/Vivekjangir90/mobile-repair-shop/internal/transport/http/shop/v1"
)

type CustomerRepository interface {
	state.CustomerLister
	customersvc.CustomerRepository
}

type RepairJobRepository interface {
	state.RepairJobLister
	repairsvc.RepairJobRepository
}

type ProductRepository interface {
	state.ProductLister
	inventorysvc.ProductRepository
	productrepo.BatchCreator
}

type SaleRepository interface {
	state.SaleLister
	billingsvc.SaleRepository
}

type PhotoRepository interface {
	repairsvc.PhotoStore
	thttp.PhotoStore
}

type ShopHandler interface {
	Routes(r chi.Router)
}

type di struct {
	mongo       *mongo.Client
	database    *mongo.Database
	customers   *mongo.Collection
	repairJobs  *mongo.Collection
	products    *mongo.Collection
	sales       *mongo.Collection
	photoBucket *mongo.GridFSBucket

	customerRepository  CustomerRepository
	repairJobRepository RepairJobRepository
	productRepository   ProductRepository
	saleRepository      SaleRepository
	photoRepository     PhotoRepository

	state *state.Store

	dashboardService thttp.DashboardService
	customerService  thttp.CustomerService
	repairService    thttp.RepairService
	billingService   thttp.BillingService
	inventoryService thttp.InventoryService

	handler ShopHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) Database(ctx context.Context) *mongo.Database {
	if d.database == nil {
		d.database = d.MongoDB(ctx).Database(config.C().Mongo.DatabaseName())
	}

	return d.database
}

func (d *di) CustomersCollection(ctx context.Context) *mongo.Collection {
	if d.customers == nil {
		d.customers = d.Database(ctx).Collection(config.C().Mongo.CustomersCollection())

		if err := ensureCustomerIndexes(ctx, d.customers); err != nil {
			panic(fmt.Sprintf("failed to ensure customer indexes: %v\n", err))
		}
	}

	return d.customers
}

func (d *di) RepairJobsCollection(ctx context.Context) *mongo.Collection {
	if d.repairJobs == nil {
		d.repairJobs = d.Database(ctx).Collection(config.C().Mongo.RepairJobsCollection())

		if err := ensureRepairJobIndexes(ctx, d.repairJobs); err != nil {
			panic(fmt.Sprintf("failed to ensure repair job indexes: %v\n", err))
		}
	}

	return d.repairJobs
}

func (d *di) ProductsCollection(ctx context.Context) *mongo.Collection {
	if d.products == nil {
		d.products = d.Database(ctx).Collection(config.C().Mongo.ProductsCollection())

		if err := ensureProductIndexes(ctx, d.products); err != nil {
			panic(fmt.Sprintf("failed to ensure product indexes: %v\n", err))
		}
	}

	return d.products
}

func (d *di) SalesCollection(ctx context.Context) *mongo.Collection {
	if d.sales == nil {
		d.sales = d.Database(ctx).Collection(config.C().Mongo.SalesCollection())

		if err := ensureSaleIndexes(ctx, d.sales); err != nil {
			panic(fmt.Sprintf("failed to ensure sale indexes: %v\n", err))
		}
	}

	return d.sales
}

func (d *di) PhotoBucket(ctx context.Context) *mongo.GridFSBucket {
	if d.photoBucket == nil {
		d.photoBucket = d.Database(ctx).GridFSBucket(
			options.GridFSBucket().SetName(config.C().Storage.PhotosBucket()),
		)
	}

	return d.photoBucket
}

func (d *di) CustomerRepository(ctx context.Context) CustomerRepository {
	if d.customerRepository == nil {
		d.customerRepository = customerrepo.NewCustomerRepository(d.CustomersCollection(ctx))
	}

	return d.customerRepository
}

func (d *di) RepairJobRepository(ctx context.Context) RepairJobRepository {
	if d.repairJobRepository == nil {
		d.repairJobRepository = repairjobrepo.NewRepairJobRepository(d.RepairJobsCollection(ctx))
	}

	return d.repairJobRepository
}

func (d *di) ProductRepository(ctx context.Context) ProductRepository {
	if d.productRepository == nil {
		d.productRepository = productrepo.NewProductRepository(d.ProductsCollection(ctx))
	}

	return d.productRepository
}

func (d *di) SaleRepository(ctx context.Context) SaleRepository {
	if d.saleRepository == nil {
		d.saleRepository = salerepo.NewSaleRepository(d.SalesCollection(ctx))
	}

	return d.saleRepository
}

func (d *di) PhotoRepository(ctx context.Context) PhotoRepository {
	if d.photoRepository == nil {
		d.photoRepository = photorepo.NewPhotoRepository(
			d.PhotoBucket(ctx),
			config.C().Storage.PublicBaseURL(),
		)
	}

	return d.photoRepository
}

func (d *di) State(ctx context.Context) *state.Store {
	if d.state == nil {
		d.state = state.NewStore(
			d.CustomerRepository(ctx),
			d.RepairJobRepository(ctx),
			d.ProductRepository(ctx),
			d.SaleRepository(ctx),
		)
	}

	return d.state
}

func (d *di) DashboardService(ctx context.Context) thttp.DashboardService {
	if d.dashboardService == nil {
		d.dashboardService = dashboardsvc.NewDashboardService(d.State(ctx))
	}

	return d.dashboardService
}

func (d *di) CustomerService(ctx context.Context) thttp.CustomerService {
	if d.customerService == nil {
		d.customerService = customersvc.NewCustomerService(
			d.CustomerRepository(ctx),
			d.State(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.customerService
}

func (d *di) RepairService(ctx context.Context) thttp.RepairService {
	if d.repairService == nil {
		d.repairService = repairsvc.NewRepairService(
			d.RepairJobRepository(ctx),
			d.CustomerRepository(ctx),
			d.PhotoRepository(ctx),
			d.State(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.repairService
}

func (d *di) BillingService(ctx context.Context) thttp.BillingService {
	if d.billingService == nil {
		d.billingService = billingsvc.NewBillingService(
			d.SaleRepository(ctx),
			d.State(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.billingService
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.inventoryService == nil {
		d.inventoryService = inventorysvc.NewInventoryService(
			d.ProductRepository(ctx),
			d.State(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) ShopHandler(ctx context.Context) ShopHandler {
	if d.handler == nil {
		d.handler = thttp.NewShopHandler(
			d.DashboardService(ctx),
			d.CustomerService(ctx),
			d.RepairService(ctx),
			d.BillingService(ctx),
			d.InventoryService(ctx),
			d.PhotoRepository(ctx),
			d.State(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func ensureCustomerIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "phone", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}, options.CreateIndexes())

	return err
}

func ensureRepairJobIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}, options.CreateIndexes())

	return err
}

func ensureProductIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}, options.CreateIndexes())

	return err
}

func ensureSaleIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}, options.CreateIndexes())

	return err
}
