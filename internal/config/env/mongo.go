package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host     string `env:"MONGO_HOST,required"`
	Port     int    `env:"MONGO_PORT,required"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME,required"`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD,required"`
	DBName   string `env:"MONGO_DATABASE,required"`
	AuthDB   string `env:"MONGO_AUTH_DB,required"`

	CustomersCollection  string `env:"MONGO_CUSTOMERS_COLLECTION" envDefault:"customers"`
	RepairJobsCollection string `env:"MONGO_REPAIR_JOBS_COLLECTION" envDefault:"repair_jobs"`
	ProductsCollection   string `env:"MONGO_PRODUCTS_COLLECTION" envDefault:"products"`
	SalesCollection      string `env:"MONGO_SALES_COLLECTION" envDefault:"sales"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }

func (cfg *mongo) CustomersCollection() string  { return cfg.raw.CustomersCollection }
func (cfg *mongo) RepairJobsCollection() string { return cfg.raw.RepairJobsCollection }
func (cfg *mongo) ProductsCollection() string   { return cfg.raw.ProductsCollection }
func (cfg *mongo) SalesCollection() string      { return cfg.raw.SalesCollection }

func (cfg *mongo) DSN() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
