package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	CustomersCollection() string
	RepairJobsCollection() string
	ProductsCollection() string
	SalesCollection() string
	DSN() string
}

type Storage interface {
	PhotosBucket() string
	PublicBaseURL() string
}

type Seed interface {
	SampleData() bool
}
