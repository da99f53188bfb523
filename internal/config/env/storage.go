package envconfig

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

type storageEnv struct {
	PhotosBucket  string `env:"STORAGE_PHOTOS_BUCKET" envDefault:"repair_photos"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL,required"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &storage{raw: raw}, nil
}

func (cfg *storage) PhotosBucket() string { return cfg.raw.PhotosBucket }

func (cfg *storage) PublicBaseURL() string {
	return strings.TrimRight(cfg.raw.PublicBaseURL, "/")
}
