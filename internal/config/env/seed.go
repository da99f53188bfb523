package envconfig

import "github.com/caarlos0/env/v11"

type seedEnv struct {
	SampleData bool `env:"SEED_SAMPLE_DATA" envDefault:"false"`
}

type seed struct {
	raw seedEnv
}

func NewSeedConfig() (*seed, error) {
	var raw seedEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &seed{raw: raw}, nil
}

func (cfg *seed) SampleData() bool { return cfg.raw.SampleData }
