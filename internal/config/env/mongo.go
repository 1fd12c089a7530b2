package envconfig

import "github.com/caarlos0/env/v11"

type mongoEnv struct {
	URI    string `env:"MONGO_URI,required,notEmpty"`
	DBName string `env:"DB_NAME,required,notEmpty"`
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

func (cfg *mongo) URI() string          { return cfg.raw.URI }
func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }
