package qsim

import "math/rand"

/*
Config carries the tunables for a Simulator. Random is the uniform [0,1)
source used by measurement collapse; inject a seeded or fixed source to
make measurement outcomes deterministic in tests.
*/
type Config struct {
	Random func() float64
}

func NewConfig() *Config {
	return &Config{
		Random: rand.Float64,
	}
}
