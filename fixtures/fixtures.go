package fixtures

import (
	_ "embed"
	"fmt"

	yaml "gopkg.in/yaml.v2"

	"github.com/zsmartex/stockfolio/models"
)

//go:embed seed.yml
var seedYAML []byte

type Seed struct {
	Stocks []models.Stock `yaml:"stocks"`
	Trades []models.Trade `yaml:"trades"`
}

// Load parses the sample data the service starts with.
func Load() (*Seed, error) {
	return Parse(seedYAML)
}

func Parse(data []byte) (*Seed, error) {
	seed := new(Seed)
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	return seed, nil
}
