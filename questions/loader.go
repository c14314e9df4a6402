package questions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPools reads question pools from a YAML file. The file must provide at
// least 2 questions per difficulty; built-in pools are used when no file is
// configured.
func LoadPools(filename string) (Pools, error) {
	var pools Pools

	data, err := os.ReadFile(filename)
	if err != nil {
		return pools, fmt.Errorf("failed to read questions file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &pools); err != nil {
		return pools, fmt.Errorf("failed to parse questions file %s: %w", filename, err)
	}

	if err := validatePools(pools); err != nil {
		return pools, fmt.Errorf("invalid questions file %s: %w", filename, err)
	}

	return pools, nil
}
