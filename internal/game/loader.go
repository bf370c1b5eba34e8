package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/nova-marketing/internal/types"
)

// DataLoader loads catalog override data from JSON files. Deployments
// that want to rebalance the reference data ship a data directory; the
// built-in catalog is used otherwise.
type DataLoader struct {
	basePath string
}

// NewDataLoader creates a new data loader
func NewDataLoader(basePath string) *DataLoader {
	return &DataLoader{
		basePath: basePath,
	}
}

// LoadSpecies loads species definitions from file
func (dl *DataLoader) LoadSpecies() ([]types.Species, error) {
	path := filepath.Join(dl.basePath, "species.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read species file: %w", err)
	}

	var species []types.Species
	if err := json.Unmarshal(data, &species); err != nil {
		return nil, fmt.Errorf("failed to parse species data: %w", err)
	}

	return species, nil
}

// LoadPlatforms loads platform definitions from file
func (dl *DataLoader) LoadPlatforms() ([]types.Platform, error) {
	path := filepath.Join(dl.basePath, "platforms.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read platforms file: %w", err)
	}

	var platforms []types.Platform
	if err := json.Unmarshal(data, &platforms); err != nil {
		return nil, fmt.Errorf("failed to parse platforms data: %w", err)
	}

	return platforms, nil
}

// LoadFormats loads ad format definitions from file
func (dl *DataLoader) LoadFormats() ([]types.AdFormat, error) {
	path := filepath.Join(dl.basePath, "formats.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read formats file: %w", err)
	}

	var formats []types.AdFormat
	if err := json.Unmarshal(data, &formats); err != nil {
		return nil, fmt.Errorf("failed to parse formats data: %w", err)
	}

	return formats, nil
}

// LoadCrises loads crisis event templates from file
func (dl *DataLoader) LoadCrises() ([]types.CrisisEvent, error) {
	path := filepath.Join(dl.basePath, "crises.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read crises file: %w", err)
	}

	var crises []types.CrisisEvent
	if err := json.Unmarshal(data, &crises); err != nil {
		return nil, fmt.Errorf("failed to parse crises data: %w", err)
	}

	return crises, nil
}

// LoadCatalog loads a full catalog from the data directory.
func (dl *DataLoader) LoadCatalog() (*Catalog, error) {
	species, err := dl.LoadSpecies()
	if err != nil {
		return nil, err
	}

	platforms, err := dl.LoadPlatforms()
	if err != nil {
		return nil, err
	}

	formats, err := dl.LoadFormats()
	if err != nil {
		return nil, err
	}

	crises, err := dl.LoadCrises()
	if err != nil {
		return nil, err
	}

	return NewCatalog(species, platforms, formats, crises), nil
}
