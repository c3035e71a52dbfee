// Package catalog holds the fixed lists a service order is validated against.
package catalog

import (
	"fmt"
	"slices"

	"github.com/spf13/viper"
)

// DefaultDeviceModels are the supported iPhone models, newest first.
var DefaultDeviceModels = []string{
	"iPhone 15 Pro Max",
	"iPhone 15 Pro",
	"iPhone 15 Plus",
	"iPhone 15",
	"iPhone 14 Pro Max",
	"iPhone 14 Pro",
	"iPhone 14 Plus",
	"iPhone 14",
	"iPhone 13 Pro Max",
	"iPhone 13 Pro",
	"iPhone 13 mini",
	"iPhone 13",
	"iPhone 12 Pro Max",
	"iPhone 12 Pro",
	"iPhone 12 mini",
	"iPhone 12",
	"iPhone 11 Pro Max",
	"iPhone 11 Pro",
	"iPhone 11",
	"iPhone XS Max",
	"iPhone XS",
	"iPhone XR",
	"iPhone X",
}

// DefaultRepairTypes are the offered repair categories.
var DefaultRepairTypes = []string{
	"Troca de display",
	"Troca de bateria",
	"Reparo de placa-mãe",
	"Troca de câmera",
	"Reparo de botões",
	"Troca de alto-falante",
	"Reparo de entrada de carregamento",
	"Outros reparos",
}

// Catalog is an immutable pair of device-model and repair-type lists.
type Catalog struct {
	deviceModels []string
	repairTypes  []string
}

// New returns a catalog over copies of the given lists.
func New(deviceModels, repairTypes []string) *Catalog {
	return &Catalog{
		deviceModels: slices.Clone(deviceModels),
		repairTypes:  slices.Clone(repairTypes),
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(DefaultDeviceModels, DefaultRepairTypes)
}

// Load reads device_models and repair_types from a YAML or JSON file.
// An empty path yields the built-in catalog, and a key missing from the file
// keeps the built-in list for that key.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("device_models", DefaultDeviceModels)
	v.SetDefault("repair_types", DefaultRepairTypes)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	devices := v.GetStringSlice("device_models")
	repairs := v.GetStringSlice("repair_types")
	if len(devices) == 0 {
		return nil, fmt.Errorf("catalog: %s: device_models is empty", path)
	}
	if len(repairs) == 0 {
		return nil, fmt.Errorf("catalog: %s: repair_types is empty", path)
	}
	return New(devices, repairs), nil
}

// DeviceModels returns the device models in catalog order.
func (c *Catalog) DeviceModels() []string {
	return slices.Clone(c.deviceModels)
}

// RepairTypes returns the repair types in catalog order.
func (c *Catalog) RepairTypes() []string {
	return slices.Clone(c.repairTypes)
}

// HasDeviceModel reports whether model is an exact catalog entry.
func (c *Catalog) HasDeviceModel(model string) bool {
	return slices.Contains(c.deviceModels, model)
}

// HasRepairType reports whether repair is an exact catalog entry.
func (c *Catalog) HasRepairType(repair string) bool {
	return slices.Contains(c.repairTypes, repair)
}
