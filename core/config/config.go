// Package config holds the simulation limits, loaded from an optional
// rover.yaml file.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jdrake/marsrover/core/sim"
	"sigs.k8s.io/yaml"
)

//go:embed default/rover.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up in the config directory.
const ConfigurationName = "rover.yaml"

type Configuration struct {
	// MaxCoordinate caps both grid dimensions.
	MaxCoordinate int `json:"max_coordinate" validate:"gte=0,lte=1000000"`
	// MaxInstructions caps the command count of a single robot.
	MaxInstructions int `json:"max_instructions" validate:"gt=0"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Limits converts the configuration into the evaluator's limits.
func (c *Configuration) Limits() sim.Limits {
	return sim.Limits{
		MaxCoordinate:   c.MaxCoordinate,
		MaxInstructions: c.MaxInstructions,
	}
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
