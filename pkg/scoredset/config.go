/*
 *     Copyright 2022 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package scoredset

import (
	"errors"
)

const (
	// DefaultName is the default name of a set.
	DefaultName = "default"

	// DefaultMetricsNamespace is the default namespace of set metrics.
	DefaultMetricsNamespace = "dragonfly"

	// DefaultMetricsSubsystem is the default subsystem of set metrics.
	DefaultMetricsSubsystem = "scoredset"
)

type Config struct {
	// Name of the set, used in logs and metric labels.
	Name string `yaml:"name" mapstructure:"name"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type MetricsConfig struct {
	// Enable registers the set collector.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Namespace of metric names.
	Namespace string `yaml:"namespace" mapstructure:"namespace"`

	// Subsystem of metric names.
	Subsystem string `yaml:"subsystem" mapstructure:"subsystem"`
}

// NewConfig returns the default config.
func NewConfig() *Config {
	return &Config{
		Name: DefaultName,
		Metrics: MetricsConfig{
			Enable:    false,
			Namespace: DefaultMetricsNamespace,
			Subsystem: DefaultMetricsSubsystem,
		},
	}
}

func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New("scoredset requires parameter name")
	}

	if c.Metrics.Enable {
		if c.Metrics.Namespace == "" {
			return errors.New("metrics requires parameter namespace")
		}

		if c.Metrics.Subsystem == "" {
			return errors.New("metrics requires parameter subsystem")
		}
	}

	return nil
}

// NewWithConfig validates cfg and returns an empty set built from it.
// Options are applied after cfg. When metrics are enabled the set collector
// is registered, a registration failure is returned as error.
func NewWithConfig[T comparable](cfg *Config, options ...Option[T]) (*ScoredSet[T], error) {
	if cfg == nil {
		return nil, errors.New("scoredset requires config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := New[T](append([]Option[T]{WithName[T](cfg.Name)}, options...)...)
	if !cfg.Metrics.Enable {
		return s, nil
	}

	if err := s.registerer.Register(NewCollector(cfg.Metrics, s.name, s)); err != nil {
		s.log.Errorf("register collector failed: %s", err.Error())
		return nil, err
	}

	s.log.Infof("collector registered in namespace %s", cfg.Metrics.Namespace)
	return s, nil
}
