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
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestConfig_Load(t *testing.T) {
	assert := assert.New(t)

	config := &Config{
		Name: "peers",
		Metrics: MetricsConfig{
			Enable:    true,
			Namespace: "dragonfly",
			Subsystem: "scheduler_peers",
		},
	}

	cfg := NewConfig()
	b, err := os.ReadFile("./testdata/config.yaml")
	assert.NoError(err)
	assert.NoError(yaml.Unmarshal(b, cfg))
	assert.EqualValues(config, cfg)
	assert.NoError(cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: NewConfig(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "name requires parameter",
			config: NewConfig(),
			mock: func(cfg *Config) {
				cfg.Name = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "scoredset requires parameter name")
			},
		},
		{
			name:   "metrics requires parameter namespace",
			config: NewConfig(),
			mock: func(cfg *Config) {
				cfg.Metrics.Enable = true
				cfg.Metrics.Namespace = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "metrics requires parameter namespace")
			},
		},
		{
			name:   "metrics requires parameter subsystem",
			config: NewConfig(),
			mock: func(cfg *Config) {
				cfg.Metrics.Enable = true
				cfg.Metrics.Subsystem = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "metrics requires parameter subsystem")
			},
		},
		{
			name:   "disabled metrics ignores namespace",
			config: NewConfig(),
			mock: func(cfg *Config) {
				cfg.Metrics.Namespace = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		expect func(t *testing.T, s *ScoredSet[string], reg *prometheus.Registry, err error)
	}{
		{
			name:   "new without metrics",
			config: NewConfig(),
			expect: func(t *testing.T, s *ScoredSet[string], reg *prometheus.Registry, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(DefaultName, s.Name())

				families, err := reg.Gather()
				assert.NoError(err)
				assert.Empty(families)
			},
		},
		{
			name: "new with metrics",
			config: &Config{
				Name: "peers",
				Metrics: MetricsConfig{
					Enable:    true,
					Namespace: "dragonfly",
					Subsystem: "scoredset",
				},
			},
			expect: func(t *testing.T, s *ScoredSet[string], reg *prometheus.Registry, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("peers", s.Name())

				s.Add(10, "Alice")
				families, err := reg.Gather()
				assert.NoError(err)
				assert.Len(families, 5)
			},
		},
		{
			name:   "new without config",
			config: nil,
			expect: func(t *testing.T, s *ScoredSet[string], reg *prometheus.Registry, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "scoredset requires config")
				assert.Nil(s)
			},
		},
		{
			name:   "new with invalid config",
			config: &Config{},
			expect: func(t *testing.T, s *ScoredSet[string], reg *prometheus.Registry, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "scoredset requires parameter name")
				assert.Nil(s)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			s, err := NewWithConfig(tc.config, WithRegisterer[string](reg))
			tc.expect(t, s, reg, err)
		})
	}
}

func TestNewWithConfig_DuplicateCollector(t *testing.T) {
	assert := assert.New(t)
	reg := prometheus.NewRegistry()
	cfg := NewConfig()
	cfg.Metrics.Enable = true

	_, err := NewWithConfig(cfg, WithRegisterer[string](reg))
	assert.NoError(err)

	s, err := NewWithConfig(cfg, WithRegisterer[string](reg))
	assert.Error(err)
	assert.Nil(s)

	cfg.Name = "other"
	_, err = NewWithConfig(cfg, WithRegisterer[string](reg))
	assert.NoError(err)
}
