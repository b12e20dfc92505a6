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

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	old := CoreLogger
	t.Cleanup(func() {
		SetCoreLogger(old)
	})

	core, logs := observer.New(level)
	SetCoreLogger(zap.New(core).Sugar())
	return logs
}

func TestSugaredLoggerOnWith(t *testing.T) {
	tests := []struct {
		name   string
		level  zapcore.Level
		run    func(log *SugaredLoggerOnWith)
		expect func(t *testing.T, logs *observer.ObservedLogs)
	}{
		{
			name:  "debug enabled",
			level: zapcore.DebugLevel,
			run: func(log *SugaredLoggerOnWith) {
				log.Debugf("score %d created", 10)
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(1, logs.Len())
				entry := logs.All()[0]
				assert.Equal("score 10 created", entry.Message)
				assert.Equal("foo", entry.ContextMap()["scoredSet"])
			},
		},
		{
			name:  "debug disabled",
			level: zapcore.InfoLevel,
			run: func(log *SugaredLoggerOnWith) {
				log.Debugf("score %d created", 10)
				log.Infof("ready")
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(1, logs.Len())
				assert.Equal("ready", logs.All()[0].Message)
			},
		},
		{
			name:  "with appends args",
			level: zapcore.InfoLevel,
			run: func(log *SugaredLoggerOnWith) {
				log.With("score", int32(5)).Warnf("drained")
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(1, logs.Len())
				ctx := logs.All()[0].ContextMap()
				assert.Equal("foo", ctx["scoredSet"])
				assert.EqualValues(5, ctx["score"])
			},
		},
		{
			name:  "error only",
			level: zapcore.ErrorLevel,
			run: func(log *SugaredLoggerOnWith) {
				log.Info("ignored")
				log.Warnf("ignored")
				log.Errorf("failed: %s", "boom")
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(1, logs.Len())
				assert.Equal(zapcore.ErrorLevel, logs.All()[0].Level)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := observe(t, tc.level)
			tc.run(WithScoredSet("foo"))
			tc.expect(t, logs)
		})
	}
}

func TestIsDebug(t *testing.T) {
	assert := assert.New(t)

	observe(t, zapcore.DebugLevel)
	assert.True(IsDebug())
	assert.True(WithScoredSet("foo").IsDebug())

	observe(t, zapcore.InfoLevel)
	assert.False(IsDebug())
}

func TestInitConsole(t *testing.T) {
	assert := assert.New(t)
	old := CoreLogger
	t.Cleanup(func() {
		SetCoreLogger(old)
	})

	assert.NoError(InitConsole(true))
	assert.True(IsDebug())

	SetLevel(zapcore.InfoLevel)
	assert.False(IsDebug())

	assert.NoError(InitConsole(false))
	assert.False(IsDebug())
}
