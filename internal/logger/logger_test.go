/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "WARN", FormatJSON)
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Str("domain", "network").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "network", entry["domain"])
	assert.Equal(t, "kept", entry["message"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", FormatText)
	require.NoError(t, err)

	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("Error")
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, lvl)
}
