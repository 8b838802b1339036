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

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type row struct {
	Name string `json:"name" yaml:"name"`
	Code int    `json:"code" yaml:"code"`
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":      FormatTable,
		"table": FormatTable,
		"TEXT":  FormatTable,
		"json":  FormatJSON,
		" yml ": FormatYAML,
		"yaml":  FormatYAML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	tbl := NewTable("Name", "Code")
	tbl.AddRow("TimedOut", "-1001")
	tbl.AddRow("Cancelled", "-999")

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(tbl))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "TimedOut")
	assert.Contains(t, out, "-999")
}

func TestPrint_JSONAndYAML(t *testing.T) {
	data := []row{{"TimedOut", -1001}}

	var jb bytes.Buffer
	require.NoError(t, NewPrinter(&jb, FormatJSON).Print(data))
	var fromJSON []row
	require.NoError(t, json.Unmarshal(jb.Bytes(), &fromJSON))
	assert.Equal(t, data, fromJSON)

	var yb bytes.Buffer
	require.NoError(t, NewPrinter(&yb, FormatYAML).Print(data))
	var fromYAML []row
	require.NoError(t, yaml.Unmarshal(yb.Bytes(), &fromYAML))
	assert.Equal(t, data, fromYAML)
}

func TestPrint_TableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(row{"Unknown", -1}))
	assert.JSONEq(t, `{"name":"Unknown","code":-1}`, buf.String())
}
