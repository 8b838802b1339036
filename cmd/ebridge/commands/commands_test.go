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

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/ebridge/apis"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDomains(t *testing.T) {
	out, err := run(t, "domains")
	require.NoError(t, err)

	assert.Contains(t, out, "DOMAIN")
	assert.Contains(t, out, "ebridge.generic")
	assert.Contains(t, out, "network")
	assert.Contains(t, out, "collapse")
	assert.Contains(t, out, "tls[-1206,-1200]")
	assert.Contains(t, out, "application")
}

func TestDomains_JSON(t *testing.T) {
	out, err := run(t, "domains", "-o", "json")
	require.NoError(t, err)

	var rows []domainRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "network", rows[1].ID)
	assert.Equal(t, 46, rows[1].Codes)
	assert.Equal(t, "strict", rows[0].Policy)
	assert.Equal(t, "preserve", rows[2].Policy)
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "network")
	require.NoError(t, err)
	assert.Contains(t, out, "TimedOut")
	assert.Contains(t, out, "-1001")
	assert.Contains(t, out, "transport")

	_, err = run(t, "table", "missing")
	assert.ErrorContains(t, err, "not registered")
}

func TestExplain(t *testing.T) {
	out, err := run(t, "explain", "network", "--", "-1001")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`domain="network" code=-1001`,
		`route: source=exact -> network`,
		`probe: declared="TimedOut" class="transport" -> match "network: TimedOut (-1001)"`,
		`result: match`,
	}, "\n")+"\n", out)
}

func TestExplain_JSON(t *testing.T) {
	out, err := run(t, "explain", "application", "1024", "-o", "json")
	require.NoError(t, err)

	var d apis.Description
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "KeyValueValidation", d.Name)
	assert.Equal(t, "validation", d.Class)
	assert.True(t, d.Known)
}

func TestExplain_BadCode(t *testing.T) {
	_, err := run(t, "explain", "network", "abc")
	assert.ErrorContains(t, err, "invalid code")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"classify", "application", "4"}, "file\n"},
		{[]string{"classify", "application", "1024"}, "validation\n"},
		{[]string{"classify", "application", "5000"}, "-\n"},
	}
	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}

	_, err := run(t, "classify", "example.other", "1")
	assert.ErrorContains(t, err, "not registered")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ebridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
builtins: false
domains:
  - id: storage
    codes:
      - {name: NotFound, value: 404}
    classes:
      - {label: client, lo: 400, hi: 499}
aliases:
  - {from: S3, to: storage}
`), 0o600))

	out, err := run(t, "--config", path, "classify", "S3", "404", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "domain: storage")
	assert.Contains(t, out, "class: client")

	out, err = run(t, "--config", path, "domains", "-o", "json")
	require.NoError(t, err)
	var rows []domainRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "storage", rows[0].ID)
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "domains", "-o", "xml")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "domains")
	assert.Error(t, err)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "domains")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ebridge dev (none)\n", out)
}
