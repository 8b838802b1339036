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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/apis"
	"dirpx.dev/ebridge/class"
	"dirpx.dev/ebridge/code"
	"dirpx.dev/ebridge/internal/cli/output"
)

// inspectable is the non-generic part of *ebridge.Domain[T].
type inspectable interface {
	Policy() ebridge.Policy
	Classifier() *class.Classifier
	Declared() []code.Entry[int]
}

type domainRow struct {
	ID      string   `json:"id" yaml:"id"`
	Policy  string   `json:"policy,omitempty" yaml:"policy,omitempty"`
	Codes   int      `json:"codes" yaml:"codes"`
	Classes []string `json:"classes,omitempty" yaml:"classes,omitempty"`
}

type domainList []domainRow

func (l domainList) Headers() []string { return []string{"Domain", "Policy", "Codes", "Classes"} }

func (l domainList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, d := range l {
		rows = append(rows, []string{d.ID, orDash(d.Policy), strconv.Itoa(d.Codes), orDash(strings.Join(d.Classes, ", "))})
	}
	return rows
}

func newDomainsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List registered error domains",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var list domainList
			for _, id := range e.reg.Domains() {
				p, _ := e.reg.Lookup(id.String())
				row := domainRow{ID: id.String()}
				if d, ok := p.(inspectable); ok {
					row.Policy = d.Policy().String()
					row.Codes = len(d.Declared())
					for _, r := range d.Classifier().Ranges() {
						row.Classes = append(row.Classes, r.String())
					}
				}
				list = append(list, row)
			}
			return e.printer.Print(list)
		},
	}
}

type codeRow struct {
	Name  string `json:"name" yaml:"name"`
	Code  int    `json:"code" yaml:"code"`
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
}

type codeList []codeRow

func (l codeList) Headers() []string { return []string{"Name", "Code", "Class"} }

func (l codeList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, c := range l {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Code), orDash(c.Class)})
	}
	return rows
}

func newTableCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "table <domain>",
		Short: "List the declared codes of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, ok := e.reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("domain %q is not registered", args[0])
			}
			d, ok := p.(inspectable)
			if !ok {
				return fmt.Errorf("domain %q does not expose its table", args[0])
			}
			var list codeList
			for _, c := range d.Declared() {
				l, _ := d.Classifier().Classify(c.Value)
				list = append(list, codeRow{Name: c.Name, Code: c.Value, Class: string(l)})
			}
			return e.printer.Print(list)
		},
	}
}

func newExplainCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <domain> <code>",
		Short: "Show how a foreign (domain, code) pair resolves",
		Example: `  ebridge explain NSURLErrorDomain -- -1001
  ebridge explain application 4 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := parseCode(args[1])
			if err != nil {
				return err
			}
			if e.printer.Format() == output.FormatTable {
				e.printer.Println(e.reg.Explain(args[0], c))
				return nil
			}
			return e.printer.Print(e.reg.Describe(args[0], c))
		},
	}
}

type classification struct {
	Domain string `json:"domain" yaml:"domain"`
	Code   int    `json:"code" yaml:"code"`
	Class  string `json:"class" yaml:"class"`
}

func newClassifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <domain> <code>",
		Short: "Print the range label of a code",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := parseCode(args[1])
			if err != nil {
				return err
			}
			d := e.reg.Describe(args[0], c)
			if !d.Registered {
				return fmt.Errorf("domain %q is not registered", args[0])
			}
			res := classification{Domain: describedDomain(d), Code: c, Class: orDash(d.Class)}
			if e.printer.Format() == output.FormatTable {
				e.printer.Println(res.Class)
				return nil
			}
			return e.printer.Print(res)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ebridge %s (%s)\n", Version, Commit)
			return err
		},
	}
}

func describedDomain(d apis.Description) string {
	if d.Target != "" {
		return d.Target
	}
	return d.Domain
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
