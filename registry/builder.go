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

package registry

import "dirpx.dev/ebridge/apis"

type aliasRule struct {
	// from is the foreign domain string (WithAlias) or prefix
	// (WithAliasPrefix) as supplied by the caller.
	from string
	// to is the registered domain ID the rule routes to.
	to string
}

type builder struct {
	probers  []apis.Prober
	aliases  []aliasRule
	prefixes []aliasRule
}
