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

// Package code provides static tables of named integer error codes.
//
// A table is the Go form of a domain's list of declared codes: a flat set of
// (name, value) pairs. Tables are validated once, at construction time:
//
//   - every name is non-empty;
//   - names are pairwise distinct;
//   - values are pairwise distinct.
//
// A table never changes after New returns, so it can be shared freely
// between goroutines.
package code
