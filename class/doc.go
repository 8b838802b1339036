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

// Package class classifies integer error codes by range.
//
// Domains often reserve blocks of codes for a family of errors: in the
// application domain every code in [0, 1023] is a file error and every code
// in [1024, 2047] is a validation error. A Classifier answers "which family
// does this code belong to?" from an ordered list of closed ranges.
//
// Ranges are expected to be disjoint, but that is a convention of whoever
// designs the domain. When ranges do overlap the first matching range wins,
// and Overlaps reports the offending pairs so that tests can catch them.
package class
