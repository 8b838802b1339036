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

// Package appcode declares the "application" error domain.
//
// Codes are grouped in reserved blocks: every code in [0, 1023] is a file
// error, every code in [1024, 2047] a validation error, and so on. The block
// predicates (IsFileError, IsValidationError, ...) look at the block only, so
// they also answer for codes that a newer peer may report but this table does
// not declare yet.
//
// The domain preserves undeclared codes: any code reported under
// "application" bridges to its Code value. Known reports false for such values.
package appcode
