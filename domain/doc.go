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

// Package domain provides parsing, normalization and validation for error
// domain identifiers.
//
// A domain is a namespace of integer error codes owned by one subsystem, such
// as "network" or "application". The identifier is the stable string key that
// travels together with the integer code in a foreign error record.
//
// Identifiers are:
//
//   - lowercased;
//   - dot-separated, 1 to 8 segments;
//   - made of [a-z][a-z0-9_]* segments.
//
// IMPORTANT: declared identifiers are validated, but identifiers observed on
// foreign records are compared byte-for-byte and are never normalized. A
// foreign "Network" is not the "network" domain.
package domain
