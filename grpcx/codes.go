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

package grpcx

import (
	"strings"

	gcodes "google.golang.org/grpc/codes"

	"dirpx.dev/ebridge/apis"
)

// classCodes is the default gRPC code per range label of the built-in
// domains.
var classCodes = map[string]gcodes.Code{
	"transport":          gcodes.Unavailable,
	"tls":                gcodes.Unavailable,
	"background_session": gcodes.Unavailable,
	"ipc":                gcodes.Unavailable,
	"ubiquitous_file":    gcodes.Unavailable,
	"download":           gcodes.DataLoss,
	"file":               gcodes.FailedPrecondition,
	"executable":         gcodes.FailedPrecondition,
	"user_activity":      gcodes.FailedPrecondition,
	"validation":         gcodes.InvalidArgument,
	"formatting":         gcodes.InvalidArgument,
	"property_list":      gcodes.InvalidArgument,
	"coder":              gcodes.InvalidArgument,
}

// DefaultCode maps a description to a gRPC code.
//
// Resolution order:
//  1. names containing "Cancel" -> CANCELED, "TimedOut" -> DEADLINE_EXCEEDED;
//  2. the code's range label;
//  3. UNKNOWN.
func DefaultCode(d apis.Description) gcodes.Code {
	switch {
	case strings.Contains(d.Name, "Cancel"):
		return gcodes.Canceled
	case strings.Contains(d.Name, "TimedOut"):
		return gcodes.DeadlineExceeded
	}
	if c, ok := classCodes[d.Class]; ok {
		return c
	}
	return gcodes.Unknown
}
