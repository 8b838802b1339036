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

// Package httpx renders domain errors as JSON HTTP responses and decodes
// them back on the client side.
//
// The body is an apis.ErrorView encoded through protojson:
//
//	{"domain":"network","code":-1001,"name":"TimedOut","class":"transport","message":"..."}
package httpx

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/adapter"
	"dirpx.dev/ebridge/apis"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// ErrMalformedBody is returned by Decode for bodies that are not an
// error view.
var ErrMalformedBody = errors.New("httpx: malformed error body")

// ErrCodeRange is returned by Encode for codes that a JSON number cannot
// carry exactly.
var ErrCodeRange = errors.New("httpx: code out of range")

// maxCode bounds the code magnitude; larger integers lose precision as
// float64.
const maxCode = 1 << 53

// StatusFn picks the HTTP status for a described domain error.
type StatusFn func(apis.Description) int

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response. The zero value is usable: no resolver, DefaultStatus.
type Writer struct {
	// Resolver describes domain errors; may be nil.
	Resolver apis.Resolver
	// Status overrides DefaultStatus when set.
	Status StatusFn
}

// Write serializes err as an ErrorView and writes it with the mapped
// status. A nil err writes nothing.
//
// No automatic redaction or filtering is performed here: the message is
// err.Error() verbatim. Higher-level handlers should apply policies if
// needed.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	view := adapter.ToView(err, w.Resolver)
	desc := adapter.ToDescription(err, w.Resolver)

	statusFn := w.Status
	if statusFn == nil {
		statusFn = DefaultStatus
	}

	b, merr := Encode(view)
	if merr != nil {
		http.Error(rw, view.Message, http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(statusFn(desc))
	_, _ = rw.Write(b)
}

// HandlerFunc is an http handler that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts h into an http.Handler that writes returned errors.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if err := h(rw, req); err != nil {
			w.Write(rw, err)
		}
	})
}

// Encode renders v as JSON. Empty optional fields are omitted.
func Encode(v apis.ErrorView) ([]byte, error) {
	if c := int64(v.Code); c > maxCode || c < -maxCode {
		return nil, fmt.Errorf("%w: %d", ErrCodeRange, v.Code)
	}
	fields := map[string]any{
		"domain": v.Domain,
		"code":   v.Code,
	}
	if v.Name != "" {
		fields["name"] = v.Name
	}
	if v.Class != "" {
		fields["class"] = v.Class
	}
	if v.Message != "" {
		fields["message"] = v.Message
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("httpx: encode view: %w", err)
	}
	// protojson must be used so well-known types serialize as plain JSON
	// objects rather than their wire structure.
	return protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(s)
}

// Decode parses a body produced by Write back into its view and foreign
// record, so a client can bridge the error with ebridge.Bridge.
func Decode(body []byte) (ebridge.Foreign, apis.ErrorView, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(body, &s); err != nil {
		return ebridge.Foreign{}, apis.ErrorView{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	m := s.GetFields()

	dom, ok := m["domain"].GetKind().(*structpb.Value_StringValue)
	if !ok || dom.StringValue == "" {
		return ebridge.Foreign{}, apis.ErrorView{}, fmt.Errorf("%w: missing domain", ErrMalformedBody)
	}
	num, ok := m["code"].GetKind().(*structpb.Value_NumberValue)
	if !ok || num.NumberValue != math.Trunc(num.NumberValue) {
		return ebridge.Foreign{}, apis.ErrorView{}, fmt.Errorf("%w: missing or fractional code", ErrMalformedBody)
	}
	if math.Abs(num.NumberValue) > maxCode {
		return ebridge.Foreign{}, apis.ErrorView{}, fmt.Errorf("%w: code %g out of range", ErrMalformedBody, num.NumberValue)
	}

	v := apis.ErrorView{
		Domain:  dom.StringValue,
		Code:    int(num.NumberValue),
		Name:    m["name"].GetStringValue(),
		Class:   m["class"].GetStringValue(),
		Message: m["message"].GetStringValue(),
	}
	return ebridge.Foreign{Domain: v.Domain, Code: v.Code}, v, nil
}

// classStatus is the default HTTP status per range label of the built-in
// domains.
var classStatus = map[string]int{
	"transport":          http.StatusServiceUnavailable,
	"tls":                http.StatusServiceUnavailable,
	"background_session": http.StatusServiceUnavailable,
	"ipc":                http.StatusServiceUnavailable,
	"ubiquitous_file":    http.StatusServiceUnavailable,
	"download":           http.StatusBadGateway,
	"file":               http.StatusNotFound,
	"executable":         http.StatusInternalServerError,
	"user_activity":      http.StatusConflict,
	"validation":         http.StatusUnprocessableEntity,
	"formatting":         http.StatusBadRequest,
	"property_list":      http.StatusBadRequest,
	"coder":              http.StatusBadRequest,
}

// DefaultStatus maps a description to an HTTP status.
//
// Resolution order:
//  1. names containing "Cancel" -> 408, "TimedOut" -> 504;
//  2. the code's range label;
//  3. 500.
func DefaultStatus(d apis.Description) int {
	switch {
	case strings.Contains(d.Name, "Cancel"):
		return http.StatusRequestTimeout
	case strings.Contains(d.Name, "TimedOut"):
		return http.StatusGatewayTimeout
	}
	if s, ok := classStatus[d.Class]; ok {
		return s
	}
	return http.StatusInternalServerError
}
