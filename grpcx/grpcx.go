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

// Package grpcx carries domain errors across gRPC boundaries.
//
// On the server side a domain error becomes a status whose details hold a
// google.rpc.ErrorInfo:
//
//	reason:   "TIMED_OUT"       (declared name in UPPER_SNAKE_CASE)
//	domain:   "network"
//	metadata: {"code": "-1001", "class": "transport"}
//
// On the client side FromError and UnaryClientInterceptor decode it back
// into an ebridge.Foreign, so callers can use ebridge.Bridge or errors.Is
// against typed constants as if the call had been local.
package grpcx

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/adapter"
	"dirpx.dev/ebridge/apis"
)

// Metadata keys used in ErrorInfo.
const (
	MetaCode   = "code"
	MetaClass  = "class"
	MetaSource = "source_domain"
)

// UnknownReason is the ErrorInfo reason for codes without a declared name.
const UnknownReason = "UNKNOWN_CODE"

// CodeFn picks the gRPC status code for a described domain error.
type CodeFn func(apis.Description) gcodes.Code

// Error is returned by UnaryClientInterceptor for statuses that carry an
// ErrorInfo. It unwraps to the decoded Foreign record and still exposes the
// original status to status.FromError.
type Error struct {
	Foreign ebridge.Foreign
	status  *gstatus.Status
}

func (e *Error) Error() string { return e.status.Message() }

// Unwrap returns the decoded foreign record.
func (e *Error) Unwrap() error { return e.Foreign }

// GRPCStatus lets status.FromError recover the original status.
func (e *Error) GRPCStatus() *gstatus.Status { return e.status }

// Status converts err into a gRPC status.
//
// The first domain error in err's tree is described through r (which may be
// nil) and attached as ErrorInfo. Errors without a domain error are
// reported as ebridge.UnknownFailure. Errors that already carry a gRPC
// status are returned unchanged. codeFn defaults to DefaultCode.
func Status(err error, r apis.Resolver, codeFn CodeFn) *gstatus.Status {
	if err == nil {
		return gstatus.New(gcodes.OK, "")
	}
	if st, ok := gstatus.FromError(err); ok {
		return st
	}
	if codeFn == nil {
		codeFn = DefaultCode
	}

	f, ok := adapter.ToForeign(err)
	if !ok {
		f = ebridge.ToForeign(ebridge.UnknownFailure)
	}
	desc := apis.Description{Domain: f.Domain, Code: f.Code}
	if r != nil {
		desc = r.Describe(f.Domain, f.Code)
	}

	info := &errdetails.ErrorInfo{
		Reason:   Reason(desc.Name),
		Domain:   f.Domain,
		Metadata: map[string]string{MetaCode: strconv.Itoa(f.Code)},
	}
	if desc.Target != "" && desc.Target != f.Domain {
		info.Domain = desc.Target
		info.Metadata[MetaSource] = f.Domain
	}
	if desc.Class != "" {
		info.Metadata[MetaClass] = desc.Class
	}

	base := gstatus.New(codeFn(desc), err.Error())
	with, derr := base.WithDetails(info)
	if derr != nil {
		return base
	}
	return with
}

// FromError decodes the ErrorInfo attached by Status. The returned record
// uses the registered domain ID, so aliases resolved on the server are not
// reproduced verbatim.
func FromError(err error) (ebridge.Foreign, bool) {
	if err == nil {
		return ebridge.Foreign{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return ebridge.Foreign{}, false
	}
	return fromStatus(st)
}

func fromStatus(st *gstatus.Status) (ebridge.Foreign, bool) {
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		c, err := strconv.Atoi(info.GetMetadata()[MetaCode])
		if err != nil || info.GetDomain() == "" {
			continue
		}
		return ebridge.Foreign{Domain: info.GetDomain(), Code: c}, true
	}
	return ebridge.Foreign{}, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// domain errors into statuses with ErrorInfo details.
//
// Errors that carry no domain error are returned as-is, so the handler's own
// status errors keep working.
func UnaryServerInterceptor(r apis.Resolver, codeFn CodeFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(err, r, codeFn)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(r apis.Resolver, codeFn CodeFn) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return convert(err, r, codeFn)
	}
}

func convert(err error, r apis.Resolver, codeFn CodeFn) error {
	if _, ok := adapter.ToForeign(err); !ok {
		return err
	}
	return Status(err, r, codeFn).Err()
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// status errors carrying ErrorInfo into *Error values.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		st, ok := gstatus.FromError(err)
		if !ok {
			return err
		}
		f, ok := fromStatus(st)
		if !ok {
			return err
		}
		return &Error{Foreign: f, status: st}
	}
}

// Reason renders a declared code name as an ErrorInfo reason:
// "TimedOut" becomes "TIMED_OUT" and "IPCConnectionInvalid" becomes
// "IPC_CONNECTION_INVALID". An empty name yields UnknownReason.
func Reason(name string) string {
	if name == "" {
		return UnknownReason
	}
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 8)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
