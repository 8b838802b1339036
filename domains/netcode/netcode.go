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

package netcode

import (
	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/class"
	"dirpx.dev/ebridge/code"
)

// ID is the domain identifier.
const ID = "network"

// Code is a network error code.
type Code int

// Declared network codes.
const (
	Unknown                                  Code = -1
	Cancelled                                Code = -999
	BadURL                                   Code = -1000
	TimedOut                                 Code = -1001
	UnsupportedURL                           Code = -1002
	CannotFindHost                           Code = -1003
	CannotConnectToHost                      Code = -1004
	NetworkConnectionLost                    Code = -1005
	DNSLookupFailed                          Code = -1006
	HTTPTooManyRedirects                     Code = -1007
	ResourceUnavailable                      Code = -1008
	NotConnectedToInternet                   Code = -1009
	RedirectToNonExistentLocation            Code = -1010
	BadServerResponse                        Code = -1011
	UserCancelledAuthentication              Code = -1012
	UserAuthenticationRequired               Code = -1013
	ZeroByteResource                         Code = -1014
	CannotDecodeRawData                      Code = -1015
	CannotDecodeContentData                  Code = -1016
	CannotParseResponse                      Code = -1017
	InternationalRoamingOff                  Code = -1018
	CallIsActive                             Code = -1019
	DataNotAllowed                           Code = -1020
	RequestBodyStreamExhausted               Code = -1021
	FileDoesNotExist                         Code = -1100
	FileIsDirectory                          Code = -1101
	NoPermissionsToReadFile                  Code = -1102
	SecureConnectionFailed                   Code = -1200
	ServerCertificateHasBadDate              Code = -1201
	ServerCertificateUntrusted               Code = -1202
	ServerCertificateHasUnknownRoot          Code = -1203
	ServerCertificateNotYetValid             Code = -1204
	ClientCertificateRejected                Code = -1205
	ClientCertificateRequired                Code = -1206
	CannotLoadFromNetwork                    Code = -2000
	CannotCreateFile                         Code = -3000
	CannotOpenFile                           Code = -3001
	CannotCloseFile                          Code = -3002
	CannotWriteToFile                        Code = -3003
	CannotRemoveFile                         Code = -3004
	CannotMoveFile                           Code = -3005
	DownloadDecodingFailedMidStream          Code = -3006
	DownloadDecodingFailedToComplete         Code = -3007
	BackgroundSessionRequiresSharedContainer Code = -995
	BackgroundSessionInUseByAnotherProcess   Code = -996
	BackgroundSessionWasDisconnected         Code = -997
)

// Code families.
const (
	ClassBackgroundSession class.Label = "background_session"
	ClassTransport         class.Label = "transport"
	ClassFile              class.Label = "file"
	ClassTLS               class.Label = "tls"
	ClassDownload          class.Label = "download"
)

// Domain is the "network" domain.
var Domain = ebridge.MustDomain(ID, []code.Entry[Code]{
	code.E("Unknown", Unknown),
	code.E("Cancelled", Cancelled),
	code.E("BadURL", BadURL),
	code.E("TimedOut", TimedOut),
	code.E("UnsupportedURL", UnsupportedURL),
	code.E("CannotFindHost", CannotFindHost),
	code.E("CannotConnectToHost", CannotConnectToHost),
	code.E("NetworkConnectionLost", NetworkConnectionLost),
	code.E("DNSLookupFailed", DNSLookupFailed),
	code.E("HTTPTooManyRedirects", HTTPTooManyRedirects),
	code.E("ResourceUnavailable", ResourceUnavailable),
	code.E("NotConnectedToInternet", NotConnectedToInternet),
	code.E("RedirectToNonExistentLocation", RedirectToNonExistentLocation),
	code.E("BadServerResponse", BadServerResponse),
	code.E("UserCancelledAuthentication", UserCancelledAuthentication),
	code.E("UserAuthenticationRequired", UserAuthenticationRequired),
	code.E("ZeroByteResource", ZeroByteResource),
	code.E("CannotDecodeRawData", CannotDecodeRawData),
	code.E("CannotDecodeContentData", CannotDecodeContentData),
	code.E("CannotParseResponse", CannotParseResponse),
	code.E("InternationalRoamingOff", InternationalRoamingOff),
	code.E("CallIsActive", CallIsActive),
	code.E("DataNotAllowed", DataNotAllowed),
	code.E("RequestBodyStreamExhausted", RequestBodyStreamExhausted),
	code.E("FileDoesNotExist", FileDoesNotExist),
	code.E("FileIsDirectory", FileIsDirectory),
	code.E("NoPermissionsToReadFile", NoPermissionsToReadFile),
	code.E("SecureConnectionFailed", SecureConnectionFailed),
	code.E("ServerCertificateHasBadDate", ServerCertificateHasBadDate),
	code.E("ServerCertificateUntrusted", ServerCertificateUntrusted),
	code.E("ServerCertificateHasUnknownRoot", ServerCertificateHasUnknownRoot),
	code.E("ServerCertificateNotYetValid", ServerCertificateNotYetValid),
	code.E("ClientCertificateRejected", ClientCertificateRejected),
	code.E("ClientCertificateRequired", ClientCertificateRequired),
	code.E("CannotLoadFromNetwork", CannotLoadFromNetwork),
	code.E("CannotCreateFile", CannotCreateFile),
	code.E("CannotOpenFile", CannotOpenFile),
	code.E("CannotCloseFile", CannotCloseFile),
	code.E("CannotWriteToFile", CannotWriteToFile),
	code.E("CannotRemoveFile", CannotRemoveFile),
	code.E("CannotMoveFile", CannotMoveFile),
	code.E("DownloadDecodingFailedMidStream", DownloadDecodingFailedMidStream),
	code.E("DownloadDecodingFailedToComplete", DownloadDecodingFailedToComplete),
	code.E("BackgroundSessionRequiresSharedContainer", BackgroundSessionRequiresSharedContainer),
	code.E("BackgroundSessionInUseByAnotherProcess", BackgroundSessionInUseByAnotherProcess),
	code.E("BackgroundSessionWasDisconnected", BackgroundSessionWasDisconnected),
},
	ebridge.WithUnknown(Unknown),
	ebridge.WithRanges(
		class.R(-997, -995, ClassBackgroundSession),
		class.R(-1021, -1000, ClassTransport),
		class.R(-1102, -1100, ClassFile),
		class.R(-1206, -1200, ClassTLS),
		class.R(-3007, -3000, ClassDownload),
	),
)

// From bridges a foreign record into a Code.
func From(f ebridge.Foreign) (Code, bool) { return Domain.TryBridge(f) }

// As finds a network error anywhere in err's tree.
func As(err error) (Code, bool) { return ebridge.Bridge(err, Domain) }

func (c Code) Error() string       { return Domain.Format(c) }
func (c Code) ErrorDomain() string { return ID }
func (c Code) ErrorCode() int      { return int(c) }
func (c Code) ErrorName() string   { return Domain.Name(c) }

// String returns the declared name, or the numeric code.
func (c Code) String() string {
	if n := Domain.Name(c); n != "" {
		return n
	}
	return Domain.Format(c)
}

// Foreign returns the untyped record for c.
func (c Code) Foreign() ebridge.Foreign { return Domain.ToForeign(c) }

// IsTLSError reports whether c is a certificate or secure-connection failure.
func (c Code) IsTLSError() bool { return Domain.Is(c, ClassTLS) }

// IsFileError reports whether c concerns a local file.
func (c Code) IsFileError() bool { return Domain.Is(c, ClassFile) }

// IsDownloadError reports whether c happened while saving a download.
func (c Code) IsDownloadError() bool { return Domain.Is(c, ClassDownload) }

// IsTransportError reports whether c is a request/response level failure.
func (c Code) IsTransportError() bool { return Domain.Is(c, ClassTransport) }

// IsBackgroundSessionError reports whether c concerns a background session.
func (c Code) IsBackgroundSessionError() bool { return Domain.Is(c, ClassBackgroundSession) }
