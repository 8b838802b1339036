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

package appcode

import (
	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/class"
	"dirpx.dev/ebridge/code"
)

// ID is the domain identifier.
const ID = "application"

// Code is an application error code.
type Code int

// File errors.
const (
	FileNoSuchFile                      Code = 4
	FileLocking                         Code = 255
	FileReadUnknown                     Code = 256
	FileReadNoPermission                Code = 257
	FileReadInvalidFileName             Code = 258
	FileReadCorruptFile                 Code = 259
	FileReadNoSuchFile                  Code = 260
	FileReadInapplicableStringEncoding  Code = 261
	FileReadUnsupportedScheme           Code = 262
	FileReadTooLarge                    Code = 263
	FileReadUnknownStringEncoding       Code = 264
	FileWriteUnknown                    Code = 512
	FileWriteNoPermission               Code = 513
	FileWriteInvalidFileName            Code = 514
	FileWriteFileExists                 Code = 516
	FileWriteInapplicableStringEncoding Code = 517
	FileWriteUnsupportedScheme          Code = 518
	FileWriteOutOfSpace                 Code = 640
	FileWriteVolumeReadOnly             Code = 642
	FileManagerUnmountUnknown           Code = 768
	FileManagerUnmountBusy              Code = 769
)

// Validation, formatting and control-flow errors.
const (
	KeyValueValidation Code = 1024
	Formatting         Code = 2048
	UserCancelled      Code = 3072
	FeatureUnsupported Code = 3328
)

// Executable loading errors.
const (
	ExecutableNotLoadable          Code = 3584
	ExecutableArchitectureMismatch Code = 3585
	ExecutableRuntimeMismatch      Code = 3586
	ExecutableLoad                 Code = 3587
	ExecutableLink                 Code = 3588
)

// Property list errors.
const (
	PropertyListReadCorrupt        Code = 3840
	PropertyListReadUnknownVersion Code = 3841
	PropertyListReadStream         Code = 3842
	PropertyListWriteStream        Code = 3851
	PropertyListWriteInvalid       Code = 3852
)

// Inter-process connection errors.
const (
	IPCConnectionInterrupted  Code = 4097
	IPCConnectionInvalid      Code = 4099
	IPCConnectionReplyInvalid Code = 4101
)

// Ubiquitous (cloud-synced) file errors.
const (
	UbiquitousFileUnavailable           Code = 4353
	UbiquitousFileNotUploadedDueToQuota Code = 4354
	UbiquitousFileServerNotAvailable    Code = 4355
)

// User activity hand-off errors.
const (
	UserActivityHandoffFailed             Code = 4608
	UserActivityConnectionUnavailable     Code = 4609
	UserActivityRemoteApplicationTimedOut Code = 4610
	UserActivityHandoffUserInfoTooLarge   Code = 4611
)

// Coder errors.
const (
	CoderReadCorrupt   Code = 4864
	CoderValueNotFound Code = 4865
)

// Code families.
const (
	ClassFile           class.Label = "file"
	ClassValidation     class.Label = "validation"
	ClassFormatting     class.Label = "formatting"
	ClassExecutable     class.Label = "executable"
	ClassPropertyList   class.Label = "property_list"
	ClassIPC            class.Label = "ipc"
	ClassUbiquitousFile class.Label = "ubiquitous_file"
	ClassUserActivity   class.Label = "user_activity"
	ClassCoder          class.Label = "coder"
)

// Domain is the "application" domain.
var Domain = ebridge.MustDomain(ID, []code.Entry[Code]{
	code.E("FileNoSuchFile", FileNoSuchFile),
	code.E("FileLocking", FileLocking),
	code.E("FileReadUnknown", FileReadUnknown),
	code.E("FileReadNoPermission", FileReadNoPermission),
	code.E("FileReadInvalidFileName", FileReadInvalidFileName),
	code.E("FileReadCorruptFile", FileReadCorruptFile),
	code.E("FileReadNoSuchFile", FileReadNoSuchFile),
	code.E("FileReadInapplicableStringEncoding", FileReadInapplicableStringEncoding),
	code.E("FileReadUnsupportedScheme", FileReadUnsupportedScheme),
	code.E("FileReadTooLarge", FileReadTooLarge),
	code.E("FileReadUnknownStringEncoding", FileReadUnknownStringEncoding),
	code.E("FileWriteUnknown", FileWriteUnknown),
	code.E("FileWriteNoPermission", FileWriteNoPermission),
	code.E("FileWriteInvalidFileName", FileWriteInvalidFileName),
	code.E("FileWriteFileExists", FileWriteFileExists),
	code.E("FileWriteInapplicableStringEncoding", FileWriteInapplicableStringEncoding),
	code.E("FileWriteUnsupportedScheme", FileWriteUnsupportedScheme),
	code.E("FileWriteOutOfSpace", FileWriteOutOfSpace),
	code.E("FileWriteVolumeReadOnly", FileWriteVolumeReadOnly),
	code.E("FileManagerUnmountUnknown", FileManagerUnmountUnknown),
	code.E("FileManagerUnmountBusy", FileManagerUnmountBusy),
	code.E("KeyValueValidation", KeyValueValidation),
	code.E("Formatting", Formatting),
	code.E("UserCancelled", UserCancelled),
	code.E("FeatureUnsupported", FeatureUnsupported),
	code.E("ExecutableNotLoadable", ExecutableNotLoadable),
	code.E("ExecutableArchitectureMismatch", ExecutableArchitectureMismatch),
	code.E("ExecutableRuntimeMismatch", ExecutableRuntimeMismatch),
	code.E("ExecutableLoad", ExecutableLoad),
	code.E("ExecutableLink", ExecutableLink),
	code.E("PropertyListReadCorrupt", PropertyListReadCorrupt),
	code.E("PropertyListReadUnknownVersion", PropertyListReadUnknownVersion),
	code.E("PropertyListReadStream", PropertyListReadStream),
	code.E("PropertyListWriteStream", PropertyListWriteStream),
	code.E("PropertyListWriteInvalid", PropertyListWriteInvalid),
	code.E("IPCConnectionInterrupted", IPCConnectionInterrupted),
	code.E("IPCConnectionInvalid", IPCConnectionInvalid),
	code.E("IPCConnectionReplyInvalid", IPCConnectionReplyInvalid),
	code.E("UbiquitousFileUnavailable", UbiquitousFileUnavailable),
	code.E("UbiquitousFileNotUploadedDueToQuota", UbiquitousFileNotUploadedDueToQuota),
	code.E("UbiquitousFileServerNotAvailable", UbiquitousFileServerNotAvailable),
	code.E("UserActivityHandoffFailed", UserActivityHandoffFailed),
	code.E("UserActivityConnectionUnavailable", UserActivityConnectionUnavailable),
	code.E("UserActivityRemoteApplicationTimedOut", UserActivityRemoteApplicationTimedOut),
	code.E("UserActivityHandoffUserInfoTooLarge", UserActivityHandoffUserInfoTooLarge),
	code.E("CoderReadCorrupt", CoderReadCorrupt),
	code.E("CoderValueNotFound", CoderValueNotFound),
}, ebridge.WithRanges(
	class.R(0, 1023, ClassFile),
	class.R(1024, 2047, ClassValidation),
	class.R(2048, 2559, ClassFormatting),
	class.R(3584, 3839, ClassExecutable),
	class.R(3840, 4095, ClassPropertyList),
	class.R(4096, 4224, ClassIPC),
	class.R(4352, 4607, ClassUbiquitousFile),
	class.R(4608, 4863, ClassUserActivity),
	class.R(4864, 4991, ClassCoder),
), ebridge.WithPolicy(ebridge.Preserve))

// From bridges a foreign record into a Code.
func From(f ebridge.Foreign) (Code, bool) { return Domain.TryBridge(f) }

// As finds an application error anywhere in err's tree.
func As(err error) (Code, bool) { return ebridge.Bridge(err, Domain) }

func (c Code) Error() string       { return Domain.Format(c) }
func (c Code) ErrorDomain() string { return ID }
func (c Code) ErrorCode() int      { return int(c) }
func (c Code) ErrorName() string   { return Domain.Name(c) }

// Foreign returns the untyped record for c.
func (c Code) Foreign() ebridge.Foreign { return Domain.ToForeign(c) }

func (c Code) IsFileError() bool           { return Domain.Is(c, ClassFile) }
func (c Code) IsValidationError() bool     { return Domain.Is(c, ClassValidation) }
func (c Code) IsFormattingError() bool     { return Domain.Is(c, ClassFormatting) }
func (c Code) IsExecutableError() bool     { return Domain.Is(c, ClassExecutable) }
func (c Code) IsPropertyListError() bool   { return Domain.Is(c, ClassPropertyList) }
func (c Code) IsIPCError() bool            { return Domain.Is(c, ClassIPC) }
func (c Code) IsUbiquitousFileError() bool { return Domain.Is(c, ClassUbiquitousFile) }
func (c Code) IsUserActivityError() bool   { return Domain.Is(c, ClassUserActivity) }
func (c Code) IsCoderError() bool          { return Domain.Is(c, ClassCoder) }
