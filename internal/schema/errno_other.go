//go:build !windows

package schema

import "strconv"

//nolint:gochecknoglobals
var errnoMessages = map[Errno]string{
	ErrorSuccess:            "The operation completed successfully.",
	ErrorFileNotFound:       "The system cannot find the file specified.",
	ErrorPathNotFound:       "The system cannot find the path specified.",
	ErrorAccessDenied:       "Access is denied.",
	ErrorInvalidHandle:      "The handle is invalid.",
	ErrorSharingViolation:   "The process cannot access the file because it is being used by another process.",
	ErrorNotSupported:       "The request is not supported.",
	ErrorFileExists:         "The file exists.",
	ErrorInvalidParameter:   "The parameter is incorrect.",
	ErrorCallNotImplemented: "This function is not supported on this system.",
	ErrorDirNotEmpty:        "The directory is not empty.",
	ErrorAlreadyExists:      "Cannot create a file when that file already exists.",
	ErrorFilenameExcedRange: "The filename or extension is too long.",
	ErrorDirectory:          "The directory name is invalid.",
}

func errnoMessage(e Errno) string {
	if msg, ok := errnoMessages[e]; ok {
		return msg
	}

	return "winapi error #" + strconv.FormatUint(uint64(e), 10)
}
