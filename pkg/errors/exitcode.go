package errors

// Exit statuses follow BSD sysexits(3).
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 64
	ExitNoInput    = 66
	ExitSoftware   = 70
	ExitCantCreate = 73
	ExitIOErr      = 74
	ExitConfig     = 78
)

// ExitCode maps an error to the process exit status reported by the driver.
// A nil error is success.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch GetErrorCode(err) {
	case ErrMissingInput:
		return ExitNoInput
	case ErrOutputCreate:
		return ExitCantCreate
	case ErrInvalidInput:
		return ExitUsage
	case ErrConfigLoad, ErrConfigParse:
		return ExitConfig
	case ErrArchiveFinalize:
		return ExitIOErr
	case ErrInternal:
		return ExitSoftware
	default:
		return ExitFailure
	}
}
