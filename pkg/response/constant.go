package response

const (
	// MessageSuccess is the message of successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "Internal server error"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	// DateFormat renders response.Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat renders response.DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
