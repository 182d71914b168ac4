package response

// DateTimeFormat is the wire format for all response timestamps.
const DateTimeFormat = "2006-01-02 15:04:05"

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
)
