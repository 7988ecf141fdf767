package response

const (
	MessageSuccess = "success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "something went wrong, please try again later"
)
