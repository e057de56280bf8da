package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	// ClientErrorCode marks a request the caller can fix.
	ClientErrorCode = 1
	// UpstreamErrorCode marks a failing collaborator (estimator, calendar).
	UpstreamErrorCode = 2
)
