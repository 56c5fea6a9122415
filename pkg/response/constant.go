package response

const (
	MessageSuccess      = "Success"
	ForbiddenCode       = 403
	TooManyRequestsCode = 429

	DateTimeFormat = "2006-01-02 15:04:05"
)
