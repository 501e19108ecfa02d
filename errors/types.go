package errors

func BadRequest(reason, message string) *Error {
	return New(400, reason, message)
}

func IsBadRequest(err error) bool {
	return Code(err) == 400
}

func ServiceUnavailable(reason, message string) *Error {
	return New(503, reason, message)
}

func IsServiceUnavailable(err error) bool {
	return Code(err) == 503
}

func InternalServer(reason, message string) *Error {
	return New(500, reason, message)
}

func IsInternalServer(err error) bool {
	return Code(err) == 500
}
