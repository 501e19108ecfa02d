package errors

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

const (
	InternalErrMaxCode = 9999

	UnknownCode = 500

	UnknownReason = ""
)

type Status struct {
	Code     int32
	Reason   string
	Message  string
	Metadata map[string]string
}

type Error struct {
	Status
	cause error
}

func New(code int32, reason, message string) *Error {
	return &Error{
		Status: Status{
			Code:    code,
			Reason:  reason,
			Message: message,
		},
	}
}

func Newf(code int32, reason, format string, a ...any) *Error {
	return New(code, reason, fmt.Sprintf(format, a...))
}

func Errorf(code int32, reason, format string, a ...any) error {
	return New(code, reason, fmt.Sprintf(format, a...))
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: code = %d reason = %s message = %s metadata = %v cause = %v", e.Code, e.Reason, e.Message, e.Metadata, e.cause)
}

func (e *Error) Internal() bool {
	return e.Code <= InternalErrMaxCode
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on code and reason, so clones carrying metadata or a cause still match their sentinel.
func (e *Error) Is(err error) bool {
	if se := new(Error); errors.As(err, &se) {
		return se.Code == e.Code && se.Reason == e.Reason
	}
	return false
}

func (e *Error) WithCause(cause error) *Error {
	err := Clone(e)
	err.cause = cause
	return err
}

func (e *Error) WithMetadata(md map[string]string) *Error {
	err := Clone(e)
	err.Metadata = make(map[string]string, len(md))
	for k, v := range md {
		err.Metadata[k] = v
	}
	return err
}

func (e *Error) GRPCStatus() *status.Status {
	gs := status.New(ToGRPCCode(int(e.Code)), e.Message)
	s, err := gs.WithDetails(&errdetails.ErrorInfo{
		Reason:   e.Reason,
		Metadata: e.Metadata,
	})
	if err != nil {
		return gs
	}
	return s
}

func Clone(err *Error) *Error {
	if err == nil {
		return nil
	}
	metadata := make(map[string]string, len(err.Metadata))
	for k, v := range err.Metadata {
		metadata[k] = v
	}
	return &Error{
		cause: err.cause,
		Status: Status{
			Code:     err.Code,
			Reason:   err.Reason,
			Message:  err.Message,
			Metadata: metadata,
		},
	}
}

func Code(err error) int {
	if err == nil {
		return 200
	}
	return int(FromError(err).Code)
}

func Reason(err error) string {
	if err == nil {
		return UnknownReason
	}
	return FromError(err).Reason
}

func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	if se := new(Error); errors.As(err, &se) {
		return se
	}
	gs, ok := status.FromError(err)
	if !ok {
		return New(UnknownCode, UnknownReason, err.Error())
	}

	ret := New(int32(FromGRPCCode(gs.Code())), UnknownReason, gs.Message())

	for _, detail := range gs.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			ret.Reason = d.Reason
			return ret.WithMetadata(d.Metadata)
		}
	}

	return ret
}
