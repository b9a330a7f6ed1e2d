// Package grpcreport converts failure records to and from gRPC
// statuses. The record travels as an ErrorInfo detail so both sides see
// the same action, domain, and diagnostic code.
package grpcreport

import (
	"context"
	"net/http"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/deixis/diaglog"
)

const metadataAction = "action"

// Pack returns a Status representing err.
func Pack(err error) *status.Status {
	s, _ := pack(err)
	return s
}

// pack returns a Status representing err if it carries a
// `*diaglog.Error` record, directly or through the Reporter capability.
// Otherwise, ok is false and a Status is returned with codes.Unknown
// and the original error message.
func pack(err error) (*status.Status, bool) {
	if err == nil {
		return status.New(codes.OK, ""), true
	}

	switch err {
	case context.Canceled:
		return status.New(codes.Canceled, err.Error()), true
	case context.DeadlineExceeded:
		return status.New(codes.DeadlineExceeded, err.Error()), true
	}

	record := recordOf(err)
	if record == nil {
		return status.New(codes.Unknown, err.Error()), false
	}

	s := status.New(codeOf(record.StatusCode), record.Message)
	info := &errdetails.ErrorInfo{
		Domain:   record.Domain,
		Metadata: map[string]string{metadataAction: record.Action},
	}
	if d, ok := err.(diaglog.Diagnostic); ok {
		info.Reason = d.Code()
	}
	if detailed, derr := s.WithDetails(info); derr == nil {
		s = detailed
	}
	return s, true
}

// PackRetryable packs err as an Unavailable status carrying a RetryInfo
// detail with the given delay. Clients should wait at least retryDelay
// before retrying the same request.
func PackRetryable(err error, retryDelay time.Duration) *status.Status {
	s := Pack(err)
	s = status.New(codes.Unavailable, s.Message())
	if detailed, derr := s.WithDetails(&errdetails.RetryInfo{
		RetryDelay: durationpb.New(retryDelay),
	}); derr == nil {
		return detailed
	}
	return s
}

// Unpack extracts a failure record from a gRPC error. Returns nil for a
// nil error or an OK status.
func Unpack(err error) *diaglog.Error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return &diaglog.Error{
			Action:  "perform remote call",
			Message: err.Error(),
		}
	}
	if st.Code() == codes.OK {
		return nil
	}

	record := &diaglog.Error{
		Action:     "perform remote call",
		Message:    st.Message(),
		StatusCode: statusCodeOf(st.Code()),
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		record.Domain = info.Domain
		if action, ok := info.Metadata[metadataAction]; ok && action != "" {
			record.Action = action
		}
	}
	return record
}

func recordOf(err error) *diaglog.Error {
	switch err := err.(type) {
	case *diaglog.Error:
		return err
	case diaglog.Reporter:
		return err.ToError()
	}
	return nil
}

// codeOf maps an HTTP-shaped status code to a gRPC code.
func codeOf(statusCode uint16) codes.Code {
	switch int(statusCode) {
	case 0, http.StatusInternalServerError:
		return codes.Internal
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	}
	if statusCode >= 400 && statusCode < 500 {
		return codes.InvalidArgument
	}
	return codes.Unknown
}

// statusCodeOf maps a gRPC code back to an HTTP-shaped status code.
func statusCodeOf(code codes.Code) uint16 {
	switch code {
	case codes.Internal:
		return http.StatusInternalServerError
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Aborted:
		return http.StatusConflict
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
