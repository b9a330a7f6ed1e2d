// Package httpreport converts failure records to HTTP statuses and
// JSON error bodies. The record's HTTP-shaped status code drives the
// response code when present.
package httpreport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/deixis/diaglog"
)

// Marshal writes err to the HTTP response writer as a JSON error body,
// together with the packed status code and headers.
func Marshal(w http.ResponseWriter, err error) error {
	status := Pack(err)
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	h := w.Header()
	for k, v := range status.Header {
		for i := range v {
			h.Add(k, v[i])
		}
	}
	w.WriteHeader(status.Code())

	enc := json.NewEncoder(w)
	return enc.Encode(status.statusError)
}

// Pack returns a Status representing err.
//
// The status code comes from the packed Error record when present, else
// http.StatusInternalServerError.
func Pack(err error) *Status {
	s, _ := pack(err)
	return s
}

// pack returns a Status representing err if it carries a
// `*diaglog.Error` record, directly or through the Reporter capability.
// Otherwise, ok is false and a Status is returned with
// http.StatusInternalServerError and the original error message.
func pack(err error) (*Status, bool) {
	if err == nil {
		return New(http.StatusOK, nil), true
	}

	switch err {
	case context.Canceled, context.DeadlineExceeded:
		record := &diaglog.Error{
			Action:  "complete request in time",
			Message: err.Error(),
		}
		return New(http.StatusGatewayTimeout, record), true
	}

	record := recordOf(err)
	if record == nil {
		record = &diaglog.Error{
			Action:  "handle request",
			Message: err.Error(),
		}
		return New(http.StatusInternalServerError, record), false
	}
	code := int(record.StatusCode)
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return New(code, record.Clone()), true
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

// Status represents an HTTP status code, headers, and the failure
// record it was packed from. It is immutable and should be created with
// New.
type Status struct {
	statusError
}

// New returns a Status representing code and record.
func New(code int, record *diaglog.Error) *Status {
	return &Status{statusError{Code: code, Header: http.Header{}, Record: record}}
}

// Code returns the status code contained in s.
func (s *Status) Code() int {
	if s == nil {
		return http.StatusOK
	}
	return s.statusError.Code
}

// Record returns the failure record contained in s.
func (s *Status) Record() *diaglog.Error {
	if s == nil {
		return nil
	}
	return s.statusError.Record
}

// Err returns an immutable error representing s; returns nil if
// s.Code() is OK.
func (s *Status) Err() error {
	if s.Code() == http.StatusOK {
		return nil
	}
	return s
}

// RetryAfter sets the `Retry-After` response header on s.
func (s *Status) RetryAfter(d time.Duration) *Status {
	FormatRetryAfter(s.Header, d)
	return s
}

type statusError struct {
	Code   int            `json:"-"`
	Header http.Header    `json:"-"`
	Record *diaglog.Error `json:"error"`
}

func (se *statusError) Error() string {
	if se == nil {
		return ""
	}
	return fmt.Sprintf("http error: code = %d desc = %s", se.Code, se.Record.Message)
}
