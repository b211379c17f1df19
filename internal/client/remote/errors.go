package remote

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUnavailable marks network, timeout and storage outages.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrPermissionDenied marks a request the remote side refused.
	ErrPermissionDenied = errors.New("remote permission denied")
)

// RemoteError describes a failed remote operation. Kind is one of the
// sentinels above, or nil when the failure could not be classified.
type RemoteError struct {
	Op         string
	Collection string
	Kind       error
	Err        error
}

func (e *RemoteError) Error() string {
	msg := "remote " + e.Op
	if e.Collection != "" {
		msg += " " + e.Collection
	}
	if e.Kind != nil {
		msg += ": " + e.Kind.Error()
	}
	return msg + ": " + e.Err.Error()
}

func (e *RemoteError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

func newRemoteError(op, collection string, err error) error {
	var re *RemoteError
	if errors.As(err, &re) {
		return err
	}
	return &RemoteError{Op: op, Collection: collection, Kind: classify(err), Err: err}
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

func classify(err error) error {
	switch {
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrUnavailable):
		return nil
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, driver.ErrBadConn):
		return ErrUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501", "28000", "28P01":
			return ErrPermissionDenied
		case "57P01", "57P02", "57P03", "53300":
			return ErrUnavailable
		}
		return nil
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ErrUnavailable
	}

	var sc httpStatusCoder
	if errors.As(err, &sc) {
		switch code := sc.HTTPStatusCode(); {
		case code == http.StatusUnauthorized, code == http.StatusForbidden:
			return ErrPermissionDenied
		case code >= 500:
			return ErrUnavailable
		}
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrUnavailable
	}
	return nil
}
