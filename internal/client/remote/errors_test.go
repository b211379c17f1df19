package remote

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/dmitrijs2005/recruitkeeper/internal/netx"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"pg insufficient privilege", &pgconn.PgError{Code: "42501"}, ErrPermissionDenied},
		{"pg auth failed", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "28P01"}), ErrPermissionDenied},
		{"pg admin shutdown", &pgconn.PgError{Code: "57P01"}, ErrUnavailable},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, nil},
		{"deadline", context.DeadlineExceeded, ErrUnavailable},
		{"bad conn", driver.ErrBadConn, ErrUnavailable},
		{"net", &net.OpError{Op: "dial", Err: errors.New("refused")}, ErrUnavailable},
		{"http 403", &netx.StatusError{Code: 403}, ErrPermissionDenied},
		{"http 503", &netx.StatusError{Code: 503}, ErrUnavailable},
		{"http 400", &netx.StatusError{Code: 400}, nil},
		{"plain", errors.New("???"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestRemoteError(t *testing.T) {
	cause := &net.OpError{Op: "dial", Err: errors.New("refused")}
	err := newRemoteError("fetch", "resources", cause)

	var re *RemoteError
	assert.True(t, errors.As(err, &re))
	assert.Equal(t, "fetch", re.Op)
	assert.Equal(t, "resources", re.Collection)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "remote fetch resources: remote store unavailable")

	assert.Same(t, err, newRemoteError("refresh", "x", err), "already classified errors pass through")

	plain := newRemoteError("create", "", errors.New("odd"))
	assert.Equal(t, "remote create: odd", plain.Error())
	assert.NotErrorIs(t, plain, ErrUnavailable)
}
