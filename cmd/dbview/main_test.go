package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/writeloop/dbview/internal/errs"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "permission denied hints at credentials",
			err:  errs.New(errs.ErrKindPermissionDenied, "access denied"),
			want: "DB_USER and DB_PASSWORD",
		},
		{
			name: "connection failure hints at address",
			err:  errs.New(errs.ErrKindConnectionFailed, "connection refused"),
			want: "DB_HOST and DB_PORT",
		},
		{
			name: "timeout",
			err:  errs.New(errs.ErrKindTimeout, "deadline exceeded"),
			want: "timed out",
		},
		{
			name: "anything else passes through",
			err:  errors.New("user not found: nobody"),
			want: "user not found: nobody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, describe(tt.err), tt.want)
		})
	}
}
