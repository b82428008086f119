package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/writeloop/dbview/internal/errs"
)

func TestSelectBuilder_Build(t *testing.T) {
	tests := []struct {
		name     string
		build    *SelectBuilder
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "star select",
			build:    Select("users"),
			wantSQL:  "SELECT * FROM `users`",
			wantArgs: nil,
		},
		{
			name: "columns with order",
			build: Select("users").
				Columns("id", "username").
				OrderBy("id", Asc),
			wantSQL:  "SELECT `id`, `username` FROM `users` ORDER BY `id` ASC",
			wantArgs: nil,
		},
		{
			name: "where is parameterized",
			build: Select("users").
				Columns("id").
				Where("username", "=", "jialu"),
			wantSQL:  "SELECT `id` FROM `users` WHERE `username` = ?",
			wantArgs: []any{"jialu"},
		},
		{
			name: "multiple where combined with AND",
			build: Select("users").
				Where("id", ">", 10).
				Where("username", "LIKE", "a%"),
			wantSQL:  "SELECT * FROM `users` WHERE `id` > ? AND `username` LIKE ?",
			wantArgs: []any{10, "a%"},
		},
		{
			name: "limit",
			build: Select("users").
				OrderBy("created_at", Desc).
				Limit(5),
			wantSQL:  "SELECT * FROM `users` ORDER BY `created_at` DESC LIMIT ?",
			wantArgs: []any{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.build.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSelectBuilder_RejectsUnknownOperator(t *testing.T) {
	_, _, err := Select("users").Where("id", "; DROP TABLE users; --", 1).Build()
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, "`users`", quoteIdent("users"))
	assert.Equal(t, "`weird``name`", quoteIdent("weird`name"))
}
