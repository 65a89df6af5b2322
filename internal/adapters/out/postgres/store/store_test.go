package store

import (
	"context"
	"errors"
	"testing"

	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type widgetDTO struct {
	Audit
	Name string
}

func (widgetDTO) TableName() string { return "widgets" }

func dryRun(t *testing.T) *Store[widgetDTO, *widgetDTO] {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return New[widgetDTO](db, Entity{Code: "widget", Name: "Widget"})
}

func renderedSQL(t *testing.T, s *Store[widgetDTO, *widgetDTO], spec query.Spec) string {
	t.Helper()

	var rows []widgetDTO
	stmt := s.read(context.Background(), spec).Find(&rows).Statement
	return stmt.SQL.String()
}

func TestRead_LocksUnlessReadOnly(t *testing.T) {
	s := dryRun(t)
	spec := query.New(query.Eq("name", "a")).OrderBy("id", query.Desc)

	locked := renderedSQL(t, s, spec)
	assert.Contains(t, locked, `WHERE "name" = $1`)
	assert.Contains(t, locked, `ORDER BY "id" DESC`)
	assert.Contains(t, locked, "FOR UPDATE")

	plain := renderedSQL(t, s, spec.AsReadOnly())
	assert.NotContains(t, plain, "FOR UPDATE")
}

func TestRead_Operators(t *testing.T) {
	s := dryRun(t)

	tests := []struct {
		name string
		cond query.Condition
		want string
	}{
		{"ne", query.Ne("name", "a"), `"name" <> $1`},
		{"gt", query.Gt("id", 1), `"id" > $1`},
		{"lte", query.Lte("id", 1), `"id" <= $1`},
		{"in", query.In("id", []int64{1, 2, 3}), `"id" IN ($1,$2,$3)`},
		{"is null", query.IsNull("name"), `"name" IS NULL`},
		{"not null", query.NotNull("name"), `"name" IS NOT NULL`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderedSQL(t, s, query.New(tt.cond).AsReadOnly())
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestValues(t *testing.T) {
	assert.Nil(t, values(nil))
	assert.Equal(t, []any{int64(1), int64(2)}, values([]int64{1, 2}))
	assert.Equal(t, []any{"a", "b"}, values([2]string{"a", "b"}))
	assert.Equal(t, []any{7}, values(7))
}

func TestTranslate(t *testing.T) {
	s := dryRun(t)

	tests := []struct {
		name     string
		err      error
		deleting bool
		wantCode string
		wantKind errs.Kind
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, false, "widget.ADD_ERROR", errs.KindConflict},
		{"foreign key on delete", &pgconn.PgError{Code: "23503"}, true, "widget.DELETE_ERROR", errs.KindConflict},
		{"foreign key on write", &pgconn.PgError{Code: "23503"}, false, "widget.UPDATE_ERROR", errs.KindConflict},
		{"check violation", &pgconn.PgError{Code: "23514"}, false, "widget.UPDATE_ERROR", errs.KindConflict},
		{"not a postgres error", errors.New("connection reset"), false, errs.CodeInternal, errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.translate(tt.err, tt.deleting)

			described, _ := errs.Describe(err)
			assert.Equal(t, tt.wantCode, described.Code)
			assert.Equal(t, tt.wantKind, described.Kind)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDelete_RefusesUnconditionalSpec(t *testing.T) {
	s := dryRun(t)

	err := s.Delete(context.Background(), query.All())

	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestStamp_IsUTCMicroseconds(t *testing.T) {
	s := dryRun(t)

	got := s.Stamp()

	assert.Equal(t, "UTC", got.Location().String())
	assert.Zero(t, got.Nanosecond()%1000)
}
