// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "modernc.org/sqlite"
)

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() run %d error = %v", i+1, err)
		}
	}

	for _, table := range []string{"submission", "result_set", "admin_session"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestCreateSchemaError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS submission").WillReturnError(errors.New("disk full"))

	if err := CreateSchema(conn); err == nil {
		t.Error("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDriverName(t *testing.T) {
	tests := []struct {
		dbType  string
		want    string
		wantErr bool
	}{
		{"sqlite", "sqlite", false},
		{"postgres", "postgres", false},
		{"mysql", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := DriverName(tt.dbType)
		if (err != nil) != tt.wantErr {
			t.Errorf("DriverName(%q) error = %v, wantErr %v", tt.dbType, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("DriverName(%q) = %q, want %q", tt.dbType, got, tt.want)
		}
	}
}

func TestOpenUnsupported(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("expected error for unsupported type")
	}
}
