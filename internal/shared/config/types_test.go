package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name       string
		cfg        DatabaseConfig
		wantDriver string
		wantDSN    string
	}{
		{
			name:       "default sqlite file",
			cfg:        DatabaseConfig{},
			wantDriver: DriverSQLite,
			wantDSN:    "helpdesk.db?_foreign_keys=on&_busy_timeout=5000",
		},
		{
			name:       "sqlite path with query",
			cfg:        DatabaseConfig{Driver: "SQLite", Path: "file:data.db?cache=shared"},
			wantDriver: DriverSQLite,
			wantDSN:    "file:data.db?cache=shared&_foreign_keys=on&_busy_timeout=5000",
		},
		{
			name:       "mysql",
			cfg:        DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Username: "u", Password: "p", Database: "helpdesk"},
			wantDriver: DriverMySQL,
			wantDSN:    "u:p@tcp(db:3306)/helpdesk?charset=utf8mb4&parseTime=True&loc=UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDriver, tt.cfg.DriverName())
			assert.Equal(t, tt.wantDSN, tt.cfg.GetDSN())
		})
	}
}
