package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/na2na-p/storefront/internal/infrastructure/postgres"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error {
	return s.err
}

// TestPostgresHealthChecker_Check はヘルスチェックのテーブルドリブンテスト
func TestPostgresHealthChecker_Check(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		wantErr bool
	}{
		{
			name:    "正常系: Pingに成功",
			pingErr: nil,
			wantErr: false,
		},
		{
			name:    "異常系: Pingに失敗",
			pingErr: errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := postgres.NewPostgresHealthChecker(&stubPinger{err: tt.pingErr})

			if got := checker.Name(); got != "postgres" {
				t.Errorf("Name() = %v, want postgres", got)
			}

			err := checker.Check(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
