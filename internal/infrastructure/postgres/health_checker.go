package postgres

import (
	"context"
	"fmt"
)

// Pinger は接続プールのうち疎通確認に必要な操作のみを切り出したインターフェース
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresHealthChecker は真実の情報源であるデータベースへの疎通を確認します。
// ここが落ちている場合はキャッシュミス時のフェッチが成立しないため、
// サービスはreadyになりません。
type PostgresHealthChecker struct {
	pool Pinger
}

func NewPostgresHealthChecker(pool Pinger) *PostgresHealthChecker {
	return &PostgresHealthChecker{
		pool: pool,
	}
}

func (c *PostgresHealthChecker) Name() string {
	return "postgres"
}

func (c *PostgresHealthChecker) Check(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgresへの疎通確認に失敗しました: %w", err)
	}
	return nil
}
