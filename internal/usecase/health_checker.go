//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_health_checker.go -package=usecase
package usecase

import (
	"context"
)

// HealthChecker はバックエンド1つ分の疎通確認を表します。
// readinessユースケースがpostgres・redis・s3の各実装へファンアウトします。
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
