package postgres

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// プール調整値。読み取りはほぼキャッシュで吸収されるため、
// プールはミス時のフェッチと管理系ミューテーションを捌ける規模で十分です。
const (
	defaultPoolSize   = 25
	connectTimeout    = 10 * time.Second
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 30 * time.Minute
	healthCheckPeriod = time.Minute
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
	SSLMode  string
	CAFile   string
}

func NewPostgresConnection(cfg PostgresConfig) (*pgxpool.Pool, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("ポート番号が不正です: %d (0-65535の範囲で指定してください)", cfg.Port)
	}

	if cfg.PoolSize <= 0 {
		cfg.PoolSize = defaultPoolSize
	}

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	config, err := pgxpool.ParseConfig("")
	if err != nil {
		return nil, fmt.Errorf("接続設定の初期化に失敗しました: %w", err)
	}

	config.ConnConfig.Host = cfg.Host
	config.ConnConfig.Port = uint16(cfg.Port)
	config.ConnConfig.User = cfg.User
	config.ConnConfig.Password = cfg.Password
	config.ConnConfig.Database = cfg.Database
	config.MaxConns = int32(cfg.PoolSize)

	tlsConfig, err := resolveTLSConfig(sslMode, cfg.Host, cfg.CAFile)
	if err != nil {
		return nil, err
	}
	config.ConnConfig.TLSConfig = tlsConfig

	config.MaxConnLifetime = maxConnLifetime
	config.MaxConnIdleTime = maxConnIdleTime
	config.HealthCheckPeriod = healthCheckPeriod

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("接続プールの作成に失敗しました: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("データベースへの接続確認に失敗しました: %w", err)
	}

	return pool, nil
}

func resolveTLSConfig(sslMode, host, caFile string) (*tls.Config, error) {
	switch sslMode {
	case "disable":
		return nil, nil
	case "require":
		return &tls.Config{
			InsecureSkipVerify: true,
		}, nil
	case "verify-ca":
		return tlsConfigWithCA(caFile)
	case "verify-full":
		tlsConfig, err := tlsConfigWithCA(caFile)
		if err != nil {
			return nil, err
		}
		tlsConfig.ServerName = host
		return tlsConfig, nil
	}
	return nil, fmt.Errorf("未知のsslModeです: %s", sslMode)
}

func tlsConfigWithCA(caFile string) (*tls.Config, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("CAファイルの読み取りに失敗しました: %w", err)
	}

	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("CA証明書のパースに失敗しました")
	}

	return &tls.Config{
		RootCAs:            certPool,
		InsecureSkipVerify: false,
	}, nil
}
