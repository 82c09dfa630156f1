//go:build e2e

// Package e2e はE2Eテストで使用するヘルパー関数を提供します
package e2e

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
)

var (
	// setupOnce はE2E環境セットアップを一度だけ実行するためのSync.Once
	setupOnce sync.Once
	setupErr  error
)

// E2Eテスト用の固定フィクスチャ。スラッグはe2e-プレフィックスで分離し、
// テスト終了時にまとめて削除します。
const (
	testCategoryID   = "c0a80101-1111-4222-8333-444455556666"
	testCategorySlug = "e2e-dairy"
	testProductID    = "7b1c3f7e-9a2d-4e6b-8c1f-2d3e4f5a6b7c"
	testProductSlug  = "e2e-fresh-milk"
	testProduct2ID   = "8c2d4f8e-0b3e-4f7c-9d2e-3e4f5a6b7c8d"
	testProduct2Slug = "e2e-aged-cheese"
)

// TestMain はE2Eテストパッケージ全体の初期化とクリーンアップを行います
func TestMain(m *testing.M) {
	if err := SetupE2EEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のセットアップに失敗しました: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := TeardownE2EEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のクリーンアップに失敗しました: %v\n", err)
	}

	os.Exit(code)
}

// SetupE2EEnvironment はE2Eテスト環境をセットアップします
// sync.Onceにより、複数回呼び出されても実際のセットアップは一度だけ実行されます
func SetupE2EEnvironment() error {
	setupOnce.Do(func() {
		setupErr = seedTestCatalog()
	})
	return setupErr
}

func openDB() (*sql.DB, error) {
	dbHost := getEnvOrDefault("DATABASE_HOST", "localhost")
	dbPort := getEnvOrDefault("DATABASE_PORT", "5432")
	dbUser := getEnvOrDefault("DATABASE_USER", "storefront")
	dbPassword := getEnvOrDefault("DATABASE_PASSWORD", "storefront_dev_password")
	dbName := getEnvOrDefault("DATABASE_DBNAME", "storefront")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗しました: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("データベースへの接続確認に失敗しました: %w", err)
	}

	return db, nil
}

// seedTestCatalog はテスト用のカテゴリと商品をDBに登録します
func seedTestCatalog() error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	_, err = db.Exec(
		`INSERT INTO categories (id, name, slug, description, image_key, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, '', '', TRUE, NOW(), NOW())
		 ON CONFLICT (id) DO NOTHING`,
		testCategoryID, "E2E乳製品", testCategorySlug,
	)
	if err != nil {
		return fmt.Errorf("テスト用カテゴリの登録に失敗しました: %w", err)
	}

	products := []struct {
		id           string
		name         string
		slug         string
		price        int64
		discount     int64
		isBestSeller bool
	}{
		{testProductID, "E2Eフレッシュミルク", testProductSlug, 500, 400, true},
		{testProduct2ID, "E2E熟成チーズ", testProduct2Slug, 1200, 0, false},
	}
	for _, p := range products {
		_, err := db.Exec(
			`INSERT INTO products (id, name, slug, description, price, discount_price, image_key, category_id, is_best_seller, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, '', $4, $5, '', $6, $7, TRUE, NOW(), NOW())
			 ON CONFLICT (id) DO NOTHING`,
			p.id, p.name, p.slug, p.price, p.discount, testCategoryID, p.isBestSeller,
		)
		if err != nil {
			return fmt.Errorf("テスト用商品 %s の登録に失敗しました: %w", p.slug, err)
		}
	}

	return nil
}

// TeardownE2EEnvironment はテストが登録したレコードを削除します
func TeardownE2EEnvironment() error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(`DELETE FROM products WHERE slug LIKE 'e2e-%'`); err != nil {
		return fmt.Errorf("テスト用商品の削除に失敗しました: %w", err)
	}
	if _, err := db.Exec(`DELETE FROM categories WHERE slug LIKE 'e2e-%'`); err != nil {
		return fmt.Errorf("テスト用カテゴリの削除に失敗しました: %w", err)
	}

	return nil
}

// getEnvOrDefault は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBaseEndpoint はE2Eテスト対象のベースエンドポイントを返します
// 環境変数 E2E_TEST_ENDPOINT が設定されている場合はその値を使用し、
// 設定されていない場合は http://localhost:8080 をデフォルトとして返します
func GetBaseEndpoint() string {
	return getEnvOrDefault("E2E_TEST_ENDPOINT", "http://localhost:8080")
}

// WaitForService は指定されたURLのサービスが利用可能になるまで待機します
func WaitForService(url string, timeout time.Duration) error {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	deadline := time.Now().Add(timeout)

	checkService := func() bool {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 500 {
				return true
			}
		}
		return false
	}

	if checkService() {
		return nil
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		if time.Now().After(deadline) {
			return fmt.Errorf("サービスの起動を待機中にタイムアウトしました: %s", url)
		}

		<-ticker.C
		if checkService() {
			return nil
		}
	}
}
