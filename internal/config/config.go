package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	S3         S3Config
	Revalidate RevalidateConfig
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	FetchTimeout time.Duration `mapstructure:"fetchtimeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	PoolSize int    `mapstructure:"poolsize"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accesskeyid"`
	SecretAccessKey string `mapstructure:"secretaccesskey"`
	BucketName      string `mapstructure:"bucketname"`
	Region          string `mapstructure:"region"`
	AssetBaseURL    string `mapstructure:"assetbaseurl"`
}

type RevalidateConfig struct {
	BaseURL        string `mapstructure:"baseurl"`
	Secret         string `mapstructure:"secret"`
	WarmingEnabled bool   `mapstructure:"warmingenabled"`
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.fetchtimeout", 10*time.Second)

	viper.SetDefault("database.host", "")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "")
	viper.SetDefault("database.sslmode", "require")
	viper.SetDefault("database.poolsize", 25)

	viper.SetDefault("redis.host", "")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.accesskeyid", "")
	viper.SetDefault("s3.secretaccesskey", "")
	viper.SetDefault("s3.bucketname", "")
	viper.SetDefault("s3.region", "")
	viper.SetDefault("s3.assetbaseurl", "")

	viper.SetDefault("revalidate.baseurl", "")
	viper.SetDefault("revalidate.secret", "")
	viper.SetDefault("revalidate.warmingenabled", false)
}

// Load はconfig.yamlと環境変数から設定を読み込みます。
// 環境変数はREDIS_HOSTのようにセクション名をプレフィックスとして、
// 設定ファイルの値を上書きします。
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の展開に失敗しました: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if c.Database.User == "" {
		missing = append(missing, "database.user")
	}
	if c.Database.DBName == "" {
		missing = append(missing, "database.dbname")
	}
	if c.Redis.Host == "" {
		missing = append(missing, "redis.host")
	}
	if len(missing) > 0 {
		return fmt.Errorf("必須の設定が不足しています: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, SSLMode: %s, PoolSize: %d}",
		c.Host, c.Port, c.User, c.DBName, c.SSLMode, c.PoolSize)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, BucketName: %s, Region: %s, AssetBaseURL: %s}",
		c.Endpoint, c.AccessKeyID, c.BucketName, c.Region, c.AssetBaseURL)
}

func (c RevalidateConfig) String() string {
	return fmt.Sprintf("RevalidateConfig{BaseURL: %s, Secret: ***, WarmingEnabled: %t}",
		c.BaseURL, c.WarmingEnabled)
}
