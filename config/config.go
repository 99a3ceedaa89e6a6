package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`

	// Sources 已合并的外部配置文件，供启动日志输出
	Sources []string `mapstructure:"-"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	LogLevel     string `mapstructure:"log_level"`
	AutoCreate   bool   `mapstructure:"auto_create"`
}

// LogConfig 日志配置
type LogConfig struct {
	Env   string `mapstructure:"env"`
	Level string `mapstructure:"level"`
}

// AppConfig 业务配置
type AppConfig struct {
	Categories []string `mapstructure:"categories"`
}

const (
	envPrefix      = "EXPENSES"
	releaseMode    = "release"
	defaultTimeout = 30 * time.Second
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径，为空时按默认路径查找 config.yaml
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	var sources []string
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
		}
		sources = append(sources, configPath)
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/expenses")
		externalViper.AddConfigPath("$HOME/.expenses")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("合并外部配置失败: %w", err)
			}
			sources = append(sources, externalViper.ConfigFileUsed())
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.Sources = sources

	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = defaultTimeout
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = defaultTimeout
	}
	if !strings.HasPrefix(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	return &cfg, nil
}

// IsRelease 是否为生产模式
func (s ServerConfig) IsRelease() bool {
	return s.Mode == releaseMode
}

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情
func (s ServerConfig) SafeErrorMessage(err error, fallback string) string {
	if err == nil || s.IsRelease() {
		return fallback
	}
	return err.Error()
}

// Print 打印当前配置（隐藏敏感信息）
func (c *Config) Print(log *zap.Logger) {
	for _, src := range c.Sources {
		log.Info("已合并外部配置文件", zap.String("path", src))
	}
	log.Info("当前配置",
		zap.String("port", c.Server.Port),
		zap.String("mode", c.Server.Mode),
		zap.String("driver", c.Database.Driver),
		zap.String("database", fmt.Sprintf("%s@%s:%s/%s",
			c.Database.Username, c.Database.Host, c.Database.Port, c.Database.DBName)),
		zap.Strings("categories", c.App.Categories),
	)
}
