package logger

import (
	"fmt"

	"expenses/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// New 根据配置创建日志实例，dev 使用控制台格式，prod 使用 JSON 格式
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	switch cfg.Env {
	case "", EnvDev:
		zcfg = zap.NewDevelopmentConfig()
	case EnvProd:
		zcfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("未知的日志环境: %s", cfg.Env)
	}

	if cfg.Level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zcfg.Build()
}
