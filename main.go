package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expenses/config"
	"expenses/database"
	"expenses/logger"
	"expenses/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	version         = "v1.0.0"
	shutdownTimeout = 10 * time.Second
)

var (
	configFile  string
	envFile     string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&envFile, "env", ".env", "环境变量文件路径，不存在时忽略")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("记账系统", version)
		return
	}

	if err := run(); err != nil {
		log.Fatalf("启动失败: %v", err)
	}
}

func run() error {
	// .env 中的变量在读取配置前生效，用于 EXPENSES_* 覆盖
	envLoaded := false
	if err := godotenv.Load(envFile); err == nil {
		envLoaded = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("读取环境变量文件 %s 失败: %w", envFile, err)
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	if envLoaded {
		zl.Info("已加载环境变量文件", zap.String("path", envFile))
	}
	cfg.Print(zl)

	store, err := database.OpenExpenseStore(cfg.Database, zl)
	if err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			zl.Error("关闭数据库失败", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router.SetupRouter(cfg, store, zl),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		zl.Info("记账系统已启动", zap.String("api", "http://localhost"+cfg.Server.Port+"/api/v1/"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("服务器启动失败: %w", err)
		}
	case <-ctx.Done():
		zl.Info("收到退出信号，正在关闭服务")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	return srv.Shutdown(shutdownCtx)
}
