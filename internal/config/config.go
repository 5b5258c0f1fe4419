// Package config 提供应用配置。配置来源为环境变量，
// 启动时会尝试加载当前目录的 .env 文件（不存在则忽略）。
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	DockerBinary      string        // docker 可执行文件路径
	DefaultShell      string        // 交互式 shell 的默认程序
	DefaultSortColumn string        // 列表默认排序列
	SortDescending    bool          // 默认是否降序
	ShowAll           bool          // 是否默认显示已停止的容器
	DefaultFilters    []string      // 列表默认过滤条件，如 status=running
	CommandTimeout    time.Duration // 同步命令超时时间
}

// Load 加载配置，未设置的项取默认值
func Load() *Config {
	// .env 不存在时静默跳过
	_ = godotenv.Load()

	cfg := &Config{
		DockerBinary:      getEnv("DOCKTAB_DOCKER_BIN", "docker"),
		DefaultShell:      getEnv("DOCKTAB_SHELL", "/bin/sh"),
		DefaultSortColumn: getEnv("DOCKTAB_SORT_COLUMN", "image"),
		SortDescending:    getBoolEnv("DOCKTAB_SORT_DESC", false),
		ShowAll:           getBoolEnv("DOCKTAB_SHOW_ALL", true),
		CommandTimeout:    getDurationEnv("DOCKTAB_TIMEOUT", 10*time.Second),
	}

	if raw := os.Getenv("DOCKTAB_FILTERS"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				cfg.DefaultFilters = append(cfg.DefaultFilters, f)
			}
		}
	}

	return cfg
}

// getEnv 获取环境变量，未设置时返回默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv 获取布尔环境变量
func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getDurationEnv 获取时长环境变量，支持 "30s" 这类格式
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
