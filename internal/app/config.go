// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/haierkeys/notes-app-service/internal/mockapi"
	"github.com/haierkeys/notes-app-service/pkg/graphql"
	"github.com/haierkeys/notes-app-service/pkg/storage"
	"github.com/haierkeys/notes-app-service/pkg/util"
	"github.com/haierkeys/notes-app-service/pkg/workerpool"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultAuthTokenKey is the placeholder secret shipped in the default config.
const DefaultAuthTokenKey = "notes-app-Auth-Token"

// AppConfig 应用配置
type AppConfig struct {
	File     string         `yaml:"-"` // 配置文件路径，不序列化
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	GraphQL  graphql.Config `yaml:"graphql"`
	Storage  storage.Config `yaml:"storage"`
	App      AppSettings    `yaml:"app"`
	Security SecurityConfig `yaml:"security"`
	Tracer   TracerConfig   `yaml:"tracer"`
	MockAPI  mockapi.Config `yaml:"mock-api"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"warn"`
	// File 日志文件路径，为空时输出到 stderr
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址，为空时不启动
	PrivateHttpListen string `yaml:"private-http-listen" default:":9001"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AuthTokenKey string `yaml:"auth-token-key" default:"notes-app-Auth-Token"`
	TokenExpiry  string `yaml:"token-expiry" default:"7d"` // Token 过期时间，支持格式：7d（天）、24h（小时）、30m（分钟）
	// CorsAllowOrigins 为空时允许任意来源
	CorsAllowOrigins []string `yaml:"cors-allow-origins"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DefaultContextTimeout 默认上下文超时时间（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// SessionIdleTime 页面会话闲置多久后回收
	SessionIdleTime string `yaml:"session-idle-time" default:"2h"`
	// SessionSweepSpec 会话回收任务的 cron 表达式
	SessionSweepSpec string `yaml:"session-sweep-spec" default:"@every 10m"`
	// VersionCheckURL 最新版本查询地址，为空时不检查
	VersionCheckURL string `yaml:"version-check-url" default:"https://img.shields.io/github/v/release/haierkeys/notes-app-service.json"`
	// VersionCheckInterval 版本检查间隔
	VersionCheckInterval string `yaml:"version-check-interval" default:"30m"`

	// Worker Pool 配置
	WorkerPool workerpool.Config `yaml:"worker-pool"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// NewDefaultConfig 返回全部字段取默认值的配置
func NewDefaultConfig() (*AppConfig, error) {
	c := new(AppConfig)
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "set default config failed")
	}
	return c, nil
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
// A .env file next to the config file (or in the working directory) is
// loaded first, and NOTES_* variables override the file.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c, err := NewDefaultConfig()
	if err != nil {
		return nil, realpath, err
	}
	c.File = realpath

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	// defaults.Set 只有在字段为该类型的零值时才会填充
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	if err := LoadDotEnv(filepath.Join(filepath.Dir(realpath), ".env"), ".env"); err != nil {
		return nil, realpath, err
	}
	c.ApplyEnv(os.LookupEnv)

	return c, realpath, nil
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetWorkerPoolConfig 获取 Worker Pool 配置
func (c *AppConfig) GetWorkerPoolConfig() workerpool.Config {
	cfg := workerpool.DefaultConfig()

	if c.App.WorkerPool.MaxWorkers > 0 {
		cfg.MaxWorkers = c.App.WorkerPool.MaxWorkers
	}
	if c.App.WorkerPool.QueueSize > 0 {
		cfg.QueueSize = c.App.WorkerPool.QueueSize
	}
	if c.App.WorkerPool.WarningPercent > 0 {
		cfg.WarningPercent = c.App.WorkerPool.WarningPercent
	}

	return cfg
}

// GetTokenExpiry 获取 Token 过期时间
func (c *AppConfig) GetTokenExpiry() time.Duration {
	return util.ParseDurationOr(c.Security.TokenExpiry, 7*24*time.Hour)
}

// GetSessionIdleTime 获取会话闲置回收时间
func (c *AppConfig) GetSessionIdleTime() time.Duration {
	return util.ParseDurationOr(c.App.SessionIdleTime, 2*time.Hour)
}

// GetVersionCheckInterval 获取版本检查间隔
func (c *AppConfig) GetVersionCheckInterval() time.Duration {
	return util.ParseDurationOr(c.App.VersionCheckInterval, 30*time.Minute)
}

// GetContextTimeout 获取请求上下文超时
func (c *AppConfig) GetContextTimeout() time.Duration {
	return time.Duration(c.App.DefaultContextTimeout) * time.Second
}

// IsDefaultSecret 是否仍在使用默认密钥
func (c *AppConfig) IsDefaultSecret() bool {
	return c.Security.AuthTokenKey == "" || c.Security.AuthTokenKey == DefaultAuthTokenKey
}
