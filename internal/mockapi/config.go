// Package mockapi is a local stand-in for the managed notes backend. It answers
// the listNotes, createNote and deleteNote operations over GraphQL-over-HTTP and
// keeps notes in a gorm database.
package mockapi

// Config mock-api 配置
type Config struct {
	// Listen 监听地址
	Listen string `yaml:"listen" default:":9100"`
	// APIKey 不为空时校验 x-api-key 请求头
	APIKey string `yaml:"api-key"`
	// Database 数据库配置
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Type 数据库类型：sqlite、mysql、postgres
	Type string `yaml:"type" default:"sqlite"`
	// Path SQLite 数据库文件路径
	Path string `yaml:"path" default:"storage/database/mock.sqlite3"`
	// UserName 用户名
	UserName string `yaml:"username"`
	// Password 密码
	Password string `yaml:"password"`
	// Host 主机，mysql 与 postgres 使用 host:port
	Host string `yaml:"host"`
	// Name 数据库名
	Name string `yaml:"name"`
	// TablePrefix 表前缀
	TablePrefix string `yaml:"table-prefix"`
	// Charset 字符集（mysql）
	Charset string `yaml:"charset" default:"utf8mb4"`
	// SSLMode postgres sslmode
	SSLMode string `yaml:"ssl-mode" default:"disable"`
	// MaxIdleConns 最大闲置连接数
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns 最大打开连接数
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
	// ConnMaxLifetime 连接最大生命周期，支持 30m、1h
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
}
