// Package dao 实现数据访问层：GraphQL 笔记仓储与对象存储图片仓储
package dao

import (
	"github.com/haierkeys/notes-app-service/pkg/graphql"
	"github.com/haierkeys/notes-app-service/pkg/storage"

	"go.uber.org/zap"
)

// Dao 持有远程后端的两个网关
type Dao struct {
	GraphQL *graphql.Client
	Storage storage.Storager
	logger  *zap.Logger
}

// Option 配置选项函数类型
type Option func(*Dao)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = logger
	}
}

// New 创建 Dao，storage 为 nil 时图片相关操作返回 ErrorStorageNotConfigured
func New(gql *graphql.Client, store storage.Storager, opts ...Option) *Dao {
	d := &Dao{
		GraphQL: gql,
		Storage: store,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Logger 返回日志器
func (d *Dao) Logger() *zap.Logger {
	return d.logger
}
