package cmd

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvBootstrapDebug 非空时启动阶段输出 debug 日志
const EnvBootstrapDebug = "NOTES_DEBUG"

// bootstrapLogger 启动阶段日志器，主日志器按配置创建之前使用
// (config discovery, token issuing, mock-api startup)
var bootstrapLogger = newBootstrapLogger(os.Stderr, os.Getenv(EnvBootstrapDebug) != "")

func newBootstrapLogger(w io.Writer, debug bool) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller()).Named("bootstrap")
}
