package logger

import (
	"go.uber.org/zap"
)

var l *zap.Logger = zap.NewNop()

// Init 初始化全局 logger，dev 模式输出彩色可读日志
func Init(dev bool) error {
	var (
		logger *zap.Logger
		err    error
	)
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	l = logger
	return nil
}

func L() *zap.Logger {
	return l
}

func Sync() {
	_ = l.Sync()
}
