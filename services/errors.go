package services

import (
	"errors"
)

// 业务错误分类，controller 依赖 errors.Is 映射成 HTTP 状态码
var (
	// ErrValidation 参数缺失或不合法
	ErrValidation = errors.New("validation failed")
	// ErrInvalidState 当前状态不允许该流转
	ErrInvalidState = errors.New("invalid state transition")
	// ErrNotFound 目标酒店不存在
	ErrNotFound = errors.New("not found")
	// ErrForbidden 操作他人资源
	ErrForbidden = errors.New("forbidden")
)
