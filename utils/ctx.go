package utils

import "github.com/gin-gonic/gin"

// CurrentUserID 取 AuthMiddleware 写入的当前用户 ID，未认证时为 0。
// JWT claims 解析出来可能是 float64，统一收敛成 uint
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	}
	return 0
}

// CurrentRole 当前请求的角色（merchant / admin），未认证时为空串
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
