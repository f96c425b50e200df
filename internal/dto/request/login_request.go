package request

// LoginRequest 密码登录请求
// 使用位置:
//   - handler/user_handler.go: Login
type LoginRequest struct {
	// Email 邮箱
	Email string `json:"email" binding:"required,email"`
	// Password 明文密码
	Password string `json:"password" binding:"required"`
}
