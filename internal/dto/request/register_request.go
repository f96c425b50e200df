package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - handler/user_handler.go: Register
type RegisterRequest struct {
	// Nickname 昵称
	Nickname string `json:"nickname" binding:"required,max=20"`
	// Email 邮箱，登录凭证
	Email string `json:"email" binding:"required,email"`
	// Password 明文密码，存储前经 bcrypt 加密
	Password string `json:"password" binding:"required,min=6,max=64"`
	// Telephone 手机号，可选
	Telephone string `json:"telephone"`
	// Avatar 头像URL，可选
	Avatar string `json:"avatar"`
}
