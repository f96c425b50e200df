package request

// UpdateUserInfoRequest 更新用户资料请求
// 调用者身份取自 JWT 上下文，不在请求体中出现
// 使用位置:
//   - handler/user_handler.go: UpdateUserInfo
type UpdateUserInfoRequest struct {
	// Nickname 昵称
	Nickname string `json:"nickname" binding:"max=20"`
	// Avatar 头像URL
	Avatar string `json:"avatar"`
	// Signature 个性签名
	Signature string `json:"signature" binding:"max=100"`
	// Telephone 手机号
	Telephone string `json:"telephone"`
}
