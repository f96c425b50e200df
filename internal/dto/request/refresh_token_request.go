package request

// RefreshTokenRequest 刷新 Access Token 请求
// 使用位置:
//   - handler/auth_handler.go: RefreshToken
type RefreshTokenRequest struct {
	// RefreshToken 登录时下发的 Refresh Token
	RefreshToken string `json:"refresh_token" binding:"required"`
}
