package request

// CheckStatusRequest 查询与指定用户的关系状态请求
// 使用位置:
//   - handler/relationship_handler.go: CheckStatus
type CheckStatusRequest struct {
	// UserId 对方用户ID
	UserId string `form:"user_id" binding:"required"`
}
