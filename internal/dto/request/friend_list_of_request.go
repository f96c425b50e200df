package request

// FriendListOfRequest 查询指定用户好友列表请求（公开接口）
// 使用位置:
//   - handler/relationship_handler.go: GetFriendListOf
type FriendListOfRequest struct {
	// UserId 目标用户ID
	UserId string `form:"user_id" binding:"required"`
}
