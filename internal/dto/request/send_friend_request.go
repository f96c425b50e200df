package request

// SendFriendRequestRequest 发送好友申请请求
// 使用位置:
//   - handler/relationship_handler.go: SendRequest
type SendFriendRequestRequest struct {
	// ReceiverId 被申请添加的用户ID
	ReceiverId string `json:"receiver_id" binding:"required"`
	// Note 申请附言，可为空
	Note string `json:"note" binding:"max=100"`
}
