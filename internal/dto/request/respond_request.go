package request

// RespondRequestRequest 处理（通过/拒绝）好友申请请求
// 使用位置:
//   - handler/relationship_handler.go: RespondRequest
type RespondRequestRequest struct {
	// RequestId 申请记录的UUID
	RequestId string `json:"request_id" binding:"required"`
	// Decision 处理决定，只能是 accepted 或 rejected
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}
