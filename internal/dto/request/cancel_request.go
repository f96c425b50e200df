package request

// CancelRequestRequest 撤回好友申请请求
// 使用位置:
//   - handler/relationship_handler.go: CancelRequest
type CancelRequestRequest struct {
	// RequestId 申请记录的UUID
	RequestId string `json:"request_id" binding:"required"`
}
