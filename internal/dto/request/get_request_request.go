package request

// GetRequestRequest 查询单条申请记录请求（含历史终态记录）
// 使用位置:
//   - handler/relationship_handler.go: GetRequest
type GetRequestRequest struct {
	// RequestId 申请记录的UUID
	RequestId string `form:"request_id" binding:"required"`
}
