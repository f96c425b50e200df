package request

// ListRequestsRequest 查询待处理申请列表请求
// 使用位置:
//   - handler/relationship_handler.go: ListRequests
type ListRequestsRequest struct {
	// Direction 查询方向：sent=我发出的，received=我收到的
	Direction string `form:"direction" binding:"required,oneof=sent received"`
}
