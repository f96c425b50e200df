package respond

// FriendRequestRespond 单条好友申请的返回结构
// 含双方身份摘要，前端可直接渲染，无需二次查询
type FriendRequestRespond struct {
	RequestId      string `json:"request_id"`
	SenderId       string `json:"sender_id"`
	SenderName     string `json:"sender_name"`
	SenderAvatar   string `json:"sender_avatar"`
	ReceiverId     string `json:"receiver_id"`
	ReceiverName   string `json:"receiver_name"`
	ReceiverAvatar string `json:"receiver_avatar"`
	// Status 0-待处理 1-已通过 2-已拒绝 3-已撤回
	Status    int8   `json:"status"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}
