package respond

// 两用户间关系状态的取值
const (
	RelationshipNone    = "none"
	RelationshipPending = "pending"
	RelationshipFriends = "friends"
)

// RelationshipStatusRespond 关系状态查询的返回结构
// Status 为 pending 时附带申请详情及方向
type RelationshipStatusRespond struct {
	Status string `json:"status"`
	// IsSender 待处理申请是否由查询者发出
	IsSender bool                  `json:"is_sender,omitempty"`
	Request  *FriendRequestRespond `json:"request,omitempty"`
}
