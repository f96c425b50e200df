package respond

// FriendListRespond 好友列表中的单个好友
type FriendListRespond struct {
	UserId   string `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	// Signature 个性签名，列表页直接展示
	Signature string `json:"signature"`
	// FriendsSince 取好友账号的注册时间作为近似值
	// 关系建立时间没有单独落库
	FriendsSince string `json:"friends_since"`
}
