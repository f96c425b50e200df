package request

// RemoveFriendRequest 删除好友请求
// 使用位置:
//   - handler/relationship_handler.go: RemoveFriend
type RemoveFriendRequest struct {
	// FriendId 要删除的好友用户ID
	FriendId string `json:"friend_id" binding:"required"`
}
