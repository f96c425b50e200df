package repository

import (
	"edulink_server/internal/model"

	"gorm.io/gorm"
)

type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository 创建好友申请 Repository
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

// FindByUuid 根据 UUID 查找申请记录
// 软删除的记录查不到
func (r *friendRequestRepository) FindByUuid(uuid string) (*model.FriendRequest, error) {
	var request model.FriendRequest
	if err := r.db.First(&request, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询申请 uuid=%s", uuid)
	}
	return &request, nil
}

// FindByUuidUnscoped 根据 UUID 查找申请记录，包含软删除
// 用于历史记录的直接查询
func (r *friendRequestRepository) FindByUuidUnscoped(uuid string) (*model.FriendRequest, error) {
	var request model.FriendRequest
	if err := r.db.Unscoped().First(&request, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询历史申请 uuid=%s", uuid)
	}
	return &request, nil
}

// FindPendingByPair 查找无序用户对之间的待处理申请
// 双向匹配：不区分谁是发送方
func (r *friendRequestRepository) FindPendingByPair(userOneId, userTwoId string) (*model.FriendRequest, error) {
	var request model.FriendRequest
	if err := r.db.
		Where("status = ?", model.RequestStatusPending).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userOneId, userTwoId, userTwoId, userOneId).
		First(&request).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询待处理申请 pair=(%s,%s)", userOneId, userTwoId)
	}
	return &request, nil
}

// FindPendingBySenderId 查找用户发出的待处理申请，最新的在前
func (r *friendRequestRepository) FindPendingBySenderId(senderId string) ([]model.FriendRequest, error) {
	var requests []model.FriendRequest
	if err := r.db.
		Where("sender_id = ? AND status = ?", senderId, model.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询发出的申请 sender_id=%s", senderId)
	}
	return requests, nil
}

// FindPendingByReceiverId 查找用户收到的待处理申请，最新的在前
func (r *friendRequestRepository) FindPendingByReceiverId(receiverId string) ([]model.FriendRequest, error) {
	var requests []model.FriendRequest
	if err := r.db.
		Where("receiver_id = ? AND status = ?", receiverId, model.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收到的申请 receiver_id=%s", receiverId)
	}
	return requests, nil
}

// Create 创建新的申请记录
func (r *friendRequestRepository) Create(request *model.FriendRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return wrapDBError(err, "创建好友申请")
	}
	return nil
}

// UpdateStatus 更新申请状态
// status: 0=申请中, 1=已通过, 2=已拒绝, 3=已撤回
func (r *friendRequestRepository) UpdateStatus(uuid string, status int8) error {
	if err := r.db.Model(&model.FriendRequest{}).Where("uuid = ?", uuid).
		Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新申请状态 uuid=%s", uuid)
	}
	return nil
}
