package repository

import (
	"edulink_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUuid 按 UUID 查找用户
func (r *userRepository) FindByUuid(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByUuidForUpdate 按 UUID 查找用户并加 FOR UPDATE 行锁
// 在事务内调用时，并发的好友集合读改写会在存储层串行化
func (r *userRepository) FindByUuidForUpdate(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "锁定查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByEmail 按邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 email=%s", email)
	}
	return &user, nil
}

// FindByUuids 按 UUID 列表查找用户
func (r *userRepository) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	if len(uuids) == 0 {
		return []model.UserInfo{}, nil
	}
	var users []model.UserInfo
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "批量查询用户")
	}
	return users, nil
}

// Create 创建用户
func (r *userRepository) Create(user *model.UserInfo) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// Update 更新用户信息
func (r *userRepository) Update(user *model.UserInfo) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBError(err, "更新用户信息")
	}
	return nil
}

// UpdateFriends 只更新好友集合字段
// 调用方负责在事务内先通过 FindByUuidForUpdate 取得最新集合
func (r *userRepository) UpdateFriends(uuid string, friends model.FriendSet) error {
	if friends == nil {
		friends = model.FriendSet{}
	}
	if err := r.db.Model(&model.UserInfo{}).Where("uuid = ?", uuid).
		Update("friends", friends).Error; err != nil {
		return wrapDBErrorf(err, "更新好友集合 uuid=%s", uuid)
	}
	return nil
}
