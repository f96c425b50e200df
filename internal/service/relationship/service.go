// Package relationship 提供好友关系业务逻辑
// 覆盖好友申请的完整生命周期（发送/查询/处理/撤回）
// 和对称好友关系的建立、查询、解除
package relationship

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"edulink_server/internal/dao/mysql/repository"
	myredis "edulink_server/internal/dao/redis"
	"edulink_server/internal/dto/request"
	"edulink_server/internal/dto/respond"
	"edulink_server/internal/infrastructure/mq"
	"edulink_server/internal/model"
	"edulink_server/pkg/constants"
	"edulink_server/pkg/errorx"
	"edulink_server/pkg/util/random"
)

// 好友集合缓存 key 前缀
// value 为 Redis Set，成员是好友 UUID
const friendRelationKeyPrefix = "friend_relation:user:"

// 用户被禁用状态
const userStatusDisabled int8 = 1

// relationshipService 好友关系业务逻辑实现
// 通过构造函数注入 Repository 依赖
type relationshipService struct {
	repos *repository.Repositories
}

// NewRelationshipService 构造函数
func NewRelationshipService(repos *repository.Repositories) *relationshipService {
	return &relationshipService{repos: repos}
}

// publishEvent 发布好友关系变更事件
// 事件只做下游通知用途，发布失败不影响主流程，记日志即可
func (s *relationshipService) publishEvent(eventType, requestId, actorId, targetId, note string) {
	publisher := mq.GetEventPublisher()
	if publisher == nil {
		return
	}
	event := mq.NewFriendEvent(eventType, requestId, actorId, targetId, note)
	if err := publisher.PublishFriendEvent(event); err != nil {
		zap.L().Warn("publish friend event error",
			zap.String("type", eventType),
			zap.String("actor_id", actorId),
			zap.Error(err))
	}
}

// invalidateFriendCache 异步清理双方的好友集合缓存
func (s *relationshipService) invalidateFriendCache(userIds ...string) {
	ids := make([]string, len(userIds))
	copy(ids, userIds)
	myredis.SubmitCacheTask(func() {
		for _, id := range ids {
			_ = myredis.DelKeyIfExists(friendRelationKeyPrefix + id)
		}
	})
}

// buildRequestRespond 组装单条申请的返回结构
// sender/receiver 任一为 nil 时对应的身份字段留空
func buildRequestRespond(req *model.FriendRequest, sender, receiver *model.UserInfo) *respond.FriendRequestRespond {
	rsp := &respond.FriendRequestRespond{
		RequestId:  req.Uuid,
		SenderId:   req.SenderId,
		ReceiverId: req.ReceiverId,
		Status:     req.Status,
		Note:       req.Note,
		CreatedAt:  req.CreatedAt.Format(time.DateTime),
	}
	if sender != nil {
		rsp.SenderName = sender.Nickname
		rsp.SenderAvatar = sender.Avatar
	}
	if receiver != nil {
		rsp.ReceiverName = receiver.Nickname
		rsp.ReceiverAvatar = receiver.Avatar
	}
	return rsp
}

// loadRequestPair 批量加载申请双方的用户记录
// 一方被删除时返回 nil，不报错，历史记录仍需要可见
func (s *relationshipService) loadRequestPair(req *model.FriendRequest) (sender, receiver *model.UserInfo) {
	users, err := s.repos.User.FindByUuids([]string{req.SenderId, req.ReceiverId})
	if err != nil {
		zap.L().Warn("load request pair error", zap.String("request_id", req.Uuid), zap.Error(err))
		return nil, nil
	}
	for i := range users {
		switch users[i].Uuid {
		case req.SenderId:
			sender = &users[i]
		case req.ReceiverId:
			receiver = &users[i]
		}
	}
	return sender, receiver
}

// SendRequest 发送好友申请
// 前置校验顺序：自我申请 -> 对方存在且可用 -> 已是好友 -> 已有待处理申请
func (s *relationshipService) SendRequest(senderId string, req request.SendFriendRequestRequest) (*respond.FriendRequestRespond, error) {
	// 1. 不允许向自己发申请
	if req.ReceiverId == senderId {
		return nil, errorx.New(errorx.CodeInvalidOperation, "不能添加自己为好友")
	}
	if len([]rune(req.Note)) > constants.NOTE_MAX_LEN {
		return nil, errorx.New(errorx.CodeInvalidParam, "申请附言过长")
	}

	// 2. 校验目标用户是否存在且有效
	receiver, err := s.repos.User.FindByUuid(req.ReceiverId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "该用户不存在")
		}
		zap.L().Error("find receiver error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if receiver.Status == userStatusDisabled {
		return nil, errorx.New(errorx.CodeInvalidParam, "该用户已被禁用")
	}

	// 3. 检查是否已经是好友，防止重复操作
	// 账号在登录后被删除时 token 仍可能有效，这里同样按用户不存在处理
	sender, err := s.repos.User.FindByUuid(senderId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "该用户不存在")
		}
		zap.L().Error("find sender error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if sender.Friends.Contains(req.ReceiverId) {
		return nil, errorx.New(errorx.CodeConflict, "你们已经是好友")
	}

	// 4. 无序用户对之间最多只能有一条待处理申请
	// 不论这条申请是自己发出的还是对方发来的，都视为冲突
	existing, err := s.repos.FriendRequest.FindPendingByPair(senderId, req.ReceiverId)
	if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error("find pending request error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if existing != nil {
		if existing.SenderId == senderId {
			return nil, errorx.New(errorx.CodeConflict, "你已发送过好友申请，请等待对方处理")
		}
		return nil, errorx.New(errorx.CodeConflict, "对方已向你发送好友申请，请直接处理")
	}

	// 5. 创建申请记录
	friendRequest := &model.FriendRequest{
		Uuid:       fmt.Sprintf("R%s", random.GetNowAndLenRandomString(11)),
		SenderId:   senderId,
		ReceiverId: req.ReceiverId,
		Status:     model.RequestStatusPending,
		Note:       req.Note,
	}
	if err := s.repos.FriendRequest.Create(friendRequest); err != nil {
		zap.L().Error("create friend request error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 6. 发布事件，通知服务据此推送给接收方
	s.publishEvent(mq.EventRequestSent, friendRequest.Uuid, senderId, req.ReceiverId, req.Note)

	return buildRequestRespond(friendRequest, sender, receiver), nil
}

// ListRequests 查询待处理申请列表
// direction: sent=我发出的，received=我收到的；均按创建时间倒序
func (s *relationshipService) ListRequests(userId string, direction string) ([]respond.FriendRequestRespond, error) {
	var (
		requests []model.FriendRequest
		err      error
	)
	switch direction {
	case "sent":
		requests, err = s.repos.FriendRequest.FindPendingBySenderId(userId)
	case "received":
		requests, err = s.repos.FriendRequest.FindPendingByReceiverId(userId)
	default:
		return nil, errorx.Newf(errorx.CodeInvalidParam, "不支持的 direction: %s", direction)
	}
	if err != nil {
		zap.L().Error("find pending requests error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(requests) == 0 {
		return []respond.FriendRequestRespond{}, nil
	}

	// 批量取双方用户信息，避免循环内逐条查询
	uuidSet := make(map[string]struct{}, len(requests)*2)
	for _, r := range requests {
		uuidSet[r.SenderId] = struct{}{}
		uuidSet[r.ReceiverId] = struct{}{}
	}
	uuids := make([]string, 0, len(uuidSet))
	for id := range uuidSet {
		uuids = append(uuids, id)
	}
	users, err := s.repos.User.FindByUuids(uuids)
	if err != nil {
		zap.L().Error("batch find users error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	userMap := make(map[string]*model.UserInfo, len(users))
	for i := range users {
		userMap[users[i].Uuid] = &users[i]
	}

	rsp := make([]respond.FriendRequestRespond, 0, len(requests))
	for i := range requests {
		rsp = append(rsp, *buildRequestRespond(&requests[i], userMap[requests[i].SenderId], userMap[requests[i].ReceiverId]))
	}
	return rsp, nil
}

// RespondToRequest 处理好友申请
// 权限校验 -> 终态校验 -> 拒绝直接落状态；通过则在同一事务内
// 更新申请状态并双向写入好友集合，保证对称性不会出现中间态
func (s *relationshipService) RespondToRequest(userId string, req request.RespondRequestRequest) (*respond.FriendRequestRespond, error) {
	// 1. 获取申请记录
	friendRequest, err := s.repos.FriendRequest.FindByUuid(req.RequestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "申请记录不存在")
		}
		zap.L().Error("find friend request error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 2. 只有接收方可以处理申请
	if friendRequest.ReceiverId != userId {
		return nil, errorx.New(errorx.CodeForbidden, "只有申请接收方可以处理该申请")
	}

	// 3. 终态申请不允许二次处理
	if friendRequest.IsTerminal() {
		return nil, errorx.New(errorx.CodeInvalidOperation, "该申请已被处理，不能重复操作")
	}

	// 4. 拒绝：只落申请状态，不触碰好友集合
	if req.Decision == "rejected" {
		if err := s.repos.FriendRequest.UpdateStatus(friendRequest.Uuid, model.RequestStatusRejected); err != nil {
			zap.L().Error("update request status error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		friendRequest.Status = model.RequestStatusRejected
		s.publishEvent(mq.EventRequestRejected, friendRequest.Uuid, userId, friendRequest.SenderId, "")
		sender, receiver := s.loadRequestPair(friendRequest)
		return buildRequestRespond(friendRequest, sender, receiver), nil
	}

	// 5. 通过：事务内完成申请状态更新和双向好友集合写入
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		// 5.1 事务内按固定顺序加行锁，避免并发处理时死锁
		firstId, secondId := friendRequest.SenderId, friendRequest.ReceiverId
		if firstId > secondId {
			firstId, secondId = secondId, firstId
		}
		first, err := txRepos.User.FindByUuidForUpdate(firstId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeUserNotExist, "申请方账号已不存在")
			}
			return err
		}
		second, err := txRepos.User.FindByUuidForUpdate(secondId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeUserNotExist, "申请方账号已不存在")
			}
			return err
		}
		if first.Status == userStatusDisabled || second.Status == userStatusDisabled {
			return errorx.New(errorx.CodeInvalidParam, "对方账号已被禁用")
		}

		// 5.2 加锁后复查申请状态，拦截并发下的二次通过
		locked, err := txRepos.FriendRequest.FindByUuid(friendRequest.Uuid)
		if err != nil {
			return err
		}
		if locked.IsTerminal() {
			return errorx.New(errorx.CodeInvalidOperation, "该申请已被处理，不能重复操作")
		}

		// 5.3 更新申请状态
		if err := txRepos.FriendRequest.UpdateStatus(friendRequest.Uuid, model.RequestStatusAccepted); err != nil {
			return err
		}

		// 5.4 双向写入好友集合，Add 天然幂等
		if err := txRepos.User.UpdateFriends(first.Uuid, first.Friends.Add(second.Uuid)); err != nil {
			return err
		}
		if err := txRepos.User.UpdateFriends(second.Uuid, second.Friends.Add(first.Uuid)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		// 数据库层错误统一对外表现为服务繁忙，业务错误原样返回
		switch errorx.GetCode(err) {
		case errorx.CodeDBError, errorx.CodeServerBusy:
			zap.L().Error("accept friend request error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		default:
			return nil, err
		}
	}
	friendRequest.Status = model.RequestStatusAccepted

	// 6. 异步清理双方好友集合缓存
	s.invalidateFriendCache(friendRequest.SenderId, friendRequest.ReceiverId)

	// 7. 发布事件
	s.publishEvent(mq.EventRequestAccepted, friendRequest.Uuid, userId, friendRequest.SenderId, "")

	sender, receiver := s.loadRequestPair(friendRequest)
	return buildRequestRespond(friendRequest, sender, receiver), nil
}

// CancelRequest 撤回好友申请
// 只有发起方可以撤回，且申请必须仍在待处理状态
func (s *relationshipService) CancelRequest(userId, requestId string) (*respond.FriendRequestRespond, error) {
	// 1. 获取申请记录
	friendRequest, err := s.repos.FriendRequest.FindByUuid(requestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "申请记录不存在")
		}
		zap.L().Error("find friend request error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 2. 只有发起方可以撤回
	if friendRequest.SenderId != userId {
		return nil, errorx.New(errorx.CodeForbidden, "只有申请发起方可以撤回该申请")
	}

	// 3. 终态申请不允许撤回
	if friendRequest.IsTerminal() {
		return nil, errorx.New(errorx.CodeInvalidOperation, "该申请已被处理，不能撤回")
	}

	// 4. 落撤回状态
	if err := s.repos.FriendRequest.UpdateStatus(requestId, model.RequestStatusCancelled); err != nil {
		zap.L().Error("update request status error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	friendRequest.Status = model.RequestStatusCancelled

	// 5. 发布事件
	s.publishEvent(mq.EventRequestCancelled, requestId, userId, friendRequest.ReceiverId, "")

	sender, receiver := s.loadRequestPair(friendRequest)
	return buildRequestRespond(friendRequest, sender, receiver), nil
}

// GetFriendList 获取自己的好友列表
func (s *relationshipService) GetFriendList(userId string) ([]respond.FriendListRespond, error) {
	return s.assembleFriendList(userId)
}

// GetFriendListOf 获取指定用户的好友列表（公开查询）
// 目标用户不存在时返回 NotFound，而不是空列表
func (s *relationshipService) GetFriendListOf(targetId string) ([]respond.FriendListRespond, error) {
	if _, err := s.repos.User.FindByUuid(targetId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "该用户不存在")
		}
		zap.L().Error("find user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.assembleFriendList(targetId)
}

// assembleFriendList 组装好友列表
// 好友ID集合用 Redis Set 缓存（friend_relation:user:<uid>），
// 未命中时回源数据库并写回；用户信息统一从数据库批量获取
func (s *relationshipService) assembleFriendList(userId string) ([]respond.FriendListRespond, error) {
	cacheKey := friendRelationKeyPrefix + userId

	// 1. 先查缓存
	friendIds, err := myredis.SMembers(cacheKey)
	if err != nil || len(friendIds) == 0 {
		// 2. 未命中或为空：回源数据库
		user, dbErr := s.repos.User.FindByUuid(userId)
		if dbErr != nil {
			if errorx.IsNotFound(dbErr) {
				return nil, errorx.New(errorx.CodeUserNotExist, "该用户不存在")
			}
			zap.L().Error("find user error", zap.Error(dbErr))
			return nil, errorx.ErrServerBusy
		}
		friendIds = user.Friends

		// 3. 写回缓存（空集合不缓存）
		if len(friendIds) > 0 {
			members := make([]interface{}, len(friendIds))
			for i, v := range friendIds {
				members[i] = v
			}
			_ = myredis.SAdd(cacheKey, members...)
		}
	}

	if len(friendIds) == 0 {
		return []respond.FriendListRespond{}, nil
	}

	// 4. 批量取好友的用户信息
	users, err := s.repos.User.FindByUuids(friendIds)
	if err != nil {
		zap.L().Error("batch find users error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 5. 组装返回，已被删除的好友账号自然缺席
	rsp := make([]respond.FriendListRespond, 0, len(users))
	for _, u := range users {
		rsp = append(rsp, respond.FriendListRespond{
			UserId:       u.Uuid,
			UserName:     u.Nickname,
			Email:        u.Email,
			Avatar:       u.Avatar,
			Signature:    u.Signature,
			FriendsSince: u.CreatedAt.Format(time.DateTime),
		})
	}
	return rsp, nil
}

// RemoveFriend 删除好友
// 在同一事务内双向移除，事后双方关系状态直接回到 none，
// 之后任一方都可以重新发起申请
func (s *relationshipService) RemoveFriend(userId, friendId string) error {
	// 1. 不允许删除自己
	if friendId == userId {
		return errorx.New(errorx.CodeInvalidOperation, "不能对自己执行该操作")
	}

	// 2. 事务内按固定顺序加行锁后双向移除
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		firstId, secondId := userId, friendId
		if firstId > secondId {
			firstId, secondId = secondId, firstId
		}
		first, err := txRepos.User.FindByUuidForUpdate(firstId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeUserNotExist, "用户不存在")
			}
			return err
		}
		second, err := txRepos.User.FindByUuidForUpdate(secondId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeUserNotExist, "用户不存在")
			}
			return err
		}

		// 以调用方的好友集合为准判断关系是否存在
		caller := first
		if caller.Uuid != userId {
			caller = second
		}
		if !caller.Friends.Contains(friendId) {
			return errorx.New(errorx.CodeNotFound, "对方不是你的好友")
		}

		firstFriends, _ := first.Friends.Remove(second.Uuid)
		secondFriends, _ := second.Friends.Remove(first.Uuid)
		if err := txRepos.User.UpdateFriends(first.Uuid, firstFriends); err != nil {
			return err
		}
		if err := txRepos.User.UpdateFriends(second.Uuid, secondFriends); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		switch errorx.GetCode(err) {
		case errorx.CodeDBError, errorx.CodeServerBusy:
			zap.L().Error("remove friend error", zap.Error(err))
			return errorx.ErrServerBusy
		default:
			return err
		}
	}

	// 3. 异步修正双方好友集合缓存
	// 删除只涉及单个成员，SREM 比整键失效更轻，键不存在时为空操作
	myredis.SubmitCacheTask(func() {
		_ = myredis.SRem(friendRelationKeyPrefix+userId, friendId)
		_ = myredis.SRem(friendRelationKeyPrefix+friendId, userId)
	})

	// 4. 发布事件
	s.publishEvent(mq.EventFriendRemoved, "", userId, friendId, "")
	return nil
}

// CheckStatus 查询与指定用户的关系状态
// 判定顺序：好友 -> 待处理申请 -> 无关系
func (s *relationshipService) CheckStatus(userId, otherId string) (*respond.RelationshipStatusRespond, error) {
	// 1. 与自己没有"关系状态"可言
	if otherId == userId {
		return nil, errorx.New(errorx.CodeInvalidOperation, "不能查询与自己的关系")
	}

	// 2. 对方必须存在
	if _, err := s.repos.User.FindByUuid(otherId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "该用户不存在")
		}
		zap.L().Error("find user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 3. 好友关系优先，缓存命中时直接返回
	// 缓存只做正向判定，未命中仍需回源数据库确认
	if isFriend, cacheErr := myredis.SIsMember(friendRelationKeyPrefix+userId, otherId); cacheErr == nil && isFriend {
		return &respond.RelationshipStatusRespond{Status: respond.RelationshipFriends}, nil
	}
	user, err := s.repos.User.FindByUuid(userId)
	if err != nil {
		zap.L().Error("find user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if user.Friends.Contains(otherId) {
		return &respond.RelationshipStatusRespond{Status: respond.RelationshipFriends}, nil
	}

	// 4. 待处理申请，附带申请详情和方向
	pending, err := s.repos.FriendRequest.FindPendingByPair(userId, otherId)
	if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error("find pending request error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if pending != nil {
		sender, receiver := s.loadRequestPair(pending)
		return &respond.RelationshipStatusRespond{
			Status:   respond.RelationshipPending,
			IsSender: pending.SenderId == userId,
			Request:  buildRequestRespond(pending, sender, receiver),
		}, nil
	}

	// 5. 无关系
	return &respond.RelationshipStatusRespond{Status: respond.RelationshipNone}, nil
}

// GetRequest 查询单条申请记录
// 含已软删除的历史记录，只对申请双方可见
func (s *relationshipService) GetRequest(userId, requestId string) (*respond.FriendRequestRespond, error) {
	friendRequest, err := s.repos.FriendRequest.FindByUuidUnscoped(requestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "申请记录不存在")
		}
		zap.L().Error("find friend request error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if friendRequest.SenderId != userId && friendRequest.ReceiverId != userId {
		return nil, errorx.New(errorx.CodeForbidden, "无权查看该申请")
	}
	sender, receiver := s.loadRequestPair(friendRequest)
	return buildRequestRespond(friendRequest, sender, receiver), nil
}
