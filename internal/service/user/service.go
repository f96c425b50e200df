// Package user 提供用户目录业务逻辑
// 处理注册、登录、资料管理和好友搜索
package user

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"edulink_server/internal/dao/mysql/repository"
	myredis "edulink_server/internal/dao/redis"
	"edulink_server/internal/dto/request"
	"edulink_server/internal/dto/respond"
	"edulink_server/internal/model"
	"edulink_server/pkg/constants"
	"edulink_server/pkg/errorx"
	"edulink_server/pkg/util/jwt"
	"edulink_server/pkg/util/random"
)

// 默认头像，注册时未传 avatar 则使用
const defaultAvatar = "/static/avatars/default.png"

// userInfoService 用户业务逻辑实现
// 通过构造函数注入 Repository 依赖
type userInfoService struct {
	repos *repository.Repositories
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories) *userInfoService {
	return &userInfoService{repos: repos}
}

// checkEmailExist 检查邮箱是否已被注册
func (u *userInfoService) checkEmailExist(email string) error {
	_, err := u.repos.User.FindByEmail(email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return errorx.New(errorx.CodeUserExist, "该邮箱已被注册")
}

// Register 注册
func (u *userInfoService) Register(registerReq request.RegisterRequest) (*respond.RegisterRespond, error) {
	// 1. 判断邮箱是否已经被注册过了
	if err := u.checkEmailExist(registerReq.Email); err != nil {
		return nil, err
	}

	// 2. 创建用户，密码由 BeforeSave Hook 加密
	var newUser model.UserInfo
	newUser.Uuid = fmt.Sprintf("U%s", random.GetNowAndLenRandomString(11))
	newUser.Email = registerReq.Email
	newUser.RawPassword = registerReq.Password
	newUser.Nickname = registerReq.Nickname
	newUser.Telephone = registerReq.Telephone
	newUser.Avatar = registerReq.Avatar
	if newUser.Avatar == "" {
		newUser.Avatar = defaultAvatar
	}
	newUser.Friends = model.FriendSet{}
	newUser.Status = 0

	if err := u.repos.User.Create(&newUser); err != nil {
		zap.L().Error("create user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.RegisterRespond{
		Uuid:     newUser.Uuid,
		Nickname: newUser.Nickname,
		Email:    newUser.Email,
		Avatar:   newUser.Avatar,
	}, nil
}

// Login 登录
func (u *userInfoService) Login(loginReq request.LoginRequest) (*respond.LoginRespond, error) {
	// 1. 根据邮箱定位用户
	user, err := u.repos.User.FindByEmail(loginReq.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在，请注册")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 2. 校验密码
	if !user.CheckPassword(loginReq.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "密码不正确，请重试")
	}

	// 3. 生成双 Token
	accessToken, err := jwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.Uuid)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 4. 将 Refresh Token ID 存入 Redis，实现单点互踢
	redisKey := "user_token:" + user.Uuid
	if err := myredis.SetKeyEx(redisKey, tokenID, time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS)*time.Hour); err != nil {
		zap.L().Error("存储 Token ID 到 Redis 失败", zap.Error(err))
	}

	loginRsp := &respond.LoginRespond{
		Uuid:         user.Uuid,
		Nickname:     user.Nickname,
		Email:        user.Email,
		Avatar:       user.Avatar,
		Signature:    user.Signature,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	year, month, day := user.CreatedAt.Date()
	loginRsp.CreatedAt = fmt.Sprintf("%d.%d.%d", year, month, day)

	return loginRsp, nil
}

// GetUserInfo 获取单个用户信息
func (u *userInfoService) GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error) {
	user, err := u.repos.User.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "该用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return buildUserInfoRespond(user), nil
}

// UpdateUserInfo 更新用户资料
// 调用者只能更新自己的资料，userId 来自 JWT 上下文
func (u *userInfoService) UpdateUserInfo(userId string, req request.UpdateUserInfoRequest) error {
	user, err := u.repos.User.FindByUuid(userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeUserNotExist, "该用户不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	// 只覆盖传入的字段，空值表示不修改
	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Signature != "" {
		user.Signature = req.Signature
	}
	if req.Telephone != "" {
		user.Telephone = req.Telephone
	}

	if err := u.repos.User.Update(user); err != nil {
		zap.L().Error("update user error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// SearchByEmail 根据邮箱精确查找用户
// 用于添加好友前先确认对方身份
func (u *userInfoService) SearchByEmail(email string) (*respond.GetUserInfoRespond, error) {
	user, err := u.repos.User.FindByEmail(email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "该用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return buildUserInfoRespond(user), nil
}

// buildUserInfoRespond 组装用户资料返回结构
func buildUserInfoRespond(user *model.UserInfo) *respond.GetUserInfoRespond {
	rsp := &respond.GetUserInfoRespond{
		Uuid:      user.Uuid,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Telephone: user.Telephone,
		Avatar:    user.Avatar,
		Signature: user.Signature,
		Status:    user.Status,
	}
	year, month, day := user.CreatedAt.Date()
	rsp.CreatedAt = fmt.Sprintf("%d.%d.%d", year, month, day)
	return rsp
}
