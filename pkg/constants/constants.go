package constants

const (
	CHANNEL_SIZE               = 100 // 通道大小
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天
	NOTE_MAX_LEN               = 100 // 好友申请附言最大长度（字符数）
)
