package respond

// GetUserInfoRespond 用户资料返回结构
type GetUserInfoRespond struct {
	Uuid      string `json:"uuid"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Avatar    string `json:"avatar"`
	Signature string `json:"signature"`
	CreatedAt string `json:"created_at"`
	Status    int8   `json:"status"`
}
