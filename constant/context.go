package constant

// 网关透传的身份信息在 gin.Context 中的存放键。
// 网关完成令牌校验后，将用户 ID 与角色写入请求头，本服务无条件信任。
const (
	// CtxUserIDKey 对应请求头 X-User-ID，值为用户 ID (UUID 字符串)。
	CtxUserIDKey = "qa:userID"

	// CtxUserRoleKey 对应请求头 X-User-Role，值为 guest/user/admin。
	CtxUserRoleKey = "qa:userRole"

	// HeaderUserID / HeaderUserRole 是网关写入的请求头名称。
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)
