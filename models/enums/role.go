package enums

// UserRole 表示用户角色。
// - 网关在请求头中透传角色字符串，本服务直接信任。
type UserRole string

const (
	RoleGuest UserRole = "guest" // 游客，只读
	RoleUser  UserRole = "user"  // 普通用户
	RoleAdmin UserRole = "admin" // 管理员，可封禁用户、广播通知
)

// Valid 判断角色值是否为已知取值。
func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleAdmin:
		return true
	}
	return false
}
