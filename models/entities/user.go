package entities

import (
	"time"

	"gorm.io/gorm"

	"github.com/Xushengqwer/qa_service/models/enums"
)

// User 用户实体
// - 使用场景: 个人主页、管理员用户列表、封禁管理
// - 表名: users
// - 注意: 用户注册/登录由网关侧的认证服务完成，本服务只维护资料与状态字段；
//   Password 存储的是认证服务落库的哈希值，任何响应都不得携带该列 (json:"-")。
type User struct {
	// 用户ID，UUID 格式（36个字符），由认证服务生成，全局与其他服务一致
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	// 用户名，唯一
	// - 类型: varchar(50)，与帖子上冗余的 author_username 字段保持同一长度
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`

	// 邮箱，唯一
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	// 密码哈希，永远不允许被序列化进任何响应
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	// 角色，guest/user/admin
	Role enums.UserRole `gorm:"type:varchar(10);default:'user'" json:"role"`

	// 声望值，由外部声望服务通过 Kafka 事件增减，本服务不包含计算逻辑
	Reputation int64 `gorm:"type:bigint;default:0" json:"reputation"`

	// 封禁标记，仅管理员可变更；管理员自身不可被封禁
	Banned bool `gorm:"default:false" json:"banned"`

	// 头像 URL，可为空
	ProfilePicture string `gorm:"type:varchar(255)" json:"profilePicture"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
