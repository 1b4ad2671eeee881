package mysql

import (
	"fmt"
	"strings"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/qa_service/models/entities"
)

// newTestDB 为当前测试打开一个独立的内存 SQLite 库并完成建表。
// cache=shared 保证 GORM 连接池里的多个连接看到同一份数据。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Question{},
		&entities.QuestionTag{},
		&entities.Answer{},
		&entities.Notification{},
	))
	return db
}

// newTestLogger 构造测试用的 ZapLogger。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

// newTags 将标签名转换为按顺序落库的关联记录。
func newTags(names ...string) []entities.QuestionTag {
	tags := make([]entities.QuestionTag, 0, len(names))
	for i, name := range names {
		tags = append(tags, entities.QuestionTag{TagName: name, Position: i})
	}
	return tags
}
