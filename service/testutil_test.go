package service

import (
	"context"
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
	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// fixture 把服务层测试需要的全部依赖装配到一起，Kafka 生产者置 nil。
type fixture struct {
	db               *gorm.DB
	userRepo         mysql.UserRepository
	questionRepo     mysql.QuestionRepository
	answerRepo       mysql.AnswerRepository
	notificationRepo mysql.NotificationRepository

	notificationSvc NotificationService
	questionSvc     QuestionService
	questionListSvc QuestionListService
	answerSvc       AnswerService
	userSvc         UserService
}

func newFixture(t *testing.T) *fixture {
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

	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)

	f := &fixture{db: db}
	f.userRepo = mysql.NewUserRepository(db, logger)
	f.questionRepo = mysql.NewQuestionRepository(db, logger)
	f.answerRepo = mysql.NewAnswerRepository(db, logger)
	f.notificationRepo = mysql.NewNotificationRepository(db, logger)

	f.notificationSvc = NewNotificationService(f.notificationRepo, f.userRepo, logger)
	f.questionSvc = NewQuestionService(db, f.questionRepo, f.answerRepo, f.userRepo, f.notificationSvc, nil, logger)
	f.questionListSvc = NewQuestionListService(f.questionRepo, logger)
	f.answerSvc = NewAnswerService(db, f.answerRepo, f.questionRepo, f.userRepo, f.notificationSvc, logger)
	f.userSvc = NewUserService(f.userRepo, f.questionRepo, f.answerRepo, logger)
	return f
}

// mustCreateUser 直接经仓库层落一个用户。
func (f *fixture) mustCreateUser(t *testing.T, id string, role enums.UserRole, banned bool) *entities.User {
	t.Helper()
	user := &entities.User{
		ID:       id,
		Username: "user-" + id,
		Email:    id + "@example.com",
		Password: "hash",
		Role:     role,
		Banned:   banned,
	}
	require.NoError(t, f.userRepo.CreateUser(context.Background(), user))
	return user
}
