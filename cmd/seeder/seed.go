package main

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/service"
	mysqlRepo "github.com/Xushengqwer/qa_service/repo/mysql"
)

// tagPool 是填充问题时的候选标签集合，贴近真实站点的技术标签分布。
var tagPool = []string{
	"go", "mysql", "redis", "kafka", "docker", "kubernetes",
	"gin", "gorm", "linux", "networking", "testing", "performance",
}

// Seed 通过服务层填充测试数据：一批用户、问题、回答，并随机投票与采纳。
// 注意：函数名 Seed 首字母大写，以便在同一个包中被 main.go 调用。
func Seed(
	ctx context.Context,
	userRepo mysqlRepo.UserRepository,
	questionSvc service.QuestionService,
	answerSvc service.AnswerService,
	logger *core.ZapLogger,
	numQuestions int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("问题数量", numQuestions))

	// --- 1. 创建用户池 ---
	// 问题数量的三分之一作为用户数，保证每人名下有多条内容；至少 5 人。
	numUsers := numQuestions / 3
	if numUsers < 5 {
		numUsers = 5
	}
	userIDs := make([]string, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		role := enums.RoleUser
		if i == 0 {
			role = enums.RoleAdmin // 保证至少有一个管理员可用于后台接口调试
		}
		user := &entities.User{
			ID:             uuid.New().String(),
			Username:       gofakeit.Username(),
			Email:          gofakeit.Email(),
			Password:       uuid.New().String(), // 占位哈希，认证不经过本服务
			Role:           role,
			ProfilePicture: gofakeit.ImageURL(100, 100),
		}
		if err := userRepo.CreateUser(ctx, user); err != nil {
			logger.Error(fmt.Sprintf("创建用户 %d/%d 失败", i+1, numUsers),
				zap.Error(err), zap.String("username", user.Username))
			continue
		}
		userIDs = append(userIDs, user.ID)
	}
	if len(userIDs) == 0 {
		logger.Error("没有任何用户创建成功，中止填充")
		return
	}
	logger.Info("用户池已创建", zap.Int("数量", len(userIDs)))

	pickUser := func() string {
		return userIDs[gofakeit.Number(0, len(userIDs)-1)]
	}

	// --- 2. 创建问题、回答、投票与采纳 ---
	for i := 0; i < numQuestions; i++ {
		authorID := pickUser()

		numTags := gofakeit.Number(1, 4)
		tags := make([]string, 0, numTags)
		seen := make(map[string]bool, numTags)
		for len(tags) < numTags {
			tag := tagPool[gofakeit.Number(0, len(tagPool)-1)]
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}

		question, err := questionSvc.CreateQuestion(ctx, authorID, &dto.CreateQuestionRequest{
			Title:       gofakeit.Sentence(gofakeit.Number(5, 12)),
			Description: gofakeit.Paragraph(2, 4, 15, "\n\n"),
			Tags:        tags,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("创建问题 %d/%d 失败", i+1, numQuestions), zap.Error(err))
			continue
		}

		// 为问题随机投几票（他人投票，跳过作者自己）
		for v := 0; v < gofakeit.Number(0, 5); v++ {
			voterID := pickUser()
			if voterID == authorID {
				continue
			}
			delta := int64(1)
			if gofakeit.Number(0, 9) == 0 {
				delta = -1
			}
			if _, err := questionSvc.VoteQuestion(ctx, voterID, question.ID, delta); err != nil {
				logger.Warn("问题投票失败", zap.Error(err), zap.Uint64("questionID", question.ID))
			}
		}

		// 为问题创建 0~4 条回答
		var answerIDs []uint64
		var answerAuthors []string
		for a := 0; a < gofakeit.Number(0, 4); a++ {
			answerAuthorID := pickUser()
			answer, err := answerSvc.CreateAnswer(ctx, answerAuthorID, &dto.CreateAnswerRequest{
				QuestionID: question.ID,
				Content:    gofakeit.Paragraph(1, 3, 15, "\n"),
			})
			if err != nil {
				logger.Warn("创建回答失败", zap.Error(err), zap.Uint64("questionID", question.ID))
				continue
			}
			answerIDs = append(answerIDs, answer.ID)
			answerAuthors = append(answerAuthors, answerAuthorID)

			for v := 0; v < gofakeit.Number(0, 3); v++ {
				voterID := pickUser()
				if voterID == answerAuthorID {
					continue
				}
				if _, err := answerSvc.VoteAnswer(ctx, voterID, answer.ID, 1); err != nil {
					logger.Warn("回答投票失败", zap.Error(err), zap.Uint64("answerID", answer.ID))
				}
			}
		}

		// 约三分之一的问题采纳一条回答（由问题作者执行）
		if len(answerIDs) > 0 && gofakeit.Number(0, 2) == 0 {
			pick := gofakeit.Number(0, len(answerIDs)-1)
			if answerAuthors[pick] != authorID {
				if _, err := questionSvc.AcceptAnswer(ctx, authorID, question.ID, answerIDs[pick]); err != nil {
					logger.Warn("采纳回答失败", zap.Error(err),
						zap.Uint64("questionID", question.ID), zap.Uint64("answerID", answerIDs[pick]))
				}
			}
		}

		logger.Info(fmt.Sprintf("成功创建问题 %d/%d", i+1, numQuestions),
			zap.Uint64("question_id", question.ID),
			zap.Int("answers", len(answerIDs)))
	}

	logger.Info("测试数据填充完毕 (通过服务层)。")
}
