package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/qa_service/config"
	"github.com/Xushengqwer/qa_service/dependencies"
	"github.com/Xushengqwer/qa_service/repo/mysql"
	"github.com/Xushengqwer/qa_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numQuestions int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numQuestions, "n", 50, "要生成的问题数量 (默认: 50)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个测试问题及配套数据...\n", absConfigFile, numQuestions)

	if numQuestions <= 0 {
		fmt.Println("错误: 生成的问题数量必须大于 0")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.QAConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空，请检查配置文件中 mysqlConfig.write.dsn 是否有值。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Repositories ---
	questionRepo := mysql.NewQuestionRepository(db, logger)
	answerRepo := mysql.NewAnswerRepository(db, logger)
	userRepo := mysql.NewUserRepository(db, logger)
	notificationRepo := mysql.NewNotificationRepository(db, logger)

	// --- 5. 初始化 Services ---
	// 填充走服务层，保证通知、回答计数等副作用与线上路径一致；Kafka 生产者置 nil 跳过事件发送。
	notificationSvc := service.NewNotificationService(notificationRepo, userRepo, logger)
	questionSvc := service.NewQuestionService(db, questionRepo, answerRepo, userRepo, notificationSvc, nil, logger)
	answerSvc := service.NewAnswerService(db, answerRepo, questionRepo, userRepo, notificationSvc, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 6. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("预计问题数量", numQuestions))

	Seed(ctx, userRepo, questionSvc, answerSvc, logger, numQuestions)

	duration := time.Since(startTime)
	fmt.Printf("数据填充完成！总耗时: %v\n", duration)
	logger.Info("Seeder main: 所有任务完成，准备退出。", zap.Duration("耗时", duration))
}
