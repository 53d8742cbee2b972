package app

import (
	"context"
	"fmt"
	"time"

	"career-connect/internal/clock"
	"career-connect/internal/config"
	"career-connect/internal/database"
	dbpostgres "career-connect/internal/database/postgres"
	"career-connect/internal/database/schema"
	"career-connect/internal/infrastructure/ai"
	"career-connect/internal/infrastructure/cache"
	"career-connect/internal/infrastructure/executor"
	"career-connect/internal/repository"
	"career-connect/internal/usecase"
	"career-connect/internal/ws"

	"go.uber.org/zap"
)

// Container wires every layer together. Construction fails fast on the
// database; redis and the AI backend degrade at runtime instead.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Users       usecase.UserUsecase
	Matching    usecase.MatchingUsecase
	Mentorship  usecase.MentorshipUsecase
	Questions   usecase.QuestionUsecase
	Submissions usecase.SubmissionUsecase
	Readiness   usecase.ReadinessUsecase
	Chat        usecase.ChatUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	clk := clock.UTC{}

	userRepo := repository.NewPostgresUserRepository(db)
	requestRepo := repository.NewPostgresMentorshipRepository(db)
	questionRepo := repository.NewPostgresQuestionRepository(db)
	submissionRepo := repository.NewPostgresSubmissionRepository(db)
	prepRepo := repository.NewPostgresPrepProfileRepository(db)
	chatRepo := repository.NewPostgresChatRepository(db)

	var generator usecase.QuestionGenerator
	var advisor usecase.CareerAdvisor
	aiClient, err := ai.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		logger.Warn("ai backend disabled", zap.Error(err))
		generator = unavailableGenerator{}
		advisor = unavailableAdvisor{}
	} else {
		generator = ai.NewQuestionGenerator(aiClient, logger)
		advisor = ai.NewCareerAdvisor(aiClient, logger)
	}

	judge := executor.NewJudge0(cfg.Executor, logger)

	readinessUC := usecase.NewReadinessUsecase(prepRepo, questionRepo, userRepo, redisCache, clk, logger)
	chatUC := usecase.NewChatUsecase(chatRepo, userRepo, advisor, clk, logger)

	c := &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Cache:       redisCache,
		Hub:         ws.NewHub(logger),
		Users:       usecase.NewUserUsecase(userRepo, clk, logger),
		Matching:    usecase.NewMatchingUsecase(userRepo),
		Mentorship:  usecase.NewMentorshipUsecase(userRepo, requestRepo, clk, logger),
		Questions:   usecase.NewQuestionUsecase(questionRepo, prepRepo, generator, redisCache, clk, logger),
		Submissions: usecase.NewSubmissionUsecase(questionRepo, submissionRepo, judge, readinessUC, clk, logger),
		Readiness:   readinessUC,
		Chat:        chatUC,
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
