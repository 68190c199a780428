package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/talentgate/talentgate/internal/ai/embeddings"
	"github.com/talentgate/talentgate/internal/ai/llm"
	"github.com/talentgate/talentgate/pkg/fsx"
	"github.com/talentgate/talentgate/pkg/fsx/fsxs3"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/application/applicationapi"
	"github.com/talentgate/talentgate/recruitment/application/applicationinfra"
	"github.com/talentgate/talentgate/recruitment/application/applicationsrv"
	"github.com/talentgate/talentgate/recruitment/candidate/candidateapi"
	"github.com/talentgate/talentgate/recruitment/candidate/candidateinfra"
	"github.com/talentgate/talentgate/recruitment/candidate/candidatesrv"
	"github.com/talentgate/talentgate/recruitment/job/jobapi"
	"github.com/talentgate/talentgate/recruitment/job/jobinfra"
	"github.com/talentgate/talentgate/recruitment/job/jobsrv"
	"github.com/talentgate/talentgate/recruitment/matching/matchapi"
	"github.com/talentgate/talentgate/recruitment/matching/matchinfra"
	"github.com/talentgate/talentgate/recruitment/matching/matchsrv"
	"github.com/talentgate/talentgate/recruitment/profile/profileapi"
	"github.com/talentgate/talentgate/recruitment/profile/profileinfra"
	"github.com/talentgate/talentgate/recruitment/profile/profilesrv"
	"github.com/talentgate/talentgate/recruitment/profile/worker"
)

// AppConfig holds the environment-driven configuration
type AppConfig struct {
	DBHost string `validate:"required"`
	DBPort string `validate:"required"`
	DBUser string `validate:"required"`
	DBPass string
	DBName string `validate:"required"`

	RedisAddr string `validate:"required"`
	RedisPass string

	AWSRegion string `validate:"required"`
	AWSBucket string `validate:"required"`

	// Optional. When empty, resume interpretation and match scoring run on
	// the deterministic heuristics and embeddings are skipped.
	OpenAIKey   string
	OpenAIModel string

	ResumeWorkers int
}

func loadConfig() AppConfig {
	workers := 2
	if v := os.Getenv("RESUME_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workers = n
		}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	cfg := AppConfig{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBName:        os.Getenv("DB_NAME"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		AWSBucket:     os.Getenv("AWS_BUCKET"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   model,
		ResumeWorkers: workers,
	}

	if err := validator.New().Struct(cfg); err != nil {
		logx.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Container holds all application dependencies
type Container struct {
	Config AppConfig

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Domain Services
	JobService         *jobsrv.JobService
	CandidateService   *candidatesrv.CandidateService
	ProfileService     *profilesrv.Service
	MatchService       *matchsrv.Service
	ApplicationService *applicationsrv.ApplicationService

	// Background workers
	ResumeWorker *worker.ResumeWorker

	// API Handlers
	JobHandlers         *jobapi.Handlers
	CandidateHandlers   *candidateapi.Handlers
	ProfileHandlers     *profileapi.ProfileHandlers
	MatchHandlers       *matchapi.MatchHandlers
	ApplicationHandlers *applicationapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{Config: loadConfig()}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Config.DBHost, c.Config.DBPort, c.Config.DBUser, c.Config.DBPass, c.Config.DBName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(c.Config.AWSRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.AWSBucket, "uploads")
}

func (c *Container) initServices() {
	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	profileRepo := profileinfra.NewPostgresProfileRepository(c.DB)
	parseJobRepo := profileinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	// --- Queue and cache ---
	resumeQueue := profileinfra.NewRedisQueue(c.Redis, "resume_parse_jobs")
	matchCache := matchinfra.NewRedisMatchCache(c.Redis, "match", matchinfra.DefaultTTL)

	// --- Model clients ---
	// Left nil without an API key; interpretation and scoring then run on
	// the deterministic heuristics.
	var modelClient llm.Client
	var embedGen *embeddings.Generator
	if c.Config.OpenAIKey != "" {
		modelClient = llm.NewOpenAIClient(c.Config.OpenAIKey, c.Config.OpenAIModel)
		embedGen = embeddings.NewGenerator(c.Config.OpenAIKey)
	} else {
		logx.Warn("OPENAI_API_KEY is not set, falling back to heuristic parsing and scoring")
	}

	interpreter := profilesrv.NewInterpreter(modelClient)
	scorer := matchsrv.NewScorer(modelClient)

	// --- Domain Services ---
	c.ProfileService = profilesrv.NewService(
		profileRepo,
		parseJobRepo,
		resumeQueue,
		c.FileSystem,
		interpreter,
		embedGen,
		matchCache,
	)

	c.JobService = jobsrv.NewJobService(jobRepo, profileRepo, embedGen)
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, profileRepo)
	c.MatchService = matchsrv.NewService(scorer, jobRepo, profileRepo, matchCache)
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		candidateRepo,
		jobRepo,
		c.MatchService,
	)

	// --- Background workers ---
	c.ResumeWorker = worker.NewResumeWorker(c.ProfileService, resumeQueue, c.Config.ResumeWorkers)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.ProfileHandlers = profileapi.NewProfileHandlers(c.ProfileService)
	c.MatchHandlers = matchapi.NewMatchHandlers(c.MatchService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
}
