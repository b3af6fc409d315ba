package deps

import (
	"claon/internal/config"
	dl "claon/internal/core/domain/logging"
	"claon/internal/core/domain/notification"
	drl "claon/internal/core/domain/rate_limiter"
	duow "claon/internal/core/domain/unit_of_work"
	"claon/internal/core/domain/user"
	uow "claon/internal/db/unit_of_work"
	dbuser "claon/internal/db/user"
	"claon/internal/implementations/email"
	"claon/internal/implementations/logging"
	passwordgenerator "claon/internal/implementations/password_generator"
	passwordhasher "claon/internal/implementations/password_hasher"
	passwordvalidator "claon/internal/implementations/password_validator"
	ratelimiter "claon/internal/implementations/rate_limiter"
	"claon/internal/rabbitmq"
	emailqueue "claon/internal/rabbitmq/publishers/email_queue"
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork     duow.UnitOfWork
	UserRepository user.UserRepository

	RateLimiter drl.RateLimiter

	// SESEmailSender delivers directly. EmailSender is what services use and
	// is either SES or the RabbitMQ email queue.
	SESEmailSender *email.EmailSender
	EmailSender    notification.EmailSender

	PasswordHasher          user.PasswordHasher
	PasswordGenerator       user.PasswordGenerator
	PasswordFormatValidator user.PasswordFormatValidator
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.SESEmailSender = email.NewEmailSender(deps.AwsConfig, deps.Config.AwsEmailSender)
	closeEmailQueue := deps.initEmailSender()

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.PasswordGenerator = passwordgenerator.New(passwordgenerator.NewCryptoSource())
	deps.PasswordFormatValidator = passwordvalidator.New()

	return deps, func() {
		closeFuncs := []func(){
			closeEmailQueue,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	options := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	}
	// Without static keys the default chain (env, shared config, IAM role) applies.
	if deps.Config.AwsAccessKey != "" {
		options = append(options, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.Background(), options...)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.New(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if !deps.Config.UsesEmailQueue() {
		return func() {}
	}

	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initEmailSender() func() {
	if !deps.Config.UsesEmailQueue() {
		deps.EmailSender = deps.SESEmailSender
		deps.Logger.Info(context.Background(), "Emails are sent through SES.")
		return func() {}
	}

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareQueue(deps.Config.RabbitmqEmailQueue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.EmailSender = emailqueue.NewRabbitMQ(deps.Logger, rabbitmqChannel, deps.Config.RabbitmqEmailQueue)
	deps.Logger.Info(
		context.Background(),
		"Emails are sent through RabbitMQ.",
		dl.Entry("queue", deps.Config.RabbitmqEmailQueue),
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down email queue publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Email queue publisher shut down.")
	}
}
