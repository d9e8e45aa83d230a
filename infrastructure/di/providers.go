package di

import (
	"context"
	"net/http"

	"insights-backend/application/ports"
	"insights-backend/application/services"
	"insights-backend/application/usecases"
	"insights-backend/domain/records"
	"insights-backend/infrastructure/config"
	"insights-backend/infrastructure/messaging"
	dynamostore "insights-backend/infrastructure/persistence/dynamodb"
	"insights-backend/infrastructure/persistence/repository"
	"insights-backend/infrastructure/regeneration"
	"insights-backend/interfaces/http/rest"
	"insights-backend/interfaces/http/rest/handlers"
	"insights-backend/pkg/auth"
	apperrors "insights-backend/pkg/errors"
	"insights-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Contents     *services.ContentService
	URLMappings  *services.URLMappingService
	Insights     *services.InsightService
	Implications *services.ImplicationService
	Summaries    *services.SummaryService
	Metadata     *services.MetadataService
	QA           *services.QAService

	InsightWorkflow     *usecases.InsightRegeneration
	ImplicationWorkflow *usecases.ImplicationRegeneration
	Seeder              *usecases.SeedGenerator

	Router http.Handler
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideRecordStore creates the DynamoDB-backed record store
func ProvideRecordStore(client *awsdynamodb.Client, logger *zap.Logger) ports.RecordStore {
	return dynamostore.NewStore(client, logger)
}

// ProvideEventPublisher creates the audit event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return messaging.NewEventBridgePublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the CloudWatch metrics emitter
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) ports.MetricsEmitter {
	return observability.NewMetrics(cfg.MetricsNamespace, client)
}

// ProvideRegenerationClient creates the outbound regeneration API client
func ProvideRegenerationClient(cfg *config.Config, logger *zap.Logger) ports.RegenerationClient {
	return regeneration.NewClient(cfg.RegenerationBaseURL, cfg.RegenerationTimeout, logger)
}

// ProvideJWTValidator creates the bearer token validator. Outside
// production a fixed local secret stands in when none is configured.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "local-development-secret"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *apperrors.ErrorHandler {
	return apperrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideContentService creates the content service over its table
func ProvideContentService(store ports.RecordStore, cfg *config.Config, logger *zap.Logger) *services.ContentService {
	repo := repository.New(store, cfg.TableFor(records.EntityContent), records.ContentMapping, logger)
	return services.NewContentService(repo, logger)
}

// ProvideURLMappingService creates the URL mapping service over its table
func ProvideURLMappingService(store ports.RecordStore, cfg *config.Config, logger *zap.Logger) *services.URLMappingService {
	repo := repository.New(store, cfg.TableFor(records.EntityURLMapping), records.URLMappingMapping, logger)
	return services.NewURLMappingService(repo, logger)
}

// ProvideInsightService creates the insight service over its table
func ProvideInsightService(store ports.RecordStore, cfg *config.Config, logger *zap.Logger) *services.InsightService {
	repo := repository.New(store, cfg.TableFor(records.EntityInsight), records.InsightMapping, logger)
	return services.NewInsightService(repo, logger)
}

// ProvideImplicationService creates the implication service over its table
func ProvideImplicationService(store ports.RecordStore, cfg *config.Config, logger *zap.Logger) *services.ImplicationService {
	repo := repository.New(store, cfg.TableFor(records.EntityImplication), records.ImplicationMapping, logger)
	return services.NewImplicationService(repo, logger)
}

// ProvideSummaryService creates the summary service over its table
func ProvideSummaryService(store ports.RecordStore, cfg *config.Config, logger *zap.Logger) *services.SummaryService {
	repo := repository.New(store, cfg.TableFor(records.EntitySummary), records.SummaryMapping, logger)
	return services.NewSummaryService(repo, logger)
}

// ProvideMetadataService creates the metadata service over its table
func ProvideMetadataService(store ports.RecordStore, cfg *config.Config, logger *zap.Logger) *services.MetadataService {
	repo := repository.New(store, cfg.TableFor(records.EntityMetadata), records.MetadataMapping, logger)
	return services.NewMetadataService(repo, logger)
}

// ProvideQAService creates the Q&A service over its table
func ProvideQAService(store ports.RecordStore, cfg *config.Config, logger *zap.Logger) *services.QAService {
	repo := repository.New(store, cfg.TableFor(records.EntityQA), records.QAMapping, logger)
	return services.NewQAService(repo, logger)
}

// ProvideHandlers bundles the per-entity HTTP handlers
func ProvideHandlers(
	contents *services.ContentService,
	urls *services.URLMappingService,
	insights *services.InsightService,
	implications *services.ImplicationService,
	summaries *services.SummaryService,
	metadata *services.MetadataService,
	qa *services.QAService,
	insightWorkflow *usecases.InsightRegeneration,
	implicationWorkflow *usecases.ImplicationRegeneration,
	seeder *usecases.SeedGenerator,
	errHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) rest.Handlers {
	return rest.Handlers{
		Content:      handlers.NewContentHandler(contents, errHandler, logger),
		URLMappings:  handlers.NewURLMappingHandler(urls, errHandler, logger),
		Insights:     handlers.NewInsightHandler(insights, qa, insightWorkflow.VersioningWorkflow, errHandler, logger),
		Implications: handlers.NewImplicationHandler(implications, qa, implicationWorkflow.VersioningWorkflow, errHandler, logger),
		Summaries:    handlers.NewSummaryHandler(summaries, errHandler, logger),
		Metadata:     handlers.NewMetadataHandler(metadata, errHandler, logger),
		Admin:        handlers.NewAdminHandler(seeder, errHandler, logger),
	}
}

// ProvideRouter assembles the HTTP surface
func ProvideRouter(h rest.Handlers, validator *auth.JWTValidator, cfg *config.Config, logger *zap.Logger) http.Handler {
	return rest.NewRouter(h, validator, logger, cfg.EnableCORS).Setup()
}
