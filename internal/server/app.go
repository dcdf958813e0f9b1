// Package server initializes and runs the auth backend. It wires the
// identity provider and record store clients, the flow services, the three
// request routers, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/campusauth/internal/logging"
	"github.com/dmitrijs2005/campusauth/internal/server/accounts"
	"github.com/dmitrijs2005/campusauth/internal/server/config"
	"github.com/dmitrijs2005/campusauth/internal/server/httpapi"
	"github.com/dmitrijs2005/campusauth/internal/server/identity"
	"github.com/dmitrijs2005/campusauth/internal/server/records"
	"github.com/dmitrijs2005/campusauth/internal/server/recovery"
	"github.com/dmitrijs2005/campusauth/internal/server/sessions"
)

type App struct {
	config *config.Config
	logger logging.Logger
	signup *httpapi.SignupHandler
	login  *httpapi.LoginHandler
	reset  *httpapi.ResetHandler
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	awsCfg, err := loadAWSConfig(context.Background(), c)
	if err != nil {
		return nil, fmt.Errorf("aws config init error: %w", err)
	}

	provider := identity.NewCognitoProvider(
		cognitoidentityprovider.NewFromConfig(awsCfg, func(o *cognitoidentityprovider.Options) {
			if c.AWSBaseEndpoint != "" {
				o.BaseEndpoint = aws.String(c.AWSBaseEndpoint)
			}
		}),
		c.UserPoolID, c.ClientID, c.ClientSecret,
	)

	store := records.NewDynamoStore(
		dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if c.AWSBaseEndpoint != "" {
				o.BaseEndpoint = aws.String(c.AWSBaseEndpoint)
			}
		}),
		c.UserTable,
	)

	accountsSvc := accounts.NewService(provider, store, accounts.Options{
		CheckDuplicateEmail: true,
		RequireConfirmation: true,
	})
	sessionsSvc := sessions.NewService(provider)
	recoverySvc := recovery.NewService(provider)

	return &App{
		config: c,
		logger: logger,
		signup: httpapi.NewSignupHandler(accountsSvc, logger, c.RequestTimeout),
		login:  httpapi.NewLoginHandler(sessionsSvc, logger, c.RequestTimeout),
		reset:  httpapi.NewResetHandler(recoverySvc, logger, c.RequestTimeout),
	}, nil
}

// loadAWSConfig builds the shared SDK configuration. Static credentials are
// used only when configured (local stacks); otherwise the default chain
// applies.
func loadAWSConfig(ctx context.Context, c *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.AWSRegion),
	}
	if c.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AWSAccessKeyID, c.AWSSecretAccessKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.signup, app.login, app.reset)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
