/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/walletgate/vc-auth/cmd/common"
	"github.com/walletgate/vc-auth/pkg/credentialpattern"
	"github.com/walletgate/vc-auth/pkg/event"
	"github.com/walletgate/vc-auth/pkg/idp"
	"github.com/walletgate/vc-auth/pkg/observability/health/healthutil"
	mongocheck "github.com/walletgate/vc-auth/pkg/observability/health/mongo"
	redischeck "github.com/walletgate/vc-auth/pkg/observability/health/redis"
	"github.com/walletgate/vc-auth/pkg/observability/tracing"
	"github.com/walletgate/vc-auth/pkg/restapi/resterr"
	oidc4vcv1 "github.com/walletgate/vc-auth/pkg/restapi/v1/oidc4vc"
	"github.com/walletgate/vc-auth/pkg/service/oidc4vc"
	"github.com/walletgate/vc-auth/pkg/signer"
	"github.com/walletgate/vc-auth/pkg/storage/mongodb"
	"github.com/walletgate/vc-auth/pkg/storage/mongodb/clientsessionstore"
	"github.com/walletgate/vc-auth/pkg/storage/redis"
	"github.com/walletgate/vc-auth/pkg/storage/redis/callbackstore"
	"github.com/walletgate/vc-auth/pkg/verifier"
)

var logger = log.New("auth-rest")

const (
	verifierRequestTimeout   = 30 * time.Second
	healthCheckTimeout       = 5 * time.Second
	healthCheckCacheDuration = time.Second
)

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	return http.ListenAndServe(host, router)
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(srv server) *cobra.Command {
	startCmd := createStartCmd(srv)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(srv server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start auth-rest",
		Long:  "Start the authorization server for verifiable credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			return startAuthService(params, srv)
		},
	}
}

// nolint: funlen
func startAuthService(params *startupParameters, srv server) error {
	if params.logLevel != "" {
		common.SetDefaultLogLevel(logger, params.logLevel)
	}

	shutdownTracer, traceProvider, err := tracing.Initialize(
		params.tracingParams.exporter, params.tracingParams.serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer shutdownTracer()

	var mongoOpts []mongodb.ClientOpt

	var redisOpts []redis.ClientOpt

	if params.tracingParams.exporter != tracing.None {
		mongoOpts = append(mongoOpts, mongodb.WithTraceProvider(traceProvider))
		redisOpts = append(redisOpts, redis.WithTraceProvider(traceProvider))
	}

	if params.redisPassword != "" {
		redisOpts = append(redisOpts, redis.WithPassword(params.redisPassword))
	}

	mongoClient, err := mongodb.New(params.mongoDBURL, params.mongoDBDatabase, mongoOpts...)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	defer func() {
		if closeErr := mongoClient.Close(); closeErr != nil {
			logger.Warn("Error closing mongodb client", log.WithError(closeErr))
		}
	}()

	sessionStore, err := clientsessionstore.New(context.Background(), mongoClient, params.sessionTTL)
	if err != nil {
		return fmt.Errorf("create client session store: %w", err)
	}

	redisClient, err := redis.New(params.redisURLs, redisOpts...)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	privateKey, err := signer.LoadECPrivateKey(params.signingKeyFile)
	if err != nil {
		return fmt.Errorf("load signing key: %w", err)
	}

	tokenSigner, err := signer.New(privateKey, params.signingKeyID)
	if err != nil {
		return fmt.Errorf("create signer: %w", err)
	}

	patternRegistry, err := credentialpattern.NewRegistryFromFile(params.credentialPatternsFile)
	if err != nil {
		return fmt.Errorf("load credential patterns: %w", err)
	}

	delegateRegistry := idp.NewRegistry(nil)

	if params.idpDelegatesFile != "" {
		delegateRegistry, err = idp.NewRegistryFromFile(params.idpDelegatesFile)
		if err != nil {
			return fmt.Errorf("load idp delegates: %w", err)
		}
	}

	eventBus := event.NewBus()

	defer func() {
		if closeErr := eventBus.Close(); closeErr != nil {
			logger.Warn("Error closing event bus", log.WithError(closeErr))
		}
	}()

	flowService := oidc4vc.NewService(&oidc4vc.Config{
		SessionStore: sessionStore,
		PresentationVerifier: verifier.NewClient(&verifier.Config{
			HTTPClient: &http.Client{Timeout: verifierRequestTimeout},
			HostURL:    params.verifierURL,
		}),
		TokenSigner:              tokenSigner,
		PatternRegistry:          patternRegistry,
		DelegateResolver:         delegateRegistry,
		EventService:             eventBus,
		EventTopic:               params.eventTopic,
		CallbackMarker:           callbackstore.New(redisClient, params.tokenTTL),
		IssuerDID:                params.issuerDID,
		IssuerURI:                params.issuerURI,
		DefaultWalletRedirectURL: params.defaultWalletRedirectURL,
		TokenTTL:                 params.tokenTTL,
	})

	router := buildRouter(flowService, tracing.Tracer(traceProvider))

	registerHealthCheck(router, params)

	logger.Info("Starting auth-rest server on host " + params.hostURL)

	return srv.ListenAndServe(params.hostURL, router)
}

func registerHealthCheck(router *echo.Echo, params *startupParameters) {
	responseTimes := map[string]healthutil.ResponseTimeState{}

	var redisCheckOpts []redischeck.ClientOpt

	if params.redisPassword != "" {
		redisCheckOpts = append(redisCheckOpts, redischeck.WithPassword(params.redisPassword))
	}

	checker := health.NewChecker(
		health.WithCacheDuration(healthCheckCacheDuration),
		health.WithTimeout(healthCheckTimeout),
		health.WithCheck(health.Check{
			Name:  "mongodb",
			Check: mongocheck.New(params.mongoDBURL),
		}),
		health.WithCheck(health.Check{
			Name:  "redis",
			Check: redischeck.New(params.redisURLs, redisCheckOpts...),
		}),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
	)

	router.GET("/healthcheck", echo.WrapHandler(health.NewHandler(checker,
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)))))
}

func buildRouter(flowService *oidc4vc.Service, tracer trace.Tracer) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = resterr.HTTPErrorHandler

	router.Use(middleware.Recover())

	controller := oidc4vcv1.NewController(&oidc4vcv1.Config{
		FlowService: flowService,
		Tracer:      tracer,
	})

	oidc4vcv1.RegisterHandlers(router, controller)

	return router
}
