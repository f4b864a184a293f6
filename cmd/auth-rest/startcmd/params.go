/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/walletgate/vc-auth/cmd/common"
	"github.com/walletgate/vc-auth/pkg/event/spi"
	"github.com/walletgate/vc-auth/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the auth-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "VC_AUTH_HOST_URL"

	issuerURIFlagName      = "issuer-uri"
	issuerURIFlagShorthand = "x"
	issuerURIFlagUsage     = "Issuer URI as seen externally. Used as the base for request_uri references " +
		"and as the audience of issued tokens. Format: http://<HOST>:<PORT>. " +
		commonEnvVarUsageText + issuerURIEnvKey
	issuerURIEnvKey = "VC_AUTH_ISSUER_URI"

	issuerDIDFlagName  = "issuer-did"
	issuerDIDFlagUsage = "DID of the issuer. Becomes the iss claim of signed request objects and tokens. " +
		commonEnvVarUsageText + issuerDIDEnvKey
	issuerDIDEnvKey = "VC_AUTH_ISSUER_DID"

	mongoDBURLFlagName      = "mongodb-url"
	mongoDBURLFlagShorthand = "m"
	mongoDBURLFlagUsage     = "MongoDB URL. Example: mongodb://mongodb.example.com:27017. " +
		commonEnvVarUsageText + mongoDBURLEnvKey
	mongoDBURLEnvKey = "VC_AUTH_MONGODB_URL"

	mongoDBDatabaseFlagName  = "mongodb-database"
	mongoDBDatabaseFlagUsage = "MongoDB database name. Default: vc_auth. " +
		commonEnvVarUsageText + mongoDBDatabaseEnvKey
	mongoDBDatabaseEnvKey = "VC_AUTH_MONGODB_DATABASE"

	redisURLFlagName  = "redis-url"
	redisURLFlagUsage = "Comma-separated list of Redis addresses. Example: localhost:6379. " +
		commonEnvVarUsageText + redisURLEnvKey
	redisURLEnvKey = "VC_AUTH_REDIS_URL"

	redisPasswordFlagName  = "redis-password"
	redisPasswordFlagUsage = "Redis password (optional). " + commonEnvVarUsageText + redisPasswordEnvKey
	redisPasswordEnvKey    = "VC_AUTH_REDIS_PASSWORD" //nolint: gosec

	verifierURLFlagName  = "verifier-url"
	verifierURLFlagUsage = "URL of the external presentation verification service. " +
		commonEnvVarUsageText + verifierURLEnvKey
	verifierURLEnvKey = "VC_AUTH_VERIFIER_URL"

	signingKeyFileFlagName  = "signing-key-file"
	signingKeyFileFlagUsage = "Path to a PEM file with the EC P-256 private key used to sign " +
		"request objects and tokens. " + commonEnvVarUsageText + signingKeyFileEnvKey
	signingKeyFileEnvKey = "VC_AUTH_SIGNING_KEY_FILE"

	signingKeyIDFlagName  = "signing-key-id"
	signingKeyIDFlagUsage = "kid header value of produced JWTs. Default: the issuer DID with #key-1 fragment. " +
		commonEnvVarUsageText + signingKeyIDEnvKey
	signingKeyIDEnvKey = "VC_AUTH_SIGNING_KEY_ID"

	credentialPatternsFileFlagName  = "credential-patterns-file"
	credentialPatternsFileFlagUsage = "Path to file with supported credential patterns. " +
		commonEnvVarUsageText + credentialPatternsFileEnvKey
	credentialPatternsFileEnvKey = "VC_AUTH_CREDENTIAL_PATTERNS_FILE"

	idpDelegatesFileFlagName  = "idp-delegates-file"
	idpDelegatesFileFlagUsage = "Path to file with delegate identity providers (optional). " +
		commonEnvVarUsageText + idpDelegatesFileEnvKey
	idpDelegatesFileEnvKey = "VC_AUTH_IDP_DELEGATES_FILE"

	defaultWalletRedirectURLFlagName  = "default-wallet-redirect-url"
	defaultWalletRedirectURLFlagUsage = "Wallet URL to redirect to when a session cannot be resolved. " +
		commonEnvVarUsageText + defaultWalletRedirectURLEnvKey
	defaultWalletRedirectURLEnvKey = "VC_AUTH_DEFAULT_WALLET_REDIRECT_URL"

	sessionTTLFlagName  = "session-ttl"
	sessionTTLFlagUsage = "Client session lifetime. Default: 15m. " +
		commonEnvVarUsageText + sessionTTLEnvKey
	sessionTTLEnvKey = "VC_AUTH_SESSION_TTL"

	tokenTTLFlagName  = "token-ttl"
	tokenTTLFlagUsage = "Access token lifetime. Default: 1h. " +
		commonEnvVarUsageText + tokenTTLEnvKey
	tokenTTLEnvKey = "VC_AUTH_TOKEN_TTL" //nolint: gosec

	eventTopicFlagName  = "event-topic"
	eventTopicFlagUsage = "The name of the authorization event topic. " +
		commonEnvVarUsageText + eventTopicEnvKey
	eventTopicEnvKey = "VC_AUTH_EVENT_TOPIC"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "VC_AUTH_TRACING_PROVIDER"
	tracingProviderFlagUsage = "The tracing provider (for example, JAEGER). " +
		commonEnvVarUsageText + tracingProviderEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "VC_AUTH_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: vc-auth. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	defaultMongoDBDatabase    = "vc_auth"
	defaultTracingServiceName = "vc-auth"
)

const (
	defaultSessionTTL = 15 * time.Minute
	defaultTokenTTL   = time.Hour
)

type startupParameters struct {
	hostURL                  string
	issuerURI                string
	issuerDID                string
	mongoDBURL               string
	mongoDBDatabase          string
	redisURLs                []string
	redisPassword            string
	verifierURL              string
	signingKeyFile           string
	signingKeyID             string
	credentialPatternsFile   string
	idpDelegatesFile         string
	defaultWalletRedirectURL string
	sessionTTL               time.Duration
	tokenTTL                 time.Duration
	eventTopic               string
	logLevel                 string
	tracingParams            *tracingParams
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

// nolint: funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	issuerURI, err := cmdutils.GetUserSetVarFromString(cmd, issuerURIFlagName, issuerURIEnvKey, false)
	if err != nil {
		return nil, err
	}

	issuerDID, err := cmdutils.GetUserSetVarFromString(cmd, issuerDIDFlagName, issuerDIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	mongoDBURL, err := cmdutils.GetUserSetVarFromString(cmd, mongoDBURLFlagName, mongoDBURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	mongoDBDatabase := cmdutils.GetUserSetOptionalVarFromString(cmd, mongoDBDatabaseFlagName, mongoDBDatabaseEnvKey)
	if mongoDBDatabase == "" {
		mongoDBDatabase = defaultMongoDBDatabase
	}

	redisURLs, err := cmdutils.GetUserSetVarFromArrayString(cmd, redisURLFlagName, redisURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	redisPassword := cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey)

	verifierURL, err := cmdutils.GetUserSetVarFromString(cmd, verifierURLFlagName, verifierURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	signingKeyFile, err := cmdutils.GetUserSetVarFromString(cmd, signingKeyFileFlagName, signingKeyFileEnvKey, false)
	if err != nil {
		return nil, err
	}

	signingKeyID := cmdutils.GetUserSetOptionalVarFromString(cmd, signingKeyIDFlagName, signingKeyIDEnvKey)
	if signingKeyID == "" {
		signingKeyID = issuerDID + "#key-1"
	}

	credentialPatternsFile, err := cmdutils.GetUserSetVarFromString(cmd, credentialPatternsFileFlagName,
		credentialPatternsFileEnvKey, false)
	if err != nil {
		return nil, err
	}

	idpDelegatesFile := cmdutils.GetUserSetOptionalVarFromString(cmd, idpDelegatesFileFlagName, idpDelegatesFileEnvKey)

	defaultWalletRedirectURL, err := cmdutils.GetUserSetVarFromString(cmd, defaultWalletRedirectURLFlagName,
		defaultWalletRedirectURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := getDuration(cmd, sessionTTLFlagName, sessionTTLEnvKey, defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	tokenTTL, err := getDuration(cmd, tokenTTLFlagName, tokenTTLEnvKey, defaultTokenTTL)
	if err != nil {
		return nil, err
	}

	eventTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, eventTopicFlagName, eventTopicEnvKey)
	if eventTopic == "" {
		eventTopic = spi.AuthorizationEventTopic
	}

	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:                  hostURL,
		issuerURI:                issuerURI,
		issuerDID:                issuerDID,
		mongoDBURL:               mongoDBURL,
		mongoDBDatabase:          mongoDBDatabase,
		redisURLs:                redisURLs,
		redisPassword:            redisPassword,
		verifierURL:              verifierURL,
		signingKeyFile:           signingKeyFile,
		signingKeyID:             signingKeyID,
		credentialPatternsFile:   credentialPatternsFile,
		idpDelegatesFile:         idpDelegatesFile,
		defaultWalletRedirectURL: defaultWalletRedirectURL,
		sessionTTL:               sessionTTL,
		tokenTTL:                 tokenTTL,
		eventTopic:               eventTopic,
		logLevel:                 logLevel,
		tracingParams:            tracingParams,
	}, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	params := &tracingParams{
		exporter:    cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey),
		serviceName: serviceName,
	}

	if !tracing.IsExporterSupported(params.exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", params.exporter)
	}

	return params, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(issuerURIFlagName, issuerURIFlagShorthand, "", issuerURIFlagUsage)
	startCmd.Flags().StringP(issuerDIDFlagName, "", "", issuerDIDFlagUsage)
	startCmd.Flags().StringP(mongoDBURLFlagName, mongoDBURLFlagShorthand, "", mongoDBURLFlagUsage)
	startCmd.Flags().StringP(mongoDBDatabaseFlagName, "", "", mongoDBDatabaseFlagUsage)
	startCmd.Flags().StringArrayP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(verifierURLFlagName, "", "", verifierURLFlagUsage)
	startCmd.Flags().StringP(signingKeyFileFlagName, "", "", signingKeyFileFlagUsage)
	startCmd.Flags().StringP(signingKeyIDFlagName, "", "", signingKeyIDFlagUsage)
	startCmd.Flags().StringP(credentialPatternsFileFlagName, "", "", credentialPatternsFileFlagUsage)
	startCmd.Flags().StringP(idpDelegatesFileFlagName, "", "", idpDelegatesFileFlagUsage)
	startCmd.Flags().StringP(defaultWalletRedirectURLFlagName, "", "", defaultWalletRedirectURLFlagUsage)
	startCmd.Flags().StringP(sessionTTLFlagName, "", "", sessionTTLFlagUsage)
	startCmd.Flags().StringP(tokenTTLFlagName, "", "", tokenTTLFlagUsage)
	startCmd.Flags().StringP(eventTopicFlagName, "", "", eventTopicFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	startCmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)
}
