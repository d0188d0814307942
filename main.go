package main

import (
	"context"

	"govex/config"
	"govex/cookies"
	"govex/engine"
	"govex/fingerprint"
	"govex/logger"
	"govex/provider"
	"govex/proxy"
	"govex/server"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// load environment variables and configurations
	config.Load()
	logger.SetLevel(config.Env.LogLevel)

	rotator := fingerprint.NewRotator()
	cookieStore := cookies.NewStoreFromEnv()
	proxyPool := proxy.NewPool(config.Env.ProxyList)
	extractionEngine := engine.NewFromEnv(rotator, cookieStore, proxyPool)

	if proxyPool.Size() > 0 {
		zap.S().Infof("probing %d configured proxies", proxyPool.Size())
		proxyPool.Probe(context.Background(), "https://www.youtube.com/")
	}

	providers := []provider.Provider{
		provider.NewRemote(config.Env.ServiceBaseURL, nil),
		provider.NewLocal(extractionEngine),
		provider.NewThirdParty(config.Env.ThirdPartyAPIURL, config.Env.ThirdPartyAPIKey, nil),
	}
	manager := provider.NewManager(providers, config.Env.MaxRetries)

	srv := server.New(manager, extractionEngine, cookieStore, proxyPool)
	if err := srv.Run(config.Env.Port); err != nil {
		zap.S().Fatalf("server stopped: %v", err)
	}
}
