package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/database/mongoclient"
	"github.com/auton-labs/goapi/base/env"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/base/sweeper"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	mmiddleware "github.com/auton-labs/goapi/middleware"
	"github.com/auton-labs/goapi/service/ledger"
	"github.com/auton-labs/goapi/service/notifier"
	"github.com/auton-labs/goapi/service/query"
	payment_repository "github.com/auton-labs/goapi/stores/payment/repository"
	payment_usecase "github.com/auton-labs/goapi/stores/payment/usecase"
	vault_repository "github.com/auton-labs/goapi/stores/vault/repository"
	vault_usecase "github.com/auton-labs/goapi/stores/vault/usecase"
)

func init() {
	pflag.String("config", "infra/configs/sweeper/config.yaml", "path to the config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// start server to pass cloud run health check
	startEchoServer()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	sweepInterval := viper.GetDuration("sweeper.interval")
	sweepWorkers := viper.GetInt("sweeper.workers")

	ctx.WithFields(log.Fields{
		"sweeper.interval": sweepInterval,
		"sweeper.workers":  sweepWorkers,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	vaultWallet, err := wallet.NewFromBase58(env.VaultKey())
	if err != nil {
		ctx.WithField("err", err).Panic("AUTON_VAULT_KEY rejected")
	}

	network := domain.Network(viper.GetString("ledger.network"))
	ledgerClient, err := ledger.NewClient(ctx, &ledger.ClientCfg{
		Network:  network,
		Url:      viper.GetString("ledger.rpcUrl"),
		Throttle: viper.GetInt("ledger.maxConcurrent"),
		Timeout:  viper.GetDuration("ledger.timeout"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("ledger client init failed")
	}

	notifierService := notifier.NewDiscord(&notifier.DiscordCfg{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
	})

	// repos
	paymentRepo := payment_repository.New(q)
	vaultRepo := vault_repository.New(q)

	// usecases, the sweeper only walks the intent store and the vault
	paymentUC := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		Repo: paymentRepo,
	})
	vaultUC := vault_usecase.New(&vault_usecase.VaultUseCaseCfg{
		Repo:         vaultRepo,
		Ledger:       ledgerClient,
		Wallet:       vaultWallet,
		Network:      network,
		BalanceFloor: viper.GetInt64("vault.balanceFloor"),
	})

	errCh := make(chan error, 10)
	s := sweeper.New(&sweeper.SweeperCfg{
		PaymentUC: paymentUC,
		VaultUC:   vaultUC,
		Notifier:  notifierService,
		Workers:   sweepWorkers,
		Interval:  sweepInterval,
		ErrorCh:   errCh,
	})
	s.Start(ctx)

	// wait for first error
	err = <-errCh
	ctx.WithField("err", err).Error("sweeper error")
	go func() {
		for range errCh {
		}
	}()
	cancel()
	s.Wait()
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
