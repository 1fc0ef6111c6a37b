package main

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/auton-labs/goapi/base/crypter"
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/database/mongoclient"
	"github.com/auton-labs/goapi/base/database/redisclient"
	"github.com/auton-labs/goapi/base/env"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/base/metrics"
	bValidator "github.com/auton-labs/goapi/base/validator"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	mmiddleware "github.com/auton-labs/goapi/middleware"
	"github.com/auton-labs/goapi/service/ledger"
	"github.com/auton-labs/goapi/service/notifier"
	"github.com/auton-labs/goapi/service/pinata"
	"github.com/auton-labs/goapi/service/query"
	"github.com/auton-labs/goapi/service/redis"
	access_repository "github.com/auton-labs/goapi/stores/access/repository"
	access_usecase "github.com/auton-labs/goapi/stores/access/usecase"
	asset_repository "github.com/auton-labs/goapi/stores/asset/repository"
	auth_delivery "github.com/auton-labs/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/auton-labs/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/auton-labs/goapi/stores/auth/usecase"
	content_delivery "github.com/auton-labs/goapi/stores/content/delivery/http"
	content_repository "github.com/auton-labs/goapi/stores/content/repository"
	content_usecase "github.com/auton-labs/goapi/stores/content/usecase"
	creator_delivery "github.com/auton-labs/goapi/stores/creator/delivery/http"
	creator_repository "github.com/auton-labs/goapi/stores/creator/repository"
	creator_usecase "github.com/auton-labs/goapi/stores/creator/usecase"
	file_usecase "github.com/auton-labs/goapi/stores/file/usecase"
	hc_delivery "github.com/auton-labs/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/auton-labs/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/auton-labs/goapi/stores/healthcheck/usecase"
	payment_delivery "github.com/auton-labs/goapi/stores/payment/delivery/http"
	payment_repository "github.com/auton-labs/goapi/stores/payment/repository"
	payment_usecase "github.com/auton-labs/goapi/stores/payment/usecase"
	sponsorship_delivery "github.com/auton-labs/goapi/stores/sponsorship/delivery/http"
	sponsorship_repository "github.com/auton-labs/goapi/stores/sponsorship/repository"
	sponsorship_usecase "github.com/auton-labs/goapi/stores/sponsorship/usecase"
	vault_delivery "github.com/auton-labs/goapi/stores/vault/delivery/http"
	vault_repository "github.com/auton-labs/goapi/stores/vault/repository"
	vault_usecase "github.com/auton-labs/goapi/stores/vault/usecase"
	webresource_repository "github.com/auton-labs/goapi/stores/web_resource/repository"
	webresource_usecase "github.com/auton-labs/goapi/stores/web_resource/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/auton-labs/goapi/app/api/docs"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to the config file")
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

//	@title			Auton API
//	@version		1.0
//	@description	API document for the Auton creator content platform.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// secrets, refuse to boot without them
	accessSecret := env.AccessSecret()
	if len(accessSecret) == 0 {
		context.Panic("AUTON_ACCESS_SECRET is not set")
	}
	contentKey, err := hex.DecodeString(env.ContentKey())
	if err != nil {
		context.WithField("err", err).Panic("AUTON_CONTENT_KEY is not valid hex")
	}
	crypterService, err := crypter.New(contentKey)
	if err != nil {
		context.WithField("err", err).Panic("AUTON_CONTENT_KEY rejected")
	}
	vaultWallet, err := wallet.NewFromBase58(env.VaultKey())
	if err != nil {
		context.WithField("err", err).Panic("AUTON_VAULT_KEY rejected")
	}
	context.WithField("vault", vaultWallet.Address()).Info("vault wallet loaded")

	// init ledger client
	network := domain.Network(viper.GetString("ledger.network"))
	ledgerClient, err := ledger.NewClient(context, &ledger.ClientCfg{
		Network:  network,
		Url:      viper.GetString("ledger.rpcUrl"),
		Throttle: viper.GetInt("ledger.maxConcurrent"),
		Timeout:  viper.GetDuration("ledger.timeout"),
	})
	if err != nil {
		context.WithField("err", err).Panic("ledger client init failed")
	}

	notifierService := notifier.NewDiscord(&notifier.DiscordCfg{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
	})

	pinata := pinata.New(viper.GetString("pinata.apiKey"), viper.GetString("pinata.apiSecret"))

	ipfsShell := ipfsapi.NewShell(viper.GetString("ipfs.api"))
	ipfsTimeout := viper.GetDuration("ipfs.timeout")
	httpTimeout := viper.GetDuration("http.timeout")
	httpClient := http.Client{}
	storageClient, err := storage.NewClient(context)
	if err != nil {
		context.WithField("err", err).Panic("storage.NewClient failed")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	creatorRepo := creator_repository.New(q, redisCache)
	contentRepo := content_repository.New(q)
	assetRepo := asset_repository.NewAssetRepo(q)
	paymentRepo := payment_repository.New(q)
	accessRepo := access_repository.New(q)
	sponsorshipRepo := sponsorship_repository.New(q)
	vaultRepo := vault_repository.New(q)

	httpRepo := webresource_repository.NewHttpReaderRepo(httpClient, httpTimeout, nil)
	datauriRepo := webresource_repository.NewDataUriReaderRepo()
	aruriRepo := webresource_repository.NewArReaderRepo(httpClient, httpTimeout, nil)
	ipfsNodeRepo := webresource_repository.NewIpfsNodeApiReaderRepo(ipfsShell, ipfsTimeout)
	cloudStorageRepo, err := webresource_repository.NewCloudStorageWriterRepo(&webresource_repository.CloudStorageWriterRepoCfg{
		Timeout:    viper.GetDuration("cloud-storage.timeout"),
		Client:     storageClient,
		BucketName: viper.GetString("cloud-storage.bucket"),
		Url:        viper.GetString("cloud-storage.url"),
	})
	if err != nil {
		context.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
	}

	webResourceUseCase := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:         httpRepo,
		IpfsReader:         ipfsNodeRepo,
		DataUriReader:      datauriRepo,
		ArUriReader:        aruriRepo,
		CloudStorageWriter: cloudStorageRepo,
	})
	file := file_usecase.New(pinata)
	hc := hc_usecase.New(hcRepo)
	creator := creator_usecase.New(&creator_usecase.CreatorUseCaseCfg{
		Repo:            creatorRepo,
		ContentRepo:     contentRepo,
		FileUC:          file,
		SignatureMsg:    viper.GetString("auth.signatureMsg"),
		RegistrationMsg: viper.GetString("creator.registrationMsg"),
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), creator)
	issuer := access_usecase.NewTokenIssuer([]byte(accessSecret), viper.GetDuration("platform.accessTokenTtl"))
	access := access_usecase.New(&access_usecase.AccessUseCaseCfg{
		Repo:   accessRepo,
		Issuer: issuer,
	})
	vaultUsecase := vault_usecase.New(&vault_usecase.VaultUseCaseCfg{
		Repo:         vaultRepo,
		Ledger:       ledgerClient,
		Wallet:       vaultWallet,
		Network:      network,
		BalanceFloor: viper.GetInt64("vault.balanceFloor"),
	})
	verifier := payment_usecase.NewVerifier(&payment_usecase.VerifierCfg{
		Ledger:   ledgerClient,
		Attempts: viper.GetInt("ledger.verifyAttempts"),
		Interval: viper.GetDuration("ledger.verifyInterval"),
	})
	payment := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		Repo:        paymentRepo,
		ContentRepo: contentRepo,
		CreatorRepo: creatorRepo,
		AssetRepo:   assetRepo,
		AccessUC:    access,
		VaultUC:     vaultUsecase,
		Verifier:    verifier,
		Crypter:     crypterService,
		Notifier:    notifierService,
		Treasury:    domain.Address(viper.GetString("platform.treasury")),
		Network:     network,
		FeeBps:      viper.GetInt64("platform.feeBps"),
		IntentTtl:   viper.GetDuration("platform.intentTtl"),
		IpfsGateway: viper.GetString("ipfs.gateway"),
	})
	content := content_usecase.New(&content_usecase.ContentUseCaseCfg{
		Repo:        contentRepo,
		CreatorRepo: creatorRepo,
		AssetRepo:   assetRepo,
		PaymentRepo: paymentRepo,
		AccessUC:    access,
		PaymentUC:   payment,
		FileUC:      file,
		WebResource: webResourceUseCase,
		Crypter:     crypterService,
		PreviewLen:  viper.GetInt("content.previewLen"),
		IpfsGateway: viper.GetString("ipfs.gateway"),
	})
	sponsorship := sponsorship_usecase.New(&sponsorship_usecase.SponsorshipUseCaseCfg{
		Repo:            sponsorshipRepo,
		CreatorRepo:     creatorRepo,
		Ledger:          ledgerClient,
		Redis:           redisCache,
		VaultUC:         vaultUsecase,
		Notifier:        notifierService,
		Vault:           vaultWallet,
		Network:         network,
		Lamports:        viper.GetInt64("sponsorship.lamports"),
		DustLamports:    viper.GetInt64("sponsorship.dustThreshold"),
		MessageTtl:      viper.GetDuration("sponsorship.messageTtl"),
		ConfirmAttempts: viper.GetInt("sponsorship.confirmAttempts"),
		ConfirmInterval: viper.GetDuration("sponsorship.confirmInterval"),
		MaxPerIp:        viper.GetInt("sponsorship.maxPerIp"),
		MinAccountAge:   viper.GetDuration("sponsorship.minAccountAge"),
	})

	// payable assets ride in on the config, restarts converge the catalog
	assets := viper.Sub("assets")
	if assets == nil {
		context.Panic("assets config is missing")
	}
	for k := range assets.AllSettings() {
		asset := &domain.Asset{
			Symbol:    assets.GetString(fmt.Sprintf("%s.symbol", k)),
			Name:      assets.GetString(fmt.Sprintf("%s.name", k)),
			Kind:      domain.AssetKind(assets.GetString(fmt.Sprintf("%s.kind", k))),
			Decimals:  assets.GetInt32(fmt.Sprintf("%s.decimals", k)),
			Mint:      domain.Address(assets.GetString(fmt.Sprintf("%s.mint", k))),
			IsMainnet: assets.GetBool(fmt.Sprintf("%s.isMainnet", k)),
		}
		if err := assetRepo.Upsert(context, asset); err != nil {
			context.WithField("err", err).WithField("asset", asset.Symbol).Panic("asset seeding failed")
		}
		context.WithField("asset", asset.Symbol).Info("seeded payable asset")
	}

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)
	rateLimiter := mmiddleware.NewRateLimiter(&mmiddleware.RateLimitCfg{
		Limit:  viper.GetInt("sponsorship.rateLimit"),
		Window: viper.GetDuration("sponsorship.rateWindow"),
	})

	hc_delivery.New(e, hc, network)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	creator_delivery.New(e, creator, content, authMiddleware)
	content_delivery.New(e, content, authMiddleware)
	payment_delivery.New(e, payment)
	sponsorship_delivery.New(e, sponsorship, authMiddleware, rateLimiter.Middleware())
	vault_delivery.New(e, vaultUsecase, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
