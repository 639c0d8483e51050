package app

import (
	accountAPI "casino_simulator/internal/api/account"
	authAPI "casino_simulator/internal/api/auth"
	gameAPI "casino_simulator/internal/api/game"
	minesweeperAPI "casino_simulator/internal/api/minesweeper"
	"casino_simulator/internal/config"
	"casino_simulator/internal/config/env"
	"casino_simulator/internal/logger"
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/payout"
	"casino_simulator/internal/random"
	"casino_simulator/internal/repository"
	"casino_simulator/internal/repository/board_repo"
	"casino_simulator/internal/repository/match_repo"
	"casino_simulator/internal/repository/memory"
	"casino_simulator/internal/repository/player_repo"
	"casino_simulator/internal/repository/ratelimit_repo"
	"casino_simulator/internal/repository/schema"
	"casino_simulator/internal/repository/stats_repo"
	"casino_simulator/internal/scheduler"
	"casino_simulator/internal/service"
	"casino_simulator/internal/service/account"
	"casino_simulator/internal/service/auth"
	"casino_simulator/internal/service/game"
	"casino_simulator/internal/service/minesweeper"
	"context"
	"net/http"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Окно ограничения ставок
const playRateWindow = time.Minute

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database. Без PG_DSN игроки и матчи живут в памяти
	pgConfig    config.PGConfig
	pgResolved  bool
	dbClient    *pgxpool.Pool
	memoryStore *memory.Store

	// Redis. Без REDIS_ADDR поля сапёра и лимиты живут в памяти
	redisConfig   config.RedisConfig
	redisResolved bool
	redisClient   *redis.Client
	memoryBoards  *memory.Boards

	// Repositories
	playerRepo    repository.PlayerRepository
	matchRepo     repository.MatchRepository
	boardRepo     repository.BoardRepository
	rateLimitRepo repository.RateLimitRepository
	statsRepo     repository.StatsRepository

	// Games
	gamesCfg config.GamesConfig
	random   random.Provider
	engine   *payout.Engine

	// Services
	jwtCfg          config.JWTConfig
	authServ        service.AuthService
	accountServ     service.AccountService
	gameServ        service.GameService
	minesweeperServ service.MinesweeperService

	// Handlers
	authHand        *authAPI.Handler
	accountHand     *accountAPI.Handler
	gameHand        *gameAPI.Handler
	minesweeperHand *minesweeperAPI.Handler

	scheduler *scheduler.Scheduler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

// PgConfig возвращает nil, если PG_DSN не задан
func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if !sp.pgResolved {
		cfg, err := env.NewPGConfig()
		if err != nil {
			logger.Log.Warn("postgres is not configured, using in-memory storage", zap.Error(err))
		}
		sp.pgConfig = cfg
		sp.pgResolved = true
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = schema.Apply(ctx, dbc)
		if err != nil {
			panic("failed to apply schema: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) MemoryStore() *memory.Store {
	if sp.memoryStore == nil {
		sp.memoryStore = memory.NewStore()
	}
	return sp.memoryStore
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.PgConfig() == nil {
			sp.txManager = sp.MemoryStore().TxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) PlayerRepo(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		if sp.PgConfig() == nil {
			sp.playerRepo = sp.MemoryStore()
		} else {
			sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx))
		}
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) MatchRepo(ctx context.Context) repository.MatchRepository {
	if sp.matchRepo == nil {
		if sp.PgConfig() == nil {
			sp.matchRepo = sp.MemoryStore()
		} else {
			sp.matchRepo = match_repo.NewMatchRepository(sp.DBClient(ctx))
		}
	}
	return sp.matchRepo
}

// RedisConfig возвращает nil, если REDIS_ADDR не задан
func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if !sp.redisResolved {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			logger.Log.Warn("redis is not configured, using in-memory boards and rate limits", zap.Error(err))
		}
		sp.redisConfig = cfg
		sp.redisResolved = true
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		cfg := sp.RedisConfig()
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
}

// MemoryBoards - поля в памяти, nil при работе через Redis
func (sp *ServiceProvider) MemoryBoards() *memory.Boards {
	if sp.memoryBoards == nil && sp.RedisConfig() == nil {
		sp.memoryBoards = memory.NewBoards(sp.GamesCfg().BoardTTL())
	}
	return sp.memoryBoards
}

func (sp *ServiceProvider) BoardRepo(ctx context.Context) repository.BoardRepository {
	if sp.boardRepo == nil {
		if sp.RedisConfig() == nil {
			sp.boardRepo = sp.MemoryBoards()
		} else {
			sp.boardRepo = board_repo.NewBoardRepository(sp.RedisClient(ctx), sp.GamesCfg().BoardTTL())
		}
	}
	return sp.boardRepo
}

func (sp *ServiceProvider) RateLimitRepo(ctx context.Context) repository.RateLimitRepository {
	if sp.rateLimitRepo == nil {
		if sp.RedisConfig() == nil {
			sp.rateLimitRepo = memory.NewRateLimiter()
		} else {
			sp.rateLimitRepo = ratelimit_repo.NewRateLimitRepository(sp.RedisClient(ctx))
		}
	}
	return sp.rateLimitRepo
}

func (sp *ServiceProvider) StatsRepo() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) Random() random.Provider {
	if sp.random == nil {
		sp.random = random.New(sp.GamesCfg().SlotSymbols(), sp.GamesCfg().DiceCount())
	}
	return sp.random
}

func (sp *ServiceProvider) PayoutEngine() *payout.Engine {
	if sp.engine == nil {
		sp.engine = payout.NewEngine(sp.GamesCfg())
	}
	return sp.engine
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(
			sp.TXManager(ctx),
			sp.PlayerRepo(ctx),
			sp.MatchRepo(ctx),
			sp.GamesCfg().MinFirstDeposit(),
		)
	}
	return sp.accountServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.PayoutEngine(),
			sp.Random(),
			sp.AccountService(ctx),
			sp.PlayerRepo(ctx),
			sp.StatsRepo(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) MinesweeperService(ctx context.Context) service.MinesweeperService {
	if sp.minesweeperServ == nil {
		sp.minesweeperServ = minesweeper.NewMinesweeperService(
			sp.PayoutEngine(),
			sp.Random(),
			sp.AccountService(ctx),
			sp.PlayerRepo(ctx),
			sp.BoardRepo(ctx),
			sp.StatsRepo(),
			sp.GamesCfg().BoardSize(),
			sp.GamesCfg().BoardMines(),
		)
	}
	return sp.minesweeperServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.PlayerRepo(ctx), sp.MinesweeperService(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:        sp.AuthService(ctx),
			TokenMaxAge: sp.JWTCfg().AccessTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{Serv: sp.AccountService(ctx)})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) MinesweeperHandler(ctx context.Context) *minesweeperAPI.Handler {
	if sp.minesweeperHand == nil {
		sp.minesweeperHand = minesweeperAPI.NewHandler(minesweeperAPI.HandlerDeps{Serv: sp.MinesweeperService(ctx)})
	}
	return sp.minesweeperHand
}

// Scheduler - периодическая уборка полей сапёра, которые хранятся в памяти
func (sp *ServiceProvider) Scheduler() *scheduler.Scheduler {
	if sp.scheduler == nil {
		s := scheduler.New()
		if boards := sp.MemoryBoards(); boards != nil {
			if err := s.AddBoardSweep(boards); err != nil {
				panic("failed to schedule board sweep: " + err.Error())
			}
		}
		sp.scheduler = s
	}
	return sp.scheduler
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = newRouter(routerDeps{
			auth:           sp.AuthHandler(ctx),
			account:        sp.AccountHandler(ctx),
			game:           sp.GameHandler(ctx),
			minesweeper:    sp.MinesweeperHandler(ctx),
			secretKey:      sp.JWTCfg().AccessTokenSecretKey(),
			limiter:        sp.RateLimitRepo(ctx),
			playsPerMinute: sp.GamesCfg().PlaysPerMinute(),
		})
	}

	return sp.router
}

type routerDeps struct {
	auth           *authAPI.Handler
	account        *accountAPI.Handler
	game           *gameAPI.Handler
	minesweeper    *minesweeperAPI.Handler
	secretKey      []byte
	limiter        repository.RateLimitRepository
	playsPerMinute int
}

func newRouter(deps routerDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger)

		r.Post("/login", deps.auth.Login)
		r.Get("/stats", deps.game.Stats)

		// Дальше только с access токеном
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.secretKey))

			r.Post("/logout", deps.auth.Logout)
			r.Post("/deposit", deps.account.Deposit)
			r.Get("/balance", deps.account.Balance)
			r.Get("/history", deps.account.History)

			playLimit := middleware.RateLimit(deps.limiter, "play", deps.playsPerMinute, playRateWindow)

			r.With(playLimit).Post("/play/{game}", deps.game.Play)

			r.Route("/minesweeper", func(rr chi.Router) {
				rr.Get("/", deps.minesweeper.Board)
				rr.With(playLimit).Post("/start", deps.minesweeper.Start)
				rr.With(playLimit).Post("/click/{row}/{col}", deps.minesweeper.Click)
			})
		})
	})

	return r
}

// Close закрывает соединения с внешними хранилищами
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			logger.Log.Warn("failed to close redis client", zap.Error(err))
		}
	}
}
