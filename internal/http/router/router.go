package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/config"
	"github.com/ignatzorin/web3-freelance/internal/http/middleware"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/handler"
	"github.com/ignatzorin/web3-freelance/internal/metrics"
)

// Handlers - все обработчики, которые подключает роутер.
type Handlers struct {
	Account  *handler.AccountHandler
	Job      *handler.JobHandler
	Pick     *handler.PickHandler
	Chat     *handler.ChatHandler
	File     *handler.FileHandler
	Dispute  *handler.DisputeHandler
	Settings *handler.SettingsHandler
	Operator *handler.OperatorHandler
	Health   *handler.HealthHandler
}

// Auth - зависимости AuthMiddleware.
type Auth struct {
	Tokens middleware.TokenParser
	Users  middleware.UserFinder
}

func SetupRouter(cfg *config.Config, h Handlers, auth Auth) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	requireAuth := middleware.AuthMiddleware(auth.Tokens, auth.Users)
	rateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	validID := middleware.IDValidator("id")

	// Публичные маршруты
	api.POST("/login", rateLimit, h.Account.Login)
	api.POST("/upload-file", rateLimit, h.File.Upload)
	api.GET("/read-file/:name", h.File.Read)
	api.GET("/job-types", h.Job.ListJobTypes)
	api.GET("/jobs", h.Job.ListJobs)
	api.GET("/jobs/newest", h.Job.ListNewest)
	api.GET("/jobs/:id", validID, h.Job.GetJob)
	api.GET("/top-freelancers", h.Job.TopFreelancers)
	api.GET("/users/:wallet/resume", h.Account.PublicResume)
	api.GET("/settings/platform-fee", h.Settings.PlatformFee)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(requireAuth)
	{
		protected.GET("/user/info", h.Account.GetInfo)
		protected.PUT("/user/update", h.Account.UpdateProfile)

		protected.POST("/jobs", h.Job.CreateJob)
		protected.GET("/jobs/by-client", h.Job.ListByClient)
		protected.GET("/jobs/by-freelancer", h.Job.ListByFreelancer)
		protected.DELETE("/jobs/:id", validID, h.Job.DeleteJob)

		protected.POST("/jobs/:id/pick", validID, h.Pick.PickJob)
		protected.GET("/jobs/:id/picks", validID, h.Pick.ListPicks)

		protected.GET("/jobs/:id/chat", validID, h.Chat.ListMessages)
		protected.POST("/jobs/:id/chat", validID, h.Chat.SendMessage)

		protected.POST("/jobs/:id/dispute", validID, h.Dispute.Open)
		protected.GET("/jobs/:id/dispute", validID, h.Dispute.Get)
	}

	// Служебные маршруты обходчика событий
	internal := api.Group("/internal")
	internal.Use(middleware.WorkerKeyMiddleware(cfg.WorkerAPIKey))
	{
		internal.POST("/jobs/:id/events", validID, h.Operator.ReportEvent)
		internal.POST("/jobs/:id/dispute/resolve", validID, h.Operator.ResolveDispute)
		internal.GET("/crawl/:key", h.Operator.GetCursor)
		internal.PUT("/crawl/:key", h.Operator.SaveCursor)
	}

	return r
}
