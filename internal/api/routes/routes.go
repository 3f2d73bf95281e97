package routes

import (
	"bowls-club-backend/internal/api/handlers"
	"bowls-club-backend/internal/api/middleware"
	"bowls-club-backend/internal/auth"
	"bowls-club-backend/internal/config"
	"bowls-club-backend/internal/repository"
	"bowls-club-backend/internal/service"
	"bowls-club-backend/internal/storage"
	"bowls-club-backend/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SiteMounts are the prefixes the public pages are served under
var SiteMounts = []string{"/", "/bowls_club/"}

// SetupRoutes configures all the routes for the application. uploader may be
// nil, in which case sponsor logo uploads answer 503.
func SetupRoutes(db *gorm.DB, cfg *config.Config, uploader storage.FileUploader) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	clubRepo := repository.NewOwnClubRepository(db)
	competitionRepo := repository.NewCompetitionRepository(db)
	oppositionTeamRepo := repository.NewOppositionTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	rinkRepo := repository.NewRinkRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)

	// Initialize services
	clubService := service.NewClubService(clubRepo, validator)
	competitionService := service.NewCompetitionService(competitionRepo, validator)
	oppositionTeamService := service.NewOppositionTeamService(oppositionTeamRepo, validator)
	memberService := service.NewMemberService(memberRepo, paymentRepo, validator)
	matchService := service.NewMatchService(matchRepo, competitionRepo, oppositionTeamRepo, clubRepo, cfg.ClubShortName, validator)
	rinkService := service.NewRinkService(rinkRepo, matchRepo, clubRepo, cfg.ClubShortName, validator)
	sponsorService := service.NewSponsorService(sponsorRepo, uploader, validator)
	siteService := service.NewSiteService(competitionRepo, matchRepo, memberRepo, sponsorRepo, clubRepo, cfg.ClubShortName)

	// Initialize auth
	authConfig := auth.NewAuthConfig(cfg)
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, err
	}
	if !authConfig.LoginEnabled() {
		logrus.Warn("ADMIN_PASSWORD_HASH is not set; admin login is disabled")
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, uploader != nil)
	clubHandler := handlers.NewClubHandler(clubService)
	competitionHandler := handlers.NewCompetitionHandler(competitionService)
	oppositionTeamHandler := handlers.NewOppositionTeamHandler(oppositionTeamService)
	memberHandler := handlers.NewMemberHandler(memberService)
	matchHandler := handlers.NewMatchHandler(matchService)
	rinkHandler := handlers.NewRinkHandler(rinkService)
	sponsorHandler := handlers.NewSponsorHandler(sponsorService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public site
	for _, base := range SiteMounts {
		site := handlers.NewSiteHandler(siteService, cfg.ClubShortName, base)
		pages := router.Group(base)
		{
			pages.GET("", site.Index)
			pages.GET("home/", site.Home)
			pages.GET("players/", site.Players)
			pages.GET("competitions/", site.Competitions)
			pages.GET("sponsors/", site.Sponsors)
			pages.GET("fixtures_results/:competition_id/", site.FixturesResults)
		}
		if base == "/" {
			router.NoRoute(site.NotFound)
		}
	}

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Club profile routes
		club := v1.Group("/club")
		{
			club.GET("", clubHandler.GetClub)
			club.POST("", clubHandler.CreateClub)
			club.PUT("", clubHandler.UpdateClub)
			club.DELETE("", clubHandler.DeleteClub)
			club.GET("/permissions", clubHandler.Permissions)
		}

		// Competition routes
		competitions := v1.Group("/competitions")
		{
			competitions.GET("", competitionHandler.ListCompetitions)
			competitions.POST("", competitionHandler.CreateCompetition)
			competitions.GET("/:id", competitionHandler.GetCompetition)
			competitions.PUT("/:id", competitionHandler.UpdateCompetition)
			competitions.DELETE("/:id", competitionHandler.DeleteCompetition)
		}

		// Opposition team routes
		teams := v1.Group("/opposition-teams")
		{
			teams.GET("", oppositionTeamHandler.ListOppositionTeams)
			teams.POST("", oppositionTeamHandler.CreateOppositionTeam)
			teams.GET("/:id", oppositionTeamHandler.GetOppositionTeam)
			teams.PUT("/:id", oppositionTeamHandler.UpdateOppositionTeam)
			teams.PUT("/:id/competitions", oppositionTeamHandler.SetCompetitions)
			teams.DELETE("/:id", oppositionTeamHandler.DeleteOppositionTeam)
		}

		// Member routes
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.GET("/:id/payments", memberHandler.ListPayments)
			members.POST("/:id/payments", memberHandler.AddPayment)
		}
		v1.DELETE("/payments/:id", memberHandler.DeletePayment)

		// Match routes
		matches := v1.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.POST("", matchHandler.CreateMatch)
			matches.GET("/:id", matchHandler.GetMatch)
			matches.PUT("/:id", matchHandler.UpdateMatch)
			matches.DELETE("/:id", matchHandler.DeleteMatch)
		}

		// Rink routes
		rinks := v1.Group("/rinks")
		{
			rinks.GET("", rinkHandler.ListRinks)
			rinks.POST("", rinkHandler.CreateRink)
			rinks.GET("/:id", rinkHandler.GetRink)
			rinks.PUT("/:id", rinkHandler.UpdateRink)
			rinks.DELETE("/:id", rinkHandler.DeleteRink)
			rinks.PUT("/:id/players", rinkHandler.SetPlayers)
			rinks.POST("/:id/players", rinkHandler.AddPlayer)
			rinks.DELETE("/:id/players/:memberId", rinkHandler.RemovePlayer)
		}

		// Sponsor routes
		sponsors := v1.Group("/sponsors")
		{
			sponsors.GET("", sponsorHandler.ListSponsors)
			sponsors.POST("", sponsorHandler.CreateSponsor)
			sponsors.GET("/:id", sponsorHandler.GetSponsor)
			sponsors.PUT("/:id", sponsorHandler.UpdateSponsor)
			sponsors.PUT("/:id/logo", sponsorHandler.UploadLogo)
			sponsors.DELETE("/:id", sponsorHandler.DeleteSponsor)
		}
	}

	return router, nil
}
