package app

import (
	"skillpath_backend/docs"
	"skillpath_backend/internal/config"
	"skillpath_backend/internal/middleware"
	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerLearnerRoutes(authGroup, c)
	}

	// 3. 管理员内容维护接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 目录类：游客可浏览，登录用户带活跃时间戳
		public.GET("/roadmaps", middleware.TryAuthMiddleware(a.Config), c.roadmap.ListRoadmaps)
		public.GET("/roadmaps/:id", middleware.TryAuthMiddleware(a.Config), c.roadmap.GetRoadmap)
		public.GET("/quizzes", middleware.TryAuthMiddleware(a.Config), c.quiz.ListQuizzes)
		public.GET("/quizzes/:id", middleware.TryAuthMiddleware(a.Config), c.quiz.GetQuiz)
		public.GET("/leaderboard", c.leaderboard.GetLeaderboard)
		public.GET("/achievements", c.achievement.ListBadges)
		public.GET("/projects", c.project.ListProjects)
	}
}

func (a *App) registerLearnerRoutes(group *gin.RouterGroup, c *controllers) {
	// 个人资料
	group.GET("/profile", c.auth.GetProfile)
	group.PUT("/profile", c.user.UpdateProfile)
	group.POST("/profile/avatar", c.user.UploadAvatar)

	// 路线收藏
	group.POST("/roadmaps/:id/save", c.roadmap.SaveRoadmap)
	group.DELETE("/roadmaps/:id/save", c.roadmap.UnsaveRoadmap)
	group.GET("/roadmaps/:id/saved", c.roadmap.IsSaved)
	group.GET("/user/saved-roadmaps", c.roadmap.ListSavedRoadmaps)

	// 学习进度
	group.POST("/roadmaps/:id/progress", c.progress.CompleteResource)
	group.GET("/roadmaps/:id/progress", c.progress.GetRoadmapProgress)
	group.GET("/user/progress", c.progress.ListUserProgress)

	// 测验作答
	group.POST("/quizzes/:id/attempts", c.quiz.StartAttempt)
	group.PUT("/attempts/:id/answers", c.quiz.SaveAnswers)
	group.POST("/attempts/:id/submit", c.quiz.SubmitAttempt)
	group.GET("/attempts/:id", c.quiz.GetAttempt)
	group.GET("/user/attempts", c.quiz.ListAttempts)

	// 成就
	group.GET("/user/achievements", c.achievement.ListUserAchievements)

	// 实战项目
	group.POST("/projects/:id/start", c.project.StartProject)
	group.GET("/user/projects", c.project.ListInstances)
	group.PUT("/user/projects/:id", c.project.UpdateInstanceStatus)

	// AI助教
	group.POST("/chat", c.chat.Chat)
	group.GET("/chat/sessions", c.chat.ListSessions)
	group.GET("/chat/sessions/:id", c.chat.GetHistory)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RoleMiddleware(model.Admin),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		admin.POST("/roadmaps", c.content.CreateRoadmap)
		admin.PUT("/roadmaps/:id", c.content.UpdateRoadmap)
		admin.DELETE("/roadmaps/:id", c.content.DeleteRoadmap)
		admin.POST("/sections", c.content.CreateSection)
		admin.PUT("/sections/:id", c.content.UpdateSection)
		admin.DELETE("/sections/:id", c.content.DeleteSection)
		admin.POST("/resources", c.content.CreateResource)
		admin.PUT("/resources/:id", c.content.UpdateResource)
		admin.DELETE("/resources/:id", c.content.DeleteResource)
		admin.POST("/resources/upload", c.content.UploadResourceFile)
		admin.POST("/quizzes", c.content.CreateQuiz)
		admin.PUT("/quizzes/:id", c.content.UpdateQuiz)
		admin.DELETE("/quizzes/:id", c.content.DeleteQuiz)
		admin.POST("/questions", c.content.CreateQuestion)
		admin.DELETE("/questions/:id", c.content.DeleteQuestion)
		admin.POST("/projects", c.project.CreateProject)
	}
}
