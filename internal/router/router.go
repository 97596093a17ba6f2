package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/surajmeruva0786/DigiGov10/api"
	"github.com/surajmeruva0786/DigiGov10/internal/auth"
	"github.com/surajmeruva0786/DigiGov10/internal/handler"
	"github.com/surajmeruva0786/DigiGov10/internal/middleware"
	"github.com/surajmeruva0786/DigiGov10/internal/model"
)

const pathSwagger = "/swagger"

func New(complaints *handler.ComplaintHandler, schemes *handler.SchemeHandler, authHandler *handler.AuthHandler, authSvc *auth.Service) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/health", handler.Health)
	r.GET("/ready", handler.Ready)
	r.GET(pathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, pathSwagger+"/") })
	r.GET(pathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = pathSwagger + "/index.html"
			c.Request.RequestURI = pathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/users/register", authHandler.RegisterUser)
			authGroup.POST("/users/login", authHandler.LoginUser)
			authGroup.POST("/officials/register", authHandler.RegisterOfficial)
			authGroup.POST("/officials/login", authHandler.LoginOfficial)
			authGroup.POST("/logout", authHandler.Logout)
		}

		v1.POST("/complaints", middleware.Session(authSvc), complaints.Create)
		v1.GET("/complaints", complaints.List)
		v1.GET("/complaints/:id", complaints.Get)
		v1.GET("/schemes", schemes.List)
		v1.GET("/schemes/:id", schemes.Get)

		official := v1.Group("", middleware.RequireRole(authSvc, model.RoleOfficial))
		{
			official.PUT("/complaints/:id/status", complaints.UpdateStatus)
			official.GET("/dashboard/stats", complaints.Stats)
		}
	}

	return r
}
