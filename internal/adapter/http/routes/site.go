package routes

import (
	"vitrine_industrial/internal/adapter/http/handlers"
	"vitrine_industrial/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts     = "/products"
	PathCategories   = "/categories"
	PathDownloads    = "/downloads"
	PathNews         = "/news"
	PathDistributors = "/distributors"
	PathQuotes       = "/quotes"
	PathOrcamentos   = "/orcamentos"
	PathSettings     = "/settings"
	PathBackup       = "/backup"
	PathLegacy       = "/legacy"
)

type routeHandlers struct {
	catalog   *handlers.CatalogHandler
	content   *handlers.ContentHandler
	quote     *handlers.QuoteHandler
	orcamento *handlers.OrcamentoHandler
	backup    *handlers.BackupHandler
	legacy    *handlers.LegacyHandler
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addPublicRoutes(rg *gin.RouterGroup, h routeHandlers, limiter *middleware.IPRateLimiter) {
	rg.GET(PathProducts, h.catalog.ListPublicProducts)
	rg.GET(PathProducts+"/:slug", h.catalog.GetPublicProduct)
	rg.GET(PathCategories, h.catalog.ListCategories)

	rg.GET(PathDownloads, h.content.ListDownloads)
	rg.POST(PathDownloads+"/:id/download", h.content.RegisterDownload)
	rg.GET(PathNews, h.content.ListPublishedNews)
	rg.GET(PathNews+"/:slug", h.content.GetPublishedNews)
	rg.GET(PathDistributors, h.content.ListDistributors)

	// Formularios publicos
	rg.POST(PathQuotes, limiter.Middleware(), h.quote.SubmitQuote)
	rg.POST(PathOrcamentos, limiter.Middleware(), h.orcamento.SubmitOrcamento)
}

func addAdminRoutes(rg *gin.RouterGroup, h routeHandlers) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.catalog.ListProducts)
		products.POST("", h.catalog.CreateProduct)
		products.GET("/:id", h.catalog.GetProduct)
		products.PATCH("/:id", h.catalog.UpdateProduct)
		products.DELETE("/:id", h.catalog.DeleteProduct)
	}

	categories := rg.Group(PathCategories)
	{
		categories.GET("", h.catalog.ListCategories)
		categories.POST("", h.catalog.CreateCategory)
		categories.GET("/:id", h.catalog.GetCategory)
		categories.PATCH("/:id", h.catalog.UpdateCategory)
		categories.DELETE("/:id", h.catalog.DeleteCategory)
	}

	downloads := rg.Group(PathDownloads)
	{
		downloads.GET("", h.content.ListDownloads)
		downloads.POST("", h.content.CreateDownload)
		downloads.GET("/:id", h.content.GetDownload)
		downloads.PATCH("/:id", h.content.UpdateDownload)
		downloads.DELETE("/:id", h.content.DeleteDownload)
	}

	news := rg.Group(PathNews)
	{
		news.GET("", h.content.ListNews)
		news.POST("", h.content.CreateNews)
		news.GET("/:id", h.content.GetNews)
		news.PATCH("/:id", h.content.UpdateNews)
		news.DELETE("/:id", h.content.DeleteNews)
	}

	distributors := rg.Group(PathDistributors)
	{
		distributors.GET("", h.content.ListDistributors)
		distributors.POST("", h.content.CreateDistributor)
		distributors.GET("/:id", h.content.GetDistributor)
		distributors.PATCH("/:id", h.content.UpdateDistributor)
		distributors.DELETE("/:id", h.content.DeleteDistributor)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.quote.ListQuotes)
		quotes.GET("/:id", h.quote.GetQuote)
		quotes.PATCH("/:id", h.quote.UpdateQuote)
		quotes.DELETE("/:id", h.quote.DeleteQuote)
	}

	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.GET("", h.orcamento.ListOrcamentos)
		orcamentos.GET("/:id", h.orcamento.GetOrcamento)
		orcamentos.PATCH("/:id", h.orcamento.UpdateOrcamento)
		orcamentos.DELETE("/:id", h.orcamento.DeleteOrcamento)
	}

	rg.GET(PathSettings, h.orcamento.GetSettings)
	rg.PATCH(PathSettings, h.orcamento.UpdateSettings)

	backup := rg.Group(PathBackup)
	{
		backup.GET("/:scope", h.backup.Export)
		backup.POST("/:scope", h.backup.Import)
		backup.POST("/:scope/reset", h.backup.Reset)
	}

	legacy := rg.Group(PathLegacy)
	{
		legacy.GET("/:table", h.legacy.Select)
		legacy.POST("/:table", h.legacy.Insert)
		legacy.PATCH("/:table", h.legacy.Update)
		legacy.DELETE("/:table", h.legacy.Delete)
	}
}
