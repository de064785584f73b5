package handlers

import (
	"net/http"

	request "vitrine_industrial/internal/adapter/http/dto/request"
	response "vitrine_industrial/internal/adapter/http/dto/response"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves downloads, news and distributors.
type ContentHandler struct {
	usecase usecase.IContentUseCase
}

func NewContentHandler(uc usecase.IContentUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc}
}

func (h *ContentHandler) ListDownloads(c *gin.Context) {
	filter := entities.DownloadFilter{
		Search:   c.Query("search"),
		Category: entities.DownloadCategory(c.Query("category")),
	}
	downloads, err := h.usecase.ListDownloads(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(downloads))
}

func (h *ContentHandler) GetDownload(c *gin.Context) {
	download, err := h.usecase.GetDownload(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, download)
}

// RegisterDownload counts one download and returns the asset so the client
// can follow its file_url.
func (h *ContentHandler) RegisterDownload(c *gin.Context) {
	download, err := h.usecase.RegisterDownload(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, download)
}

func (h *ContentHandler) CreateDownload(c *gin.Context) {
	var payload request.DownloadRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	download, err := h.usecase.CreateDownload(c.Request.Context(), payload.DownloadAssetPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, download)
}

func (h *ContentHandler) UpdateDownload(c *gin.Context) {
	var payload request.DownloadRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	download, err := h.usecase.UpdateDownload(c.Request.Context(), c.Param("id"), payload.DownloadAssetPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, download)
}

func (h *ContentHandler) DeleteDownload(c *gin.Context) {
	if err := h.usecase.DeleteDownload(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPublishedNews hides drafts (posts without published_at).
func (h *ContentHandler) ListPublishedNews(c *gin.Context) {
	posts, ok := h.listNews(c)
	if !ok {
		return
	}
	published := make([]entities.NewsPost, 0, len(posts))
	for _, p := range posts {
		if p.PublishedAt != nil {
			published = append(published, p)
		}
	}
	c.JSON(http.StatusOK, response.NewListResponse(published))
}

func (h *ContentHandler) GetPublishedNews(c *gin.Context) {
	post, err := h.usecase.GetNewsBySlug(c.Request.Context(), c.Param("slug"))
	if err == nil && post.PublishedAt == nil {
		err = usecase.ErrNewsNotFound
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) ListNews(c *gin.Context) {
	posts, ok := h.listNews(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(posts))
}

func (h *ContentHandler) listNews(c *gin.Context) ([]entities.NewsPost, bool) {
	filter := entities.NewsFilter{
		Search:   c.Query("search"),
		Category: entities.NewsCategory(c.Query("category")),
	}
	posts, err := h.usecase.ListNews(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return posts, true
}

func (h *ContentHandler) GetNews(c *gin.Context) {
	post, err := h.usecase.GetNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) CreateNews(c *gin.Context) {
	var payload request.NewsRequest
	if !bindValidated(c, &payload, payload.Validate) {
		return
	}
	post, err := h.usecase.CreateNews(c.Request.Context(), payload.NewsPostPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *ContentHandler) UpdateNews(c *gin.Context) {
	var payload request.NewsRequest
	if !bindValidated(c, &payload, payload.Validate) {
		return
	}
	post, err := h.usecase.UpdateNews(c.Request.Context(), c.Param("id"), payload.NewsPostPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) DeleteNews(c *gin.Context) {
	if err := h.usecase.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListDistributors(c *gin.Context) {
	filter := entities.DistributorFilter{
		Search:  c.Query("search"),
		State:   c.Query("state"),
		Country: c.Query("country"),
	}
	distributors, err := h.usecase.ListDistributors(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(distributors))
}

func (h *ContentHandler) GetDistributor(c *gin.Context) {
	distributor, err := h.usecase.GetDistributor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributor)
}

func (h *ContentHandler) CreateDistributor(c *gin.Context) {
	var payload request.DistributorRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	distributor, err := h.usecase.CreateDistributor(c.Request.Context(), payload.DistributorPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, distributor)
}

func (h *ContentHandler) UpdateDistributor(c *gin.Context) {
	var payload request.DistributorRequest
	if !bindValidated(c, &payload, nil) {
		return
	}
	distributor, err := h.usecase.UpdateDistributor(c.Request.Context(), c.Param("id"), payload.DistributorPatch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributor)
}

func (h *ContentHandler) DeleteDistributor(c *gin.Context) {
	if err := h.usecase.DeleteDistributor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
