package handlers

import (
	"errors"
	"net/http"

	"vitrine_industrial/internal/usecase"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidSlug    = pkg.NewDomainErrorSimple("INVALID_SLUG", "Slug must contain only lowercase letters, digits and hyphens", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductTitle),
		errors.Is(err, usecase.ErrInvalidProductStatus),
		errors.Is(err, usecase.ErrInvalidProductValues),
		errors.Is(err, usecase.ErrInvalidCategoryName),
		errors.Is(err, usecase.ErrInvalidQuoteContact),
		errors.Is(err, usecase.ErrInvalidQuoteStatus),
		errors.Is(err, usecase.ErrInvalidDownload),
		errors.Is(err, usecase.ErrInvalidDownloadCategory),
		errors.Is(err, usecase.ErrInvalidNewsTitle),
		errors.Is(err, usecase.ErrInvalidNewsCategory),
		errors.Is(err, usecase.ErrInvalidDistributor),
		errors.Is(err, usecase.ErrInvalidOrcamentoContact),
		errors.Is(err, usecase.ErrInvalidOrcamentoStatus),
		errors.Is(err, usecase.ErrInvalidQuantidade),
		errors.Is(err, usecase.ErrInvalidUsuario):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDownloadNotFound):
		return pkg.NewDomainErrorSimple("DOWNLOAD_NOT_FOUND", "Download not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNewsNotFound):
		return pkg.NewDomainErrorSimple("NEWS_NOT_FOUND", "News post not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDistributorNotFound):
		return pkg.NewDomainErrorSimple("DISTRIBUTOR_NOT_FOUND", "Distributor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orcamento not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownBackupScope):
		return pkg.NewDomainErrorSimple("UNKNOWN_BACKUP_SCOPE", "Unknown backup scope", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBackup):
		return pkg.NewDomainErrorSimple("INVALID_BACKUP", "Backup document is invalid", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
