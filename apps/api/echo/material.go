package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/doodhq/dood/core/material"
)

type materialApi struct {
	svc material.ServiceInterface
}

func registerMaterialAPI(g *echo.Group, svc material.ServiceInterface) {
	api := materialApi{svc: svc}

	mg := g.Group("/materials")
	mg.POST("", api.upload)
	mg.GET("", api.query)
	mg.DELETE("/:id", api.destroy)
}

// Handlers

// upload registers the PDF files of a multipart "files" field; anything else
// in the batch is filtered out, mirroring the upload zone's MIME filter.
func (api *materialApi) upload(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return errors.Wrap(err, "reading multipart form")
	}

	headers := form.File["files"]
	files := make([]material.FileInfo, 0, len(headers))
	for _, hdr := range headers {
		files = append(files, material.FileInfo{
			Name:        hdr.Filename,
			Size:        hdr.Size,
			ContentType: hdr.Header.Get("Content-Type"),
		})
	}

	accepted, err := api.svc.Accept(files)
	if err != nil {
		return errors.Wrap(err, "accepting files")
	}
	return ctx.JSON(http.StatusCreated, accepted)
}

func (api *materialApi) query(ctx echo.Context) error {
	mats, err := api.svc.List()
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	if mats == nil {
		mats = []material.Material{}
	}
	return ctx.JSON(http.StatusOK, mats)
}

func (api *materialApi) destroy(ctx echo.Context) error {
	if err := api.svc.Remove(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "removing material")
	}
	return ctx.NoContent(http.StatusNoContent)
}
