package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/doodhq/dood/core/demo"
	"github.com/doodhq/dood/core/material"
)

type demoApi struct {
	materialSvc material.ServiceInterface
}

func registerDemoAPI(g *echo.Group, materialSvc material.ServiceInterface) {
	api := demoApi{materialSvc: materialSvc}

	dg := g.Group("/demos")
	dg.GET("", api.status)
	dg.GET("/quiz", api.quiz)
	dg.GET("/exam", api.exam)
	dg.GET("/flashcards", api.flashcards)
	dg.GET("/chat", api.chat)
	dg.POST("/quiz/score", api.scoreQuiz)
	dg.POST("/exam/score", api.scoreExam)
}

type demoStatus struct {
	// Enabled gates every demo panel: they light up once at least one
	// course material has been uploaded.
	Enabled bool `json:"enabled"`
}

type examResponse struct {
	Questions       []demo.ExamQuestion `json:"questions"`
	DurationSeconds int                 `json:"duration_seconds"`
	WarningSeconds  int                 `json:"warning_seconds"`
}

type flashcardsResponse struct {
	Deck       []demo.Flashcard `json:"deck"`
	PanelCards []demo.Flashcard `json:"panel_cards"`
}

// Handlers

func (api *demoApi) status(ctx echo.Context) error {
	enabled, err := api.materialSvc.HasMaterials()
	if err != nil {
		return errors.Wrap(err, "checking materials")
	}
	return ctx.JSON(http.StatusOK, demoStatus{Enabled: enabled})
}

func (api *demoApi) quiz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, demo.SampleQuiz)
}

func (api *demoApi) exam(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, examResponse{
		Questions:       demo.SampleExam,
		DurationSeconds: int(demo.ExamDuration / time.Second),
		WarningSeconds:  int(demo.ExamWarningThreshold / time.Second),
	})
}

func (api *demoApi) flashcards(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, flashcardsResponse{
		Deck:       demo.SampleDeck,
		PanelCards: demo.SamplePanelCards,
	})
}

func (api *demoApi) chat(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, demo.SampleChat)
}

func (api *demoApi) scoreQuiz(ctx echo.Context) error {
	var sheet AnswerSheet
	if err := ctx.Bind(&sheet); err != nil {
		return errors.Wrap(err, "binding to AnswerSheet")
	}
	return ctx.JSON(http.StatusOK, demo.ScoreQuiz(demo.SampleQuiz, sheet.Answers))
}

func (api *demoApi) scoreExam(ctx echo.Context) error {
	var sheet AnswerSheet
	if err := ctx.Bind(&sheet); err != nil {
		return errors.Wrap(err, "binding to AnswerSheet")
	}
	return ctx.JSON(http.StatusOK, demo.ScoreExam(demo.SampleExam, sheet.Answers))
}
