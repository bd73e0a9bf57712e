package echoapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/doodhq/dood/core"
)

var dateParam = "date"

// DateQuery binds and validates the ?date= query parameter used by the
// per-day planner endpoints.
type DateQuery struct {
	Date string `json:"date" validate:"required,isodate"`
}

func (dq *DateQuery) Bind(ctx echo.Context, validate *validator.Validate) error {
	dq.Date = core.CleanString(ctx.QueryParam(dateParam))
	return validate.Struct(dq)
}

// AnswerSheet carries a submitted set of answers; nil entries are unanswered
// questions.
type AnswerSheet struct {
	Answers []*int `json:"answers"`
}
