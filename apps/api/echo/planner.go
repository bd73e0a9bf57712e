package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/doodhq/dood/core/planner"
)

type plannerApi struct {
	svc      planner.ServiceInterface
	validate *validator.Validate
}

func registerPlannerAPI(g *echo.Group, svc planner.ServiceInterface, validate *validator.Validate) {
	api := plannerApi{svc: svc, validate: validate}

	pg := g.Group("/planner")
	pg.POST("/events", api.create)
	pg.GET("/events", api.query)
	pg.PUT("/events/:id", api.update)
	pg.DELETE("/events/:id", api.destroy)
	pg.POST("/events/:id/toggle", api.toggle)
	pg.GET("/dates", api.dates)
	pg.GET("/progress", api.progress)
	pg.GET("/hours", api.hours)
	pg.GET("/completions", api.completions)
}

// Handlers

func (api *plannerApi) create(ctx echo.Context) error {
	var data planner.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating event")
	}
	return ctx.JSON(http.StatusCreated, evt)
}

func (api *plannerApi) query(ctx echo.Context) error {
	var dq DateQuery
	if err := dq.Bind(ctx, api.validate); err != nil {
		return err
	}

	events, err := api.svc.EventsForDate(dq.Date)
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	if events == nil {
		events = []planner.Event{}
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *plannerApi) update(ctx echo.Context) error {
	var data planner.UpdateEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEvent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == planner.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating event")
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api *plannerApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting event")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *plannerApi) toggle(ctx echo.Context) error {
	evt, err := api.svc.ToggleCompleted(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == planner.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "toggling event")
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api *plannerApi) dates(ctx echo.Context) error {
	dates, err := api.svc.DatesWithEvents()
	if err != nil {
		return errors.Wrap(err, "querying dates")
	}
	if dates == nil {
		dates = []string{}
	}
	return ctx.JSON(http.StatusOK, dates)
}

func (api *plannerApi) progress(ctx echo.Context) error {
	var dq DateQuery
	if err := dq.Bind(ctx, api.validate); err != nil {
		return err
	}

	prog, err := api.svc.DailyProgress(dq.Date)
	if err != nil {
		return errors.Wrap(err, "computing progress")
	}
	return ctx.JSON(http.StatusOK, prog)
}

type hourBucket struct {
	Hour   int             `json:"hour"`
	Events []planner.Event `json:"events"`
}

func (api *plannerApi) hours(ctx echo.Context) error {
	var dq DateQuery
	if err := dq.Bind(ctx, api.validate); err != nil {
		return err
	}

	buckets, err := api.svc.EventsByHour(dq.Date)
	if err != nil {
		return errors.Wrap(err, "bucketing events")
	}

	resp := make([]hourBucket, len(buckets))
	for hour, events := range buckets {
		if events == nil {
			events = []planner.Event{}
		}
		resp[hour] = hourBucket{Hour: hour, Events: events}
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *plannerApi) completions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.PendingCompletions())
}
