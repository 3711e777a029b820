package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gpacalc/core/gpa"
)

type formApi struct {
	svc *gpa.Service
}

func registerFormAPI(g *echo.Group, svc *gpa.Service) {
	api := formApi{svc: svc}

	fg := g.Group("/form")
	fg.GET("", api.view)
	fg.POST("/reset", api.reset)
	fg.POST("/count", api.setCount)
	fg.POST("/calculate", api.calculate)
	fg.DELETE("/result", api.dismiss)

	cg := fg.Group("/courses")
	cg.POST("", api.addCourse)
	cg.PUT("/:index", api.updateCourse)
	cg.DELETE("/:index", api.removeCourse)
}

// Handlers

func (api *formApi) view(ctx echo.Context) error {
	v, err := api.svc.View(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "viewing form")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *formApi) reset(ctx echo.Context) error {
	v, err := api.svc.Reset(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "resetting form")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *formApi) setCount(ctx echo.Context) error {
	var data gpa.SetCount
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	v, err := api.svc.SetCount(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "setting course count")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *formApi) addCourse(ctx echo.Context) error {
	v, err := api.svc.AddCourse(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "adding course")
	}
	return ctx.JSON(http.StatusCreated, v)
}

func (api *formApi) updateCourse(ctx echo.Context) error {
	index, err := courseIndex(ctx)
	if err != nil {
		return err
	}
	var data gpa.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	v, err := api.svc.UpdateCourse(ctx.Request().Context(), index, data)
	if err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *formApi) removeCourse(ctx echo.Context) error {
	index, err := courseIndex(ctx)
	if err != nil {
		return err
	}

	v, err := api.svc.RemoveCourse(ctx.Request().Context(), index)
	if err != nil {
		return errors.Wrap(err, "removing course")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *formApi) calculate(ctx echo.Context) error {
	res, err := api.svc.Calculate(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "calculating GPA")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *formApi) dismiss(ctx echo.Context) error {
	if err := api.svc.Dismiss(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "dismissing result")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// courseIndex reads the zero-based `:index` path param.
func courseIndex(ctx echo.Context) (int, error) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 {
		return 0, errHttpNotFound
	}
	return index, nil
}
