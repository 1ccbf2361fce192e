package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	apierr "github.com/traininglab/simreg/pkg/api/types/errors"
	apimach "github.com/traininglab/simreg/pkg/api/types/machines"
	kerr "github.com/traininglab/simreg/pkg/domain/errors"
	kmach "github.com/traininglab/simreg/pkg/domain/machine/db"
	"github.com/traininglab/simreg/pkg/utils/slices"
)

func MachineAddHandler(dbMachine kmach.MachineInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apimach.Spec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("format error", err)
		}
		if spec.Name == "" || spec.Location == "" {
			return apierr.BadRequest(`"name" and "location" should not be blank`, nil)
		}

		id, err := dbMachine.New(ctx, spec.SpecOf())
		if errors.Is(err, kerr.ErrConflict) {
			return apierr.BadRequest(
				fmt.Sprintf(`machine name "%s" is taken already`, spec.Name), err,
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apimach.Created{
			OK: true, Message: "machine added successfully", Id: id,
		})
	}
}

func MachineListHandler(dbMachine kmach.MachineInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		machines, err := dbMachine.List(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(machines, apimach.ComposeSummary))
	}
}

func MachineChangeHandler(dbMachine kmach.MachineInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param(paramKey))
		if err != nil {
			return apierr.BadRequest("machine id should be an integer", err)
		}

		spec := apimach.Spec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("format error", err)
		}
		if spec.Name == "" || spec.Location == "" {
			return apierr.BadRequest(`"name" and "location" should not be blank`, nil)
		}

		if err := dbMachine.Update(ctx, id, spec.SpecOf()); errors.Is(err, kerr.ErrMissing) {
			return apierr.NotFound(
				fmt.Sprintf("machine id %d is not registered", id), err,
			)
		} else if errors.Is(err, kerr.ErrConflict) {
			return apierr.BadRequest(
				fmt.Sprintf(`machine name "%s" is taken already`, spec.Name), err,
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apimach.Created{
			OK: true, Message: "machine updated successfully", Id: id,
		})
	}
}
