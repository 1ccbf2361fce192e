package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	apierr "github.com/traininglab/simreg/pkg/api/types/errors"
	apiloss "github.com/traininglab/simreg/pkg/api/types/lossdata"
	kerr "github.com/traininglab/simreg/pkg/domain/errors"
	kloss "github.com/traininglab/simreg/pkg/domain/lossdata/db"
	"github.com/traininglab/simreg/pkg/utils/slices"
)

func LossDataAddHandler(dbLossData kloss.LossDataInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiloss.Spec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("format error", err)
		}

		id, err := dbLossData.New(ctx, spec.SpecOf())
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.BadRequest(
				fmt.Sprintf("simulation id %d is not registered", spec.SimulationId), err,
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiloss.Created{
			OK: true, Message: "loss sample added successfully", Id: id,
		})
	}
}

func SimulationGraphHandler(dbLossData kloss.LossDataInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param(paramKey))
		if err != nil {
			return apierr.BadRequest("simulation id should be an integer", err)
		}

		series, err := dbLossData.Series(ctx, id)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(series, apiloss.ComposePoint))
	}
}
