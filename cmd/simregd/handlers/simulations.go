package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	apierr "github.com/traininglab/simreg/pkg/api/types/errors"
	apisim "github.com/traininglab/simreg/pkg/api/types/simulations"
	"github.com/traininglab/simreg/pkg/domain"
	kerr "github.com/traininglab/simreg/pkg/domain/errors"
	ksim "github.com/traininglab/simreg/pkg/domain/simulation/db"
	"github.com/traininglab/simreg/pkg/utils/slices"
)

func SimulationAddHandler(dbSimulation ksim.SimulationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apisim.Spec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("format error", err)
		}
		if spec.Name == "" {
			return apierr.BadRequest(`"name" should not be blank`, nil)
		}
		state, err := domain.AsState(spec.State)
		if err != nil {
			return apierr.BadRequest(
				`"state" should be one of: pending, running, finished`, err,
			)
		}

		id, err := dbSimulation.New(ctx, domain.SimulationSpec{
			Name: spec.Name, State: state, MachineName: spec.MachineName,
		})
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.BadRequest(
				fmt.Sprintf(`machine "%s" is not registered`, spec.MachineName), err,
			)
		} else if errors.Is(err, kerr.ErrConflict) {
			return apierr.BadRequest(
				fmt.Sprintf(`simulation name "%s" is taken already`, spec.Name), err,
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisim.Created{
			OK: true, Message: "simulation added successfully", Id: id,
		})
	}
}

func SimulationFindHandler(dbSimulation ksim.SimulationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		query := domain.SimulationFindQuery{
			Order: domain.AsSimulationOrder(c.QueryParam("sort")),
		}
		if s := c.QueryParam("state"); s != "" {
			state := domain.State(s)
			query.State = &state
		}

		simulations, err := dbSimulation.Find(ctx, query)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		found := slices.Map(simulations, func(s domain.Simulation) apisim.Summary {
			return apisim.ComposeSummary(s, detailLink(c, s.Id))
		})
		return c.JSON(http.StatusOK, found)
	}
}

func SimulationDetailHandler(dbSimulation ksim.SimulationInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param(paramKey))
		if err != nil {
			return apierr.BadRequest("simulation id should be an integer", err)
		}

		detail, err := dbSimulation.Get(ctx, id)
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.NotFound(
				fmt.Sprintf("simulation id %d is not registered", id), err,
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisim.ComposeDetail(detail))
	}
}

// absolute URL of the detail page of a simulation,
// built from the scheme & host the request came in on.
func detailLink(c echo.Context, id int) string {
	u := url.URL{
		Scheme: c.Scheme(),
		Host:   c.Request().Host,
		Path:   fmt.Sprintf("/simulations/%d/detail", id),
	}
	return u.String()
}
