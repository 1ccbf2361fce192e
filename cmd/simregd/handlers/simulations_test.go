package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/traininglab/simreg/cmd/simregd/handlers"
	httptestutil "github.com/traininglab/simreg/internal/testutils/http"
	apimach "github.com/traininglab/simreg/pkg/api/types/machines"
	apisim "github.com/traininglab/simreg/pkg/api/types/simulations"
	"github.com/traininglab/simreg/pkg/api/types/misc/rfctime"
	"github.com/traininglab/simreg/pkg/domain"
	kerr "github.com/traininglab/simreg/pkg/domain/errors"
	mocks "github.com/traininglab/simreg/pkg/domain/simulation/db/mock"
	"github.com/traininglab/simreg/pkg/utils/cmp"
	"github.com/traininglab/simreg/pkg/utils/try"
)

func TestSimulationAddHandler(t *testing.T) {

	t.Run("when a simulation is registered, it should respond its new id", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.New = func(context.Context, domain.SimulationSpec) (int, error) {
			return 7, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/simulations/add",
			strings.NewReader(`{"name": "resnet-sweep", "state": "running", "machine_name": "vast-01"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.SimulationAddHandler(mckdb)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(mckdb.Calls.New, []domain.SimulationSpec{
			{Name: "resnet-sweep", State: domain.Running, MachineName: "vast-01"},
		}) {
			t.Errorf("SimulationInterface.New did not receive the spec: %+v", mckdb.Calls.New)
		}

		actual := apisim.Created{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := apisim.Created{OK: true, Message: "simulation added successfully", Id: 7}
		if actual != expected {
			t.Errorf("unmatch response:%+v, expected:%+v", actual, expected)
		}
	})

	t.Run("when no machine name is given, it should pass an unbound spec", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.New = func(context.Context, domain.SimulationSpec) (int, error) {
			return 8, nil
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/simulations/add",
			strings.NewReader(`{"name": "bert-base", "state": "pending"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.SimulationAddHandler(mckdb)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(mckdb.Calls.New, []domain.SimulationSpec{
			{Name: "bert-base", State: domain.Pending, MachineName: ""},
		}) {
			t.Errorf("SimulationInterface.New did not receive the spec: %+v", mckdb.Calls.New)
		}
	})

	for name, body := range map[string]string{
		"the body is not JSON":       `it is not json`,
		"'name' is missing":          `{"state": "running"}`,
		"'state' is missing":         `{"name": "resnet-sweep"}`,
		"'name' is blank":            `{"name": "", "state": "running"}`,
		"'state' is out of the enum": `{"name": "resnet-sweep", "state": "paused"}`,
	} {
		t.Run("when "+name+", it should respond status code 400", func(t *testing.T) {
			mckdb := mocks.NewSimulationInterface()

			e := echo.New()
			c, _ := httptestutil.Post(
				e, "/simulations/add", strings.NewReader(body),
				httptestutil.ContentType("application/json"),
			)

			testee := handlers.SimulationAddHandler(mckdb)
			err := testee(c)

			var echoErr *echo.HTTPError
			if !errors.As(err, &echoErr) {
				t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
			}
			if echoErr.Code != http.StatusBadRequest {
				t.Errorf("unmatch error code:%d, expected:%d", echoErr.Code, http.StatusBadRequest)
			}
			if mckdb.Calls.New.Times() != 0 {
				t.Error("SimulationInterface.New should not be called")
			}
		})
	}

	t.Run("when the machine name does not resolve, it should respond status code 400", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.New = func(context.Context, domain.SimulationSpec) (int, error) {
			return 0, kerr.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/simulations/add",
			strings.NewReader(`{"name": "resnet-sweep", "state": "running", "machine_name": "no-such-machine"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.SimulationAddHandler(mckdb)
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unmatch error code:%d, expected:%d", echoErr.Code, http.StatusBadRequest)
		}
	})

	t.Run("when the name is taken already, it should respond status code 400", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.New = func(context.Context, domain.SimulationSpec) (int, error) {
			return 0, kerr.ErrConflict
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/simulations/add",
			strings.NewReader(`{"name": "resnet-sweep", "state": "running"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.SimulationAddHandler(mckdb)
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unmatch error code:%d, expected:%d", echoErr.Code, http.StatusBadRequest)
		}
	})
}

func TestSimulationFindHandler(t *testing.T) {

	t.Run("when simulations are received from the database, it should convert them to JSON with links", func(t *testing.T) {
		machineId := 2
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.Find = func(context.Context, domain.SimulationFindQuery) ([]domain.Simulation, error) {
			return []domain.Simulation{
				{
					Id: 1, Name: "resnet-sweep", State: domain.Running,
					DateCreated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-01T12:00:00+00:00",
					)).OrFatal(t).Time(),
					DateUpdated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-02T09:30:00+00:00",
					)).OrFatal(t).Time(),
					MachineId: &machineId,
				},
				{
					Id: 2, Name: "bert-base", State: domain.Pending,
					DateCreated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-03T08:00:00+00:00",
					)).OrFatal(t).Time(),
					DateUpdated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-03T08:00:00+00:00",
					)).OrFatal(t).Time(),
				},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/simulations?state=running&sort=-created")

		testee := handlers.SimulationFindHandler(mckdb)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		running := domain.Running
		if !cmp.SliceEqWith(
			mckdb.Calls.Find,
			[]domain.SimulationFindQuery{
				{State: &running, Order: domain.OrderByCreatedDesc},
			},
			func(a, b domain.SimulationFindQuery) bool {
				if (a.State == nil) != (b.State == nil) {
					return false
				}
				if a.State != nil && *a.State != *b.State {
					return false
				}
				return a.Order == b.Order
			},
		) {
			t.Errorf("SimulationInterface.Find did not receive the query: %+v", mckdb.Calls.Find)
		}

		actual := []apisim.Summary{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := []apisim.Summary{
			{
				Id: 1, Name: "resnet-sweep", State: "running",
				DateCreated: try.To(rfctime.ParseRFC3339DateTime(
					"2024-04-01T12:00:00+00:00",
				)).OrFatal(t),
				DateUpdated: try.To(rfctime.ParseRFC3339DateTime(
					"2024-04-02T09:30:00+00:00",
				)).OrFatal(t),
				MachineId: &machineId,
				Link:      "http://example.com/simulations/1/detail",
			},
			{
				Id: 2, Name: "bert-base", State: "pending",
				DateCreated: try.To(rfctime.ParseRFC3339DateTime(
					"2024-04-03T08:00:00+00:00",
				)).OrFatal(t),
				DateUpdated: try.To(rfctime.ParseRFC3339DateTime(
					"2024-04-03T08:00:00+00:00",
				)).OrFatal(t),
				Link: "http://example.com/simulations/2/detail",
			},
		}
		if !cmp.SliceEqWith(actual, expected, apisim.Summary.Equal) {
			t.Errorf("unmatch response:%+v, expected:%+v", actual, expected)
		}
	})

	t.Run("when no query parameter is given, it should query without filter nor order", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.Find = func(context.Context, domain.SimulationFindQuery) ([]domain.Simulation, error) {
			return []domain.Simulation{}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/simulations")

		testee := handlers.SimulationFindHandler(mckdb)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEqWith(
			mckdb.Calls.Find,
			[]domain.SimulationFindQuery{
				{State: nil, Order: domain.OrderUnspecified},
			},
			func(a, b domain.SimulationFindQuery) bool {
				return (a.State == nil) == (b.State == nil) && a.Order == b.Order
			},
		) {
			t.Errorf("SimulationInterface.Find did not receive the query: %+v", mckdb.Calls.Find)
		}

		if body := strings.TrimSpace(respRec.Body.String()); body != "[]" {
			t.Errorf("unmatch body:%s, expected:[]", body)
		}
	})

	t.Run("when the database fails, it should respond status code 500", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.Find = func(context.Context, domain.SimulationFindQuery) ([]domain.Simulation, error) {
			return nil, errors.New("fake error")
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/simulations")

		testee := handlers.SimulationFindHandler(mckdb)
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusInternalServerError {
			t.Errorf("unmatch error code:%d, expected:%d", echoErr.Code, http.StatusInternalServerError)
		}
	})
}

func TestSimulationDetailHandler(t *testing.T) {

	t.Run("when the simulation is bound to a machine, it should respond both records", func(t *testing.T) {
		machineId := 2
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.Get = func(context.Context, int) (domain.SimulationDetail, error) {
			return domain.SimulationDetail{
				Simulation: domain.Simulation{
					Id: 1, Name: "resnet-sweep", State: domain.Running,
					DateCreated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-01T12:00:00+00:00",
					)).OrFatal(t).Time(),
					DateUpdated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-02T09:30:00+00:00",
					)).OrFatal(t).Time(),
					MachineId: &machineId,
				},
				Machine: &domain.Machine{Id: 2, Name: "vast-02", Location: "eu-west"},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/simulations/1/detail")
		c.SetPath("/simulations/:simulationId/detail")
		c.SetParamNames("simulationId")
		c.SetParamValues("1")

		testee := handlers.SimulationDetailHandler(mckdb, "simulationId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(mckdb.Calls.Get, []int{1}) {
			t.Errorf("SimulationInterface.Get did not receive the id: %+v", mckdb.Calls.Get)
		}

		actual := apisim.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := apisim.Detail{
			Id: 1, Name: "resnet-sweep", State: "running",
			DateCreated: try.To(rfctime.ParseRFC3339DateTime(
				"2024-04-01T12:00:00+00:00",
			)).OrFatal(t),
			DateUpdated: try.To(rfctime.ParseRFC3339DateTime(
				"2024-04-02T09:30:00+00:00",
			)).OrFatal(t),
			Machine: &apimach.Summary{Id: 2, Name: "vast-02", Location: "eu-west"},
		}
		if !actual.Equal(expected) {
			t.Errorf("unmatch response:%+v, expected:%+v", actual, expected)
		}
	})

	t.Run("when the simulation is unbound, machine should be null", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.Get = func(context.Context, int) (domain.SimulationDetail, error) {
			return domain.SimulationDetail{
				Simulation: domain.Simulation{
					Id: 2, Name: "bert-base", State: domain.Pending,
					DateCreated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-03T08:00:00+00:00",
					)).OrFatal(t).Time(),
					DateUpdated: try.To(rfctime.ParseRFC3339DateTime(
						"2024-04-03T08:00:00+00:00",
					)).OrFatal(t).Time(),
				},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/simulations/2/detail")
		c.SetPath("/simulations/:simulationId/detail")
		c.SetParamNames("simulationId")
		c.SetParamValues("2")

		testee := handlers.SimulationDetailHandler(mckdb, "simulationId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		actual := map[string]json.RawMessage{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if string(actual["machine"]) != "null" {
			t.Errorf(`unmatch machine:%s, expected:null`, string(actual["machine"]))
		}
	})

	t.Run("when no simulation has the id, it should respond status code 404", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()
		mckdb.Impl.Get = func(context.Context, int) (domain.SimulationDetail, error) {
			return domain.SimulationDetail{}, kerr.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/simulations/42/detail")
		c.SetPath("/simulations/:simulationId/detail")
		c.SetParamNames("simulationId")
		c.SetParamValues("42")

		testee := handlers.SimulationDetailHandler(mckdb, "simulationId")
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unmatch error code:%d, expected:%d", echoErr.Code, http.StatusNotFound)
		}
	})

	t.Run("when the id is not an integer, it should respond status code 400", func(t *testing.T) {
		mckdb := mocks.NewSimulationInterface()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/simulations/one/detail")
		c.SetPath("/simulations/:simulationId/detail")
		c.SetParamNames("simulationId")
		c.SetParamValues("one")

		testee := handlers.SimulationDetailHandler(mckdb, "simulationId")
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unmatch error code:%d, expected:%d", echoErr.Code, http.StatusBadRequest)
		}
		if mckdb.Calls.Get.Times() != 0 {
			t.Error("SimulationInterface.Get should not be called")
		}
	})
}
