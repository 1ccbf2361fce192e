package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	kcf "github.com/traininglab/simreg/pkg/configs/server"
	kdb "github.com/traininglab/simreg/pkg/domain/registry/db"
	kpg "github.com/traininglab/simreg/pkg/domain/registry/db/postgres"
	"github.com/traininglab/simreg/pkg/fixtures"
	"github.com/traininglab/simreg/pkg/utils/echoutil"
	"github.com/traininglab/simreg/pkg/utils/filewatch"

	"github.com/traininglab/simreg/cmd/simregd/handlers"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	initSchema := flag.Bool("init-schema", false, "create tables & trigger if they do not exist, then serve")
	loadFixtures := flag.Bool("load-fixtures", false, "seed the database from fixture files, then serve")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcf.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
	if err != nil {
		log.Fatalf("can not watch configration: %s", err)
	}
	defer cancel()
	context.AfterFunc(ctx, func() {
		log.Println("config file is updated. quit to restart server.")
		graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			log.Printf("error on shutdown by config update: %s", err)
		}
	})

	// get dbaccesor
	db, err := getDBAccesor(ctx, conf.DBURI)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	if *initSchema {
		if err := db.Schema().Ensure(ctx); err != nil {
			log.Fatalf("can not initialize schema: %s", err)
		}
		log.Println("schema is initialized.")
	}

	if *loadFixtures {
		rep, err := fixtures.Load(ctx, conf.FixtureRoot, db)
		if err != nil {
			log.Fatalf("can not load fixtures: %s", err)
		}
		log.Printf(
			"fixtures loaded: %d machines, %d simulations, %d loss samples",
			rep.Machines, rep.Simulations, rep.LossSamples,
		)
	}

	// handlers
	e.GET("/hello/", handlers.HelloHandler())

	{
		machineId := "machineId"
		e.POST("/machines/add/", handlers.MachineAddHandler(db.Machines()))
		e.GET("/machines/", handlers.MachineListHandler(db.Machines()))
		e.PUT(
			"/machines/:"+machineId+"/change/",
			handlers.MachineChangeHandler(db.Machines(), machineId),
		)
	}

	{
		simulationId := "simulationId"
		e.POST("/simulations/add/", handlers.SimulationAddHandler(db.Simulations()))
		e.GET("/simulations/", handlers.SimulationFindHandler(db.Simulations()))
		e.GET(
			"/simulations/:"+simulationId+"/detail/",
			handlers.SimulationDetailHandler(db.Simulations(), simulationId),
		)
		e.GET(
			"/simulations/:"+simulationId+"/graph/",
			handlers.SimulationGraphHandler(db.LossData(), simulationId),
		)
	}

	e.POST("/lossdata/add/", handlers.LossDataAddHandler(db.LossData()))

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}

func getDBAccesor(ctx context.Context, dburi string) (kdb.RegistryDatabase, error) {
	return kpg.New(ctx, dburi)
}
