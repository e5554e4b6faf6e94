package internal

import (
	"context"
	"errors"
	"fmt"
	"github.com/markusressel/dim2go/internal/api"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/controller"
	"github.com/markusressel/dim2go/internal/diagnostics"
	"github.com/markusressel/dim2go/internal/hwmon"
	"github.com/markusressel/dim2go/internal/outputs"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/ranging"
	"github.com/markusressel/dim2go/internal/sensors"
	"github.com/markusressel/dim2go/internal/smoothing"
	"github.com/markusressel/dim2go/internal/statistics"
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 5 * time.Second

// Objects are the wired components of a running daemon
type Objects struct {
	Sensor     sensors.Sensor
	Driver     *pwm.Driver
	Store      *diagnostics.Store
	Controller *controller.Controller
}

func RunDaemon() {
	config := configuration.CurrentConfig
	if config.Output.Sysfs != nil && os.Geteuid() != 0 {
		ui.Warning("Driving a sysfs pwm output usually requires root permissions")
	}

	objects, err := InitializeObjects(&config)
	if err != nil {
		ui.Fatal("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === control loop
		g.Add(func() error {
			return objects.Controller.Run(ctx)
		}, func(err error) {
			cancel()
		})
	}
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		statistics.Register(statistics.NewPipelineCollector(objects.Store, config.Sensor.ID, config.Output.ID))

		port := config.Statistics.Port
		if port <= 0 || port >= 65535 {
			port = 9000
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
		addServer(&g, "statistics", server)
	}
	if config.Api.Enabled {
		// === REST API
		rest := api.CreateRestService(objects.Store, config)
		addr := config.Api.Address()
		g.Add(func() error {
			ui.Info("Starting REST api at %s", addr)
			if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("REST api: %w", err)
			}
			return nil
		}, func(err error) {
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer timeoutCancel()
			if err := rest.Shutdown(timeoutCtx); err != nil {
				ui.Warning("Error stopping REST api: %v", err)
			}
		})
	}
	if config.Profiling.Enabled {
		// === pprof
		mux := http.NewServeMux()
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		server := &http.Server{Addr: config.Profiling.Address(), Handler: mux}
		addServer(&g, "profiling", server)
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// addServer runs the given server as an actor of g until it is interrupted
func addServer(g *run.Group, name string, server *http.Server) {
	g.Add(func() error {
		ui.Info("Starting %s server at %s", name, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s server: %w", name, err)
		}
		return nil
	}, func(err error) {
		ui.Info("Stopping %s server...", name)
		timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer timeoutCancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			ui.Warning("Error stopping %s server: %v", name, err)
		}
	})
}

// InitializeObjects creates and wires all components described by config.
// An hwmon sensor input is resolved in place.
func InitializeObjects(config *configuration.Configuration) (*Objects, error) {
	sensor, err := CreateSensor(&config.Sensor)
	if err != nil {
		return nil, err
	}
	if value, err := sensor.GetValue(); err != nil {
		ui.Warning("Error reading sensor %s: %v", sensor.GetId(), err)
	} else {
		ui.Debug("Initial value of sensor %s: %d", sensor.GetId(), value)
	}

	driver, err := CreateDriver(config.Output)
	if err != nil {
		return nil, err
	}

	mapper, err := ranging.NewMapper(config.Range.Min, config.Range.Max)
	if err != nil {
		return nil, fmt.Errorf("unable to process range configuration: %w", err)
	}
	if config.Window.Size < 1 {
		return nil, fmt.Errorf("window size must be >= 1, was %d", config.Window.Size)
	}
	window := smoothing.NewSampleWindow(config.Window.Size, config.Window.Prefill)

	store := diagnostics.NewStore()
	reporter := diagnostics.MultiReporter{store}
	if config.Diagnostics.Console.Enabled {
		reporter = append(reporter, diagnostics.NewConsoleReporter(config.Diagnostics.Console.Every))
	}

	contr := controller.NewController(sensor, window, mapper, driver, reporter, config.Controller.LoopRate)

	return &Objects{
		Sensor:     sensor,
		Driver:     driver,
		Store:      store,
		Controller: contr,
	}, nil
}

// CreateSensor creates the sensor described by config, resolving an hwmon input in place
func CreateSensor(config *configuration.SensorConfig) (sensors.Sensor, error) {
	if config.HwMon != nil {
		controllers := hwmon.GetChips()
		err := hwmon.UpdateSensorConfigFromHwMonControllers(controllers, config.HwMon)
		if err != nil {
			return nil, fmt.Errorf("couldn't find hwmon device with platform '%s' for sensor %s, run 'dim2go detect' and correct the config: %w", config.HwMon.Platform, config.ID, err)
		}
	}

	sensor, err := sensors.NewSensor(*config)
	if err != nil {
		return nil, fmt.Errorf("unable to process sensor configuration: %w", err)
	}
	return sensor, nil
}

// CreateDriver creates an unconfigured driver for the output described by config
func CreateDriver(config configuration.OutputConfig) (*pwm.Driver, error) {
	output, err := outputs.NewOutput(config)
	if err != nil {
		return nil, fmt.Errorf("unable to process output configuration: %w", err)
	}
	return pwm.NewDriver(output, outputs.ModeOf(config)), nil
}
