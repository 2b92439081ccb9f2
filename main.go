package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coffeegame/signaling-server/pkg"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	config := pkg.LoadConfig()
	manager := pkg.NewManager()

	signalingRouter := mux.NewRouter()
	signalingRouter.HandleFunc("/", manager.HealthHandler)
	signalingRouter.HandleFunc("/socket", manager.SocketHandler)

	signalingServer := &http.Server{
		Addr: ":" + config.Port,
		Handler: promhttp.InstrumentHandlerInFlight(pkg.SignalServerInFlightGauge,
			promhttp.InstrumentHandlerCounter(pkg.SignalServerRequestsCounter,
				signalingRouter)),
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	metricsServer := &http.Server{
		Addr:    ":" + config.MetricsPort,
		Handler: metricsRouter,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	if ttl := config.RoomTTLDuration(); ttl > 0 {
		log.Info("Evicting rooms idle for more than ", ttl)
		go manager.RunSweeper(sweepCtx, ttl)
	}

	log.Info("Starting signaling server on port ", config.Port, "...")
	go func() {
		err := signalingServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Signaling server failed: ", err)
		}
	}()

	log.Info("Starting metrics server on port ", config.MetricsPort, "...")
	go func() {
		err := metricsServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Metrics server failed: ", err)
		}
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down signaling server...")
	if err := signalingServer.Shutdown(ctx); err != nil {
		log.Fatal("Signaling server shutdown failed: ", err)
	}

	log.Info("Shutting down metrics server...")
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Fatal("Metrics server shutdown failed: ", err)
	}
}
