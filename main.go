package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CodedInternet/gotarget/comms"
	"github.com/CodedInternet/gotarget/game"
	. "github.com/CodedInternet/gotarget/onboard"
	"github.com/caarlos0/env/v6"
)

type EnvConfig struct {
	CONFIG    string `env:"RANGE_CONFIG" envDefault:"./range.yaml"`
	LISTEN    string `env:"RANGE_LISTEN" envDefault:"0.0.0.0:80"`
	SIMULATED bool   `env:"RANGE_SIM" envDefault:"false"`
	DEBUG     bool   `env:"DEBUG" envDefault:"false"`
}

var (
	ENV *EnvConfig
)

func main() {
	ENV = new(EnvConfig)
	if err := env.Parse(ENV); err != nil {
		log.Fatalf("Unable to parse environment: %v", err)
	}

	simulated := flag.Bool("sim", ENV.SIMULATED, "Run the range on simulated targets")
	port := flag.String("port", ENV.LISTEN, "Specify the ip:port to listen on")
	filename := flag.String("config", ENV.CONFIG, "Range config file")
	flag.Parse()

	config, err := LoadConfig(*filename)
	if err != nil {
		panic(fmt.Sprintf("Unable to load config %s: %v", *filename, err))
	}

	clock := game.SystemClock{}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	var rng *Range
	if *simulated {
		fmt.Println("Creating simulator")
		rng = NewSimulatedRange(config, clock, rnd)
	} else {
		rng, err = NewRange(config, clock, rnd)
		if err != nil {
			panic(fmt.Sprintf("Unable to initialize range: %v", err))
		}
	}
	defer rng.Close()

	conductor := new(comms.Conductor)
	broadcaster := comms.NewBroadcaster(conductor)
	sinks := game.Sinks{broadcaster}

	if len(config.Display) > 0 && !*simulated {
		display, closer, err := comms.OpenSerialDisplay(config.Display, 0)
		if err != nil {
			panic(fmt.Sprintf("Unable to open display %s: %v", config.Display, err))
		}
		defer closer.Close()
		sinks = append(sinks, display)
	}
	if ENV.DEBUG {
		sinks = append(sinks, logSink{})
	}

	session := game.NewSession(rng.Rack, sinks)
	conductor.Session = session

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go session.Run(ctx)

	shell := newShell(session, rng)
	go shell.Start()

	server := &http.Server{
		Addr:    *port,
		Handler: NewRouter(session, broadcaster),
	}
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	fmt.Println("Listening on port", *port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// logSink echoes display lines to the console.
type logSink struct{}

func (logSink) Emit(msg game.Message) {
	log.Println("display:", msg)
}
