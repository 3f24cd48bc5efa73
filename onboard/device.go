package onboard

import (
	"fmt"

	"github.com/CodedInternet/gotarget/game"
	"github.com/CodedInternet/gotarget/onboard/hardware"
)

// Range is the physical (or simulated) set of targets described by a config.
type Range struct {
	Rack    *game.Rack
	Sensors []*SimulatedSensor // only populated when simulated

	bridge *hardware.Bridge
}

// NewRange opens the bridge and attaches every configured target.
func NewRange(config RangeConfig, clock game.Clock, rand game.Rand) (r *Range, err error) {
	if len(config.Bridge) == 0 {
		return nil, fmt.Errorf("no bridge device configured")
	}

	bridge, err := hardware.OpenBridge(config.Bridge, config.Baud)
	if err != nil {
		return nil, fmt.Errorf("unable to open bridge %s: %v", config.Bridge, err)
	}
	fmt.Printf("Bridge %s running firmware %s\n", config.Bridge, bridge.Version)

	r = &Range{
		Rack:   game.NewRack(clock, rand),
		bridge: bridge,
	}
	for _, tc := range config.Targets {
		target := game.NewTarget(tc.Sensor, tc.Servo, tc.BScore, bridge.Servo(tc.Servo), bridge.Sensor(tc.Sensor))
		target.Attach(r.Rack)
	}

	return
}

// NewSimulatedRange builds the configured targets on simulated hardware.
func NewSimulatedRange(config RangeConfig, clock game.Clock, rand game.Rand) (r *Range) {
	r = &Range{
		Rack:    game.NewRack(clock, rand),
		Sensors: make([]*SimulatedSensor, len(config.Targets)),
	}

	for i, tc := range config.Targets {
		sensor := NewSimulatedSensor(tc.Sensor, clock, rand)
		r.Sensors[i] = sensor
		target := game.NewTarget(tc.Sensor, tc.Servo, tc.BScore, &SimulatedServo{Pin: tc.Servo}, sensor)
		target.Attach(r.Rack)
	}

	return
}

// Shoot queues an impact on a simulated target.
func (r *Range) Shoot(index int) error {
	if r.Sensors == nil {
		return fmt.Errorf("shooting is only available on a simulated range")
	}
	if index < 0 || index >= len(r.Sensors) {
		return game.ErrNoSuchTarget
	}

	r.Sensors[index].Trigger(SENSOR_IMPACT)
	return nil
}

func (r *Range) Simulated() bool {
	return r.bridge == nil
}

func (r *Range) Close() error {
	if r.bridge == nil {
		return nil
	}
	return r.bridge.Close()
}
