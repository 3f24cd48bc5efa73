package onboard

import (
	"fmt"
	"io/ioutil"
	"math"

	rangeerrors "github.com/CodedInternet/gotarget/onboard/errors"
	"github.com/Masterminds/semver"
	"gopkg.in/yaml.v2"
)

// Config file versions this build understands
const CONFIG_VERSION = "~1.0"

type RangeConfig struct {
	Version string
	Bridge  string // serial device of the servo/sensor bridge
	Display string // serial device of the score display, optional
	Baud    int
	Targets []TargetConfig
}

type TargetConfig struct {
	Sensor uint8
	Servo  uint8
	BScore int `yaml:"bscore"`

	invalid string // set when the short form did not fit, reported by Validate
}

// UnmarshalYAML accepts either the mapping form or the short [sensor, servo, bscore] form.
func (tc *TargetConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var short []int
	if err := unmarshal(&short); err == nil {
		if len(short) != 3 {
			return fmt.Errorf("target needs [sensor, servo, bscore], got %v", short)
		}
		for i, name := range []string{"sensor", "servo"} {
			if short[i] < 0 || short[i] > math.MaxUint8 {
				tc.invalid = fmt.Sprintf("%s pin %d out of range", name, short[i])
				return nil
			}
		}
		tc.Sensor = uint8(short[0])
		tc.Servo = uint8(short[1])
		tc.BScore = short[2]
		return nil
	}

	type plain TargetConfig
	return unmarshal((*plain)(tc))
}

func ParseConfig(raw []byte) (config RangeConfig, err error) {
	err = yaml.Unmarshal(raw, &config)
	if err != nil {
		return
	}

	err = config.Validate()
	return
}

func LoadConfig(filename string) (config RangeConfig, err error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return
	}

	return ParseConfig(raw)
}

func (c RangeConfig) Validate() error {
	semVer, err := semver.NewVersion(c.Version)
	if err != nil {
		return rangeerrors.VersionError{Component: "config", Got: c.Version, Want: CONFIG_VERSION}
	}

	constraint, err := semver.NewConstraint(CONFIG_VERSION)
	if err != nil {
		return err
	}
	if !constraint.Check(semVer) {
		return rangeerrors.VersionError{Component: "config", Got: c.Version, Want: CONFIG_VERSION}
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets configured")
	}

	sensors := make(map[uint8]int)
	servos := make(map[uint8]int)
	for i, t := range c.Targets {
		if len(t.invalid) > 0 {
			return rangeerrors.TargetConfigError{Index: i, Reason: t.invalid}
		}
		if j, ok := sensors[t.Sensor]; ok {
			return rangeerrors.TargetConfigError{Index: i, Reason: fmt.Sprintf("sensor %d already used by target %d", t.Sensor, j)}
		}
		if j, ok := servos[t.Servo]; ok {
			return rangeerrors.TargetConfigError{Index: i, Reason: fmt.Sprintf("servo %d already used by target %d", t.Servo, j)}
		}
		sensors[t.Sensor] = i
		servos[t.Servo] = i
	}

	return nil
}
