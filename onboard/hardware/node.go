package hardware

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	rangeerrors "github.com/CodedInternet/gotarget/onboard/errors"
	"github.com/Masterminds/semver"
	"github.com/goburrow/serial"
)

const (
	BRIDGE_VERSION = "~1.0.0"
	BRIDGE_BAUD    = 115200
)

// Bridge is the microcontroller that drives servos and samples sensors on our behalf.
type Bridge struct {
	port    io.ReadWriteCloser
	rx      *bufio.Reader
	lock    sync.Mutex
	Version string
}

// OpenBridge opens the serial device and checks the bridge firmware.
func OpenBridge(address string, baud int) (b *Bridge, err error) {
	if baud == 0 {
		baud = BRIDGE_BAUD
	}
	port, err := serial.Open(&serial.Config{
		Address:  address,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  CMD_TIMEOUT,
	})
	if err != nil {
		return
	}

	b, err = NewBridge(port)
	if err != nil {
		port.Close()
	}
	return
}

// NewBridge wraps an already open port and checks the firmware version is acceptable.
func NewBridge(port io.ReadWriteCloser) (b *Bridge, err error) {
	b = &Bridge{
		port: port,
		rx:   bufio.NewReader(port),
	}

	b.Version, err = b.Do(BridgeCommand{Cmd: CMD_VERSION})
	if err != nil {
		return
	}

	err = checkVersion(b.Version)
	return
}

func checkVersion(versionString string) error {
	if versionString == "DEV" {
		// running a direct dev build of the firmware, consider it safe
		return nil
	}

	semVer, err := semver.NewVersion(versionString)
	if err != nil {
		return rangeerrors.VersionError{Component: "bridge", Got: versionString, Want: BRIDGE_VERSION}
	}

	constraint, err := semver.NewConstraint(BRIDGE_VERSION)
	if err != nil {
		return err
	}

	if !constraint.Check(semVer) {
		return rangeerrors.VersionError{Component: "bridge", Got: versionString, Want: BRIDGE_VERSION}
	}
	return nil
}

// Do sends one command and waits for its reply line. Commands that time out
// are resent up to CMD_MAX_RETRIES times.
func (b *Bridge) Do(cmd BridgeCommand) (reply string, err error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	for i := 0; i < CMD_MAX_RETRIES; i++ {
		if _, err = b.port.Write(cmd.Bytes()); err != nil {
			return
		}

		reply, err = b.rx.ReadString('\n')
		if err == serial.ErrTimeout {
			continue
		}
		if err != nil {
			return
		}

		reply = strings.TrimSpace(reply)
		if strings.HasPrefix(reply, REPLY_ERR) {
			return reply, rangeerrors.BridgeError{Cmd: cmd.String(), Reply: reply}
		}
		return reply, nil
	}

	return "", ERR_MAX_RETRIES
}

// expectOK runs a command whose only valid reply is REPLY_OK.
func (b *Bridge) expectOK(cmd BridgeCommand) error {
	reply, err := b.Do(cmd)
	if err != nil {
		return err
	}
	if reply != REPLY_OK {
		return fmt.Errorf("%v: %s replied %q", ERR_BAD_REPLY, cmd, reply)
	}
	return nil
}

func (b *Bridge) Close() error {
	return b.port.Close()
}

func (b *Bridge) Servo(pin uint8) *BridgeServo {
	return &BridgeServo{bridge: b, Pin: pin}
}

func (b *Bridge) Sensor(pin uint8) *BridgeSensor {
	return &BridgeSensor{bridge: b, Pin: pin}
}
