package hardware

// BridgeServo is a servo wired to one of the bridge's PWM pins.
type BridgeServo struct {
	bridge   *Bridge
	Pin      uint8
	Attached bool
	Angle    float64 // last commanded angle
}

func (s *BridgeServo) Attach() error {
	if s.Attached {
		return nil
	}
	if err := s.bridge.expectOK(BridgeCommand{Cmd: CMD_ATTACH, Pin: s.Pin}); err != nil {
		return err
	}
	s.Attached = true
	return nil
}

func (s *BridgeServo) Write(angle float64) error {
	s.Angle = angle
	return s.bridge.expectOK(BridgeCommand{
		Cmd:  CMD_WRITE,
		Pin:  s.Pin,
		Args: []int{PulseWidth(angle)},
	})
}

// Detach releases the servo so it stops holding position and drawing power.
func (s *BridgeServo) Detach() error {
	if err := s.bridge.expectOK(BridgeCommand{Cmd: CMD_DETACH, Pin: s.Pin}); err != nil {
		return err
	}
	s.Attached = false
	return nil
}

// BridgeSensor is an analog impact sensor on one of the bridge's ADC pins.
type BridgeSensor struct {
	bridge *Bridge
	Pin    uint8
}

func (s *BridgeSensor) Read() (uint16, error) {
	reply, err := s.bridge.Do(BridgeCommand{Cmd: CMD_READ, Pin: s.Pin})
	if err != nil {
		return 0, err
	}
	return parseReading(reply)
}
