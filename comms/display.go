package comms

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/CodedInternet/gotarget/game"
	"github.com/goburrow/serial"
)

const DISPLAY_BAUD = 9600

// SerialDisplay writes status lines to the score board on a serial link.
type SerialDisplay struct {
	port io.Writer
	lock sync.Mutex
}

func NewSerialDisplay(port io.Writer) *SerialDisplay {
	return &SerialDisplay{port: port}
}

func OpenSerialDisplay(address string, baud int) (*SerialDisplay, io.Closer, error) {
	if baud == 0 {
		baud = DISPLAY_BAUD
	}
	port, err := serial.Open(&serial.Config{
		Address:  address,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  time.Second,
	})
	if err != nil {
		return nil, nil, err
	}

	return NewSerialDisplay(port), port, nil
}

func (d *SerialDisplay) Emit(msg game.Message) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if _, err := d.port.Write([]byte(msg.String() + "\r\n")); err != nil {
		log.Printf("display: write %s: %v", msg, err)
	}
}
