package hardware

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	CMD_VERSION = 'V'
	CMD_ATTACH  = 'A'
	CMD_WRITE   = 'W'
	CMD_DETACH  = 'D'
	CMD_READ    = 'R'

	REPLY_OK  = "OK"
	REPLY_ERR = "ERR"

	CMD_MAX_RETRIES = 5
	CMD_TIMEOUT     = 50 * time.Millisecond
)

var (
	ERR_MAX_RETRIES = errors.New("CMD_MAX_RETRIES reached while waiting for the bridge")
	ERR_BAD_REPLY   = errors.New("malformed reply from bridge")
)

// BridgeCommand is a single request line for the bridge firmware.
type BridgeCommand struct {
	Cmd  byte
	Pin  uint8
	Args []int
}

func (c BridgeCommand) String() string {
	var b strings.Builder
	b.WriteByte(c.Cmd)
	if c.Cmd != CMD_VERSION {
		b.WriteString(strconv.Itoa(int(c.Pin)))
	}
	for _, arg := range c.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(arg))
	}
	return b.String()
}

// Bytes returns the newline terminated wire form.
func (c BridgeCommand) Bytes() []byte {
	return []byte(c.String() + "\n")
}

// parseReading decodes the reply to CMD_READ.
func parseReading(reply string) (uint16, error) {
	val, err := strconv.ParseUint(reply, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%v: %q", ERR_BAD_REPLY, reply)
	}
	return uint16(val), nil
}
