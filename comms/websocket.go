package comms

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/CodedInternet/gotarget/game"
	"github.com/gorilla/websocket"
)

// lines buffered per client before new ones are dropped
const clientBuffer = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type displayClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Broadcaster mirrors the display lines to every connected websocket client
// and hands any commands they send to the conductor.
type Broadcaster struct {
	Conductor *Conductor

	lock    sync.Mutex
	clients map[*displayClient]struct{}
}

func NewBroadcaster(conductor *Conductor) *Broadcaster {
	return &Broadcaster{
		Conductor: conductor,
		clients:   make(map[*displayClient]struct{}),
	}
}

// Emit never blocks the game loop; slow clients miss lines.
func (b *Broadcaster) Emit(msg game.Message) {
	line := []byte(msg.String())

	b.lock.Lock()
	defer b.lock.Unlock()
	for client := range b.clients {
		select {
		case client.send <- line:
		default:
		}
	}
}

func (b *Broadcaster) Count() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.clients)
}

func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}

	client := &displayClient{
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}
	b.lock.Lock()
	b.clients[client] = struct{}{}
	b.lock.Unlock()

	go client.writer()
	b.reader(client)
}

func (b *Broadcaster) reader(client *displayClient) {
	defer func() {
		b.lock.Lock()
		delete(b.clients, client)
		b.lock.Unlock()
		close(client.send)
		client.conn.Close()
	}()

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd Cmd
		if err := json.Unmarshal(raw, &cmd); err != nil {
			b.reply(client, "Error: invalid json")
			continue
		}
		if b.Conductor == nil {
			continue
		}
		if err := b.Conductor.ProcessCommand(cmd); err != nil {
			b.reply(client, "Error: "+err.Error())
		}
	}
}

func (b *Broadcaster) reply(client *displayClient, text string) {
	b.lock.Lock()
	defer b.lock.Unlock()
	select {
	case client.send <- []byte(text):
	default:
	}
}

func (c *displayClient) writer() {
	for line := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, line); err != nil {
			log.Println("write:", err)
			return
		}
	}
}
