// Package server serves independent play sessions over SSH.
package server

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/gliderlabs/ssh"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// statusRows is the number of text rows drawn below the map.
const statusRows = 1

// SSHServer wraps the SSH listener. Every connection gets its own level.
type SSHServer struct {
	addr    string
	hostKey string
	config  game.Config
	palette *gamedata.Palette
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr, hostKey string, cfg game.Config, palette *gamedata.Palette) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		config:  cfg,
		palette: palette,
	}
}

// Start begins listening for SSH connections. It blocks until the listener fails.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr:    s.addr,
		Handler: s.handleSession,
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, _, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "anonymous"
	}

	needW, needH := world.DefaultWidth, world.DefaultHeight+statusRows
	if ptyReq.Window.Width < needW || ptyReq.Window.Height < needH {
		fmt.Fprintf(sess, "Terminal is %dx%d; at least %dx%d is needed.\r\n",
			ptyReq.Window.Width, ptyReq.Window.Height, needW, needH)
		return
	}

	ctx := sess.Context()
	session := game.NewSession(ctx, s.config)

	log.Printf("Player connected: %s (seed %d, %d rooms)", username, session.Seed, len(session.Level.Rooms))
	defer log.Printf("Player disconnected: %s", username)

	canvas := NewANSICanvas(sess, needW, needH)
	renderer := ui.NewRenderer(canvas, s.palette)

	io.WriteString(sess, enableAltScreen())
	io.WriteString(sess, hideCursor())
	io.WriteString(sess, clearScreen())
	defer func() {
		io.WriteString(sess, showCursor())
		io.WriteString(sess, disableAltScreen())
	}()

	inputCh := make(chan ui.Intent, 16)
	go readInput(ctx, sess, inputCh)

	status := fmt.Sprintf("%s  seed %d  arrows/hjkl/wasd: move  q: quit", username, session.Seed)
	draw := func() {
		renderer.Render(session.Level.Grid, session.Entities, status)
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return
		case intent, ok := <-inputCh:
			if !ok || !session.Apply(ctx, intent) {
				return
			}
			draw()
			if err := canvas.Err(); err != nil {
				log.Printf("Write to %s failed: %v", username, err)
				return
			}
		}
	}
}

// readInput decodes bytes from r into intents until r fails or ctx is done,
// then closes out.
func readInput(ctx context.Context, r io.Reader, out chan<- ui.Intent) {
	defer close(out)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		for _, intent := range parseInput(buf[:n]) {
			select {
			case out <- intent:
			case <-ctx.Done():
				return
			}
			if intent == ui.IntentQuit {
				return
			}
		}
	}
}
