// Package server exposes the page-enforcement query boundary: a local unix
// socket speaking one newline-delimited JSON request and response per
// connection. The browser-side content-script bridge is the only intended
// client.
package server

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/webtimed/webtimed/internal/core/engine"
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/util"
)

// Server answers status and site-time queries against the engine.
type Server struct {
	engine   *engine.Engine
	listener net.Listener
}

// New binds the unix socket, replacing any stale socket file from a
// previous run.
func New(socketPath string, eng *engine.Engine) (*Server, error) {
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove stale socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", socketPath, err)
	}

	return &Server{engine: eng, listener: listener}, nil
}

// Serve accepts connections until the listener closes.
func (s *Server) Serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if strings.Contains(err.Error(), "use of closed network connection") {
				return
			}
			util.LogErrorf("query accept failed: %v", err)
			continue
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		return
	}

	var req model.QueryRequest
	if err := sonic.UnmarshalString(strings.TrimSpace(line), &req); err != nil {
		util.LogWarnf("query: malformed request: %v", err)
		return
	}

	var payload interface{}
	switch req.Type {
	case model.MessageGetStatus:
		status, err := s.engine.Status(req.URL)
		if err != nil {
			util.LogErrorf("query: status failed: %v", err)
			return
		}
		payload = status

	case model.MessageGetSiteTime:
		siteTime, err := s.engine.SiteTime(req.URL)
		if err != nil {
			util.LogErrorf("query: site time failed: %v", err)
			return
		}
		payload = siteTime

	case model.MessageClassifyPage:
		if req.Metadata == nil {
			return
		}
		payload = s.engine.ClassifyPage(req.URL, *req.Metadata)

	default:
		// Unknown message types get no response.
		return
	}

	data, err := sonic.Marshal(payload)
	if err != nil {
		util.LogErrorf("query: failed to encode response: %v", err)
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		util.LogWarnf("query: failed to write response: %v", err)
	}
}

// Addr returns the listener address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close shuts the listener down.
func (s *Server) Close() error {
	return s.listener.Close()
}
