package server

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

const (
	statusOK       = "HTTP/1.1 200 OK"
	statusNotFound = "HTTP/1.1 404 NOT FOUND"

	// Served when the page file is missing from the doc root
	missingPageBody = "404 Not Found (Missing File)"
)

// handleConn fully handles one connection: read the request line, pick
// the page, write a Content-Length framed response. It runs inside a
// pool job on some worker goroutine.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	requestLine, err := reader.ReadString('\n')
	if err != nil {
		s.logger.WithError(err).Debug("failed to read request line")
		return
	}
	requestLine = strings.TrimRight(requestLine, "\r\n")

	status, page := statusOK, "hello.html"
	switch requestLine {
	case "GET / HTTP/1.1":
	case "GET /sleep HTTP/1.1":
		s.clock.Sleep(s.slowDelay)
	default:
		status, page = statusNotFound, "404.html"
	}

	body := s.readPage(page)
	response := fmt.Sprintf("%s\r\nContent-Length: %d\r\n\r\n%s", status, len(body), body)
	if _, err := conn.Write([]byte(response)); err != nil {
		s.logger.WithError(err).Debug("failed to write response")
	}
}

// readPage loads a page from the doc root, falling back to a built-in
// body when the file is missing.
func (s *Server) readPage(name string) string {
	path := filepath.Join(s.docRoot, name)
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.WithField("page", path).WithError(err).Warn("page not readable")
		return missingPageBody
	}
	return string(data)
}
