package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/proxybase/proxybase-mcp/internal/logger"
	"github.com/proxybase/proxybase-mcp/internal/tools"
	"github.com/proxybase/proxybase-mcp/pkg/protocol"
)

// maxLineSize bounds a single JSON-RPC line on the wire.
const maxLineSize = 10 * 1024 * 1024

// Server runs the line-delimited JSON-RPC transport. One input line is fully
// processed and answered before the next is read, so responses leave in
// request order.
type Server struct {
	registry *tools.Registry
	handler  *Handler
	log      zerolog.Logger
}

func NewServer(registry *tools.Registry) *Server {
	return &Server{
		registry: registry,
		handler:  NewHandler(registry),
		log:      logger.ForComponent("server"),
	}
}

func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	return s.handler.Handle(ctx, req)
}

// ProcessStream reads requests line by line until EOF or a read error. Each
// response is written as a single line and flushed immediately. Requests
// without an id member are notifications: they are dispatched but their
// responses are discarded before the write.
func (s *Server) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	out := bufio.NewWriter(writer)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn().Err(err).Msg("discarding malformed request line")
			resp := protocol.NewErrorResponse(protocol.NullID, protocol.CodeParseError,
				fmt.Sprintf("Parse error: %v", err))
			if err := s.writeResponse(out, resp); err != nil {
				return err
			}
			continue
		}

		reqLog := s.log.With().
			Str("request_id", uuid.NewString()).
			Str("method", req.Method).
			Logger()
		reqLog.Debug().Msg("handling request")

		resp := s.handler.Handle(ctx, &req)

		if req.IsNotification() {
			reqLog.Debug().Msg("notification, response suppressed")
			continue
		}

		if err := s.writeResponse(out, resp); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		s.log.Error().Err(err).Msg("input stream read failed")
		return err
	}
	return nil
}

// writeResponse emits one response as a single line followed by a newline and
// flushes, so a line-oriented peer sees it without buffering delay.
func (s *Server) writeResponse(out *bufio.Writer, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := out.WriteByte('\n'); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return out.Flush()
}

func (s *Server) Registry() *tools.Registry {
	return s.registry
}
