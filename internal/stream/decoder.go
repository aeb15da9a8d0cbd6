package stream

import (
	"bufio"
	stderrors "errors"
	"io"
	"strings"
	"sync/atomic"

	"github.com/vatwatch/vatwatch/internal/errors"
	"github.com/vatwatch/vatwatch/internal/logger"
	"github.com/vatwatch/vatwatch/internal/sample"
)

// ErrStreamEnded reports that the server closed the stream cleanly.
// It is distinct from transport failures, which surface as structured
// errors with code STREAM.
var ErrStreamEnded = stderrors.New("stream ended by server")

// dataPrefix marks SSE event lines that carry a payload. Anything else
// (blank keep-alives, comment lines) is ignored.
const dataPrefix = "data:"

// maxLineBytes bounds a single event line. Events are small JSON objects;
// 1 MiB leaves plenty of headroom.
const maxLineBytes = 1 << 20

// Stream is a live, non-restartable sequence of samples decoded from one
// SSE connection. Once Next returns a terminal error the stream is done;
// resuming requires opening a new one.
type Stream struct {
	url     string
	body    io.ReadCloser
	scanner *bufio.Scanner
	log     logger.Logger
	closed  atomic.Bool
}

func newStream(url string, body io.ReadCloser, log logger.Logger) *Stream {
	sc := bufio.NewScanner(body)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Stream{
		url:     url,
		body:    body,
		scanner: sc,
		log:     log,
	}
}

// URL returns the endpoint this stream was opened against.
func (s *Stream) URL() string {
	return s.url
}

// Next blocks until the next decodable event arrives and returns it.
//
// Lines that are blank, lack the data: prefix, or fail to parse as JSON
// are skipped silently and never surface to the caller. Terminal
// conditions: ErrStreamEnded when the server closes the connection
// cleanly or Close is called, a STREAM error on transport failure.
func (s *Stream) Next() (sample.Sample, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, dataPrefix))
		smp, err := sample.Decode([]byte(payload))
		if err != nil {
			// Malformed event: local recovery, keep reading.
			s.log.Debug("skipping malformed event: %v", err)
			continue
		}
		return smp, nil
	}

	if err := s.scanner.Err(); err != nil && !s.closed.Load() {
		return sample.Sample{}, errors.WrapWithCode(err, errors.ErrStream,
			"Lost connection to "+s.url,
			"Press r to reconnect once the server is reachable again")
	}

	// Clean EOF, or the read was unblocked by Close.
	return sample.Sample{}, ErrStreamEnded
}

// Close releases the connection. A Next call blocked on the transport
// returns ErrStreamEnded promptly. Safe to call more than once.
func (s *Stream) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.body.Close()
}
