package archive

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	humanize "github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// MaxPayloadSize caps the decompressed size of a log batch
var MaxPayloadSize int64 = 256 * 1024 * 1024

// Batch is a decoded CloudWatch Logs subscription delivery. Fields other than
// the ones read by the accessors are carried through untouched.
type Batch struct {
	fields map[string]interface{}
	raw    []byte
}

// Decode reads a subscription event envelope and returns the log batch it carries
func Decode(event []byte) (*Batch, error) {
	var e events.CloudwatchLogsEvent

	if err := json.Unmarshal(event, &e); err != nil {
		return nil, newError(KindMalformedEvent, errors.Wrap(err, "invalid event envelope"))
	}

	return DecodeData(e.AWSLogs.Data)
}

// DecodeData decodes the base64 gzip payload found at awslogs.data
func DecodeData(data string) (*Batch, error) {
	if data == "" {
		return nil, newError(KindMalformedEvent, errors.New("missing awslogs.data"))
	}

	compressed, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, newError(KindMalformedEvent, errors.Wrap(err, "invalid base64 in awslogs.data"))
	}

	payload, err := gunzip(compressed)
	if err != nil {
		return nil, newError(KindDecompression, err)
	}

	return Parse(payload)
}

// Parse reads a decompressed log batch
func Parse(payload []byte) (*Batch, error) {
	if !utf8.Valid(payload) {
		return nil, newError(KindParse, errors.New("payload is not valid utf-8"))
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var v interface{}

	if err := dec.Decode(&v); err != nil {
		return nil, newError(KindParse, errors.Wrap(err, "invalid json payload"))
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, newError(KindParse, errors.New("invalid json payload: trailing data"))
	}

	fields, ok := v.(map[string]interface{})
	if !ok {
		return nil, newError(KindParse, errors.New("payload is not a json object"))
	}

	if group, _ := fields["logGroup"].(string); group == "" {
		return nil, newError(KindParse, errors.New("payload has no logGroup"))
	}

	return &Batch{fields: fields, raw: payload}, nil
}

func (b *Batch) LogGroup() string {
	return b.string("logGroup")
}

func (b *Batch) LogStream() string {
	return b.string("logStream")
}

func (b *Batch) MessageType() string {
	return b.string("messageType")
}

// LogEvents returns the number of entries in logEvents
func (b *Batch) LogEvents() int {
	if es, ok := b.fields["logEvents"].([]interface{}); ok {
		return len(es)
	}

	return 0
}

// Fields returns the decoded payload
func (b *Batch) Fields() map[string]interface{} {
	return b.fields
}

// MarshalIndent returns the batch as indented json, keeping the field order
// and number literals of the delivered payload
func (b *Batch) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer

	if err := json.Indent(&buf, bytes.TrimRight(b.raw, " \t\r\n"), "", "  "); err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}

func (b *Batch) string(name string) string {
	s, _ := b.fields[name].(string)
	return s
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "invalid gzip stream")
	}
	defer r.Close()

	payload, err := io.ReadAll(io.LimitReader(r, MaxPayloadSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "invalid gzip stream")
	}

	if int64(len(payload)) > MaxPayloadSize {
		return nil, errors.Errorf("decompressed payload exceeds %s", humanize.IBytes(uint64(MaxPayloadSize)))
	}

	return payload, nil
}
