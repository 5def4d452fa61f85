package archive

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/convox/logarchive/pkg/helpers"
	"github.com/convox/logarchive/pkg/storage"
	"github.com/convox/logger"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const (
	StatusOK      = 200
	StatusMessage = "Log processed and stored in S3"
)

var Logger = logger.New("ns=logarchive")

// Response is returned to the invoking platform on success
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler stores CloudWatch Logs subscription deliveries in a bucket
type Handler struct {
	Bucket string
	Store  storage.Store

	// Now returns the time used to build storage keys, defaults to time.Now
	Now func() time.Time
}

func New(bucket string, store storage.Store) *Handler {
	return &Handler{
		Bucket: bucket,
		Store:  store,
		Now:    time.Now,
	}
}

// Handle processes a single subscription event
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (Response, error) {
	if _, err := h.Process(ctx, event); err != nil {
		return Response{}, err
	}

	return Response{StatusCode: StatusOK, Body: StatusMessage}, nil
}

// Process decodes an event, stores its log batch and returns the key written
func (h *Handler) Process(ctx context.Context, event []byte) (string, error) {
	log := Logger.At("process").Start()

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.Namespace("request=%s", lc.AwsRequestID)
	}

	log.Step("received").Logf("size=%s", humanize.Bytes(uint64(len(event))))

	batch, err := Decode(event)
	if err != nil {
		return "", h.fail(log, err)
	}

	log.Step("decoded").Logf("group=%q stream=%q type=%q events=%d", batch.LogGroup(), batch.LogStream(), batch.MessageType(), batch.LogEvents())

	key := Key(batch.LogGroup(), h.now())

	body, err := batch.MarshalIndent()
	if err != nil {
		return "", h.fail(log, newError(KindParse, err))
	}

	log = log.Namespace("bucket=%q key=%q", h.Bucket, key)

	log.Step("store").Logf("size=%s", humanize.Bytes(uint64(len(body))))

	if err := h.Store.Put(ctx, h.Bucket, key, body); err != nil {
		return "", h.fail(log, newError(KindStorage, err))
	}

	log.Step("stored").Success()

	return key, nil
}

func (h *Handler) fail(log *logger.Logger, err error) error {
	log = log.Step("failed").Namespace("kind=%s", ErrorKind(err))

	if ErrorStorage(err) {
		if code := helpers.AwsErrorCode(errors.Cause(err)); code != "" {
			log = log.Namespace("code=%s", code)
		}
	}

	return log.Error(err)
}

func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}

	return h.Now()
}
