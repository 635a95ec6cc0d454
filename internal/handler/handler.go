// Package handler runs one traffic alert invocation: fetch, derive, seal,
// archive and notify, in that order.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"github.com/chrisdamba/trafficwatch/internal/notifier"
	"github.com/chrisdamba/trafficwatch/internal/secrets"
	"github.com/chrisdamba/trafficwatch/internal/traffic"
	"github.com/chrisdamba/trafficwatch/internal/trafficapi"
	"github.com/lucsky/cuid"
	"log"
	"net/http"
)

type Sealer interface {
	Seal(ctx context.Context, plaintext []byte) ([]byte, error)
}

type Archiver interface {
	Save(ctx context.Context, data []byte) (string, error)
}

// Deps are the collaborators of one handler. Credentials is optional; when
// set it is resolved before any managed-service call.
type Deps struct {
	Credentials aws.CredentialsProvider
	Secrets     secrets.Store
	SecretName  string
	Fetcher     trafficapi.Fetcher
	Sealer      Sealer
	Archive     Archiver
	Publisher   notifier.Publisher
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Handle never returns a non-nil error: every failure is logged with its
// cause and turned into a 500 response with a stable message.
func (h *Handler) Handle(ctx context.Context, req models.TripRequest) (models.Response, error) {
	id := invocationID(ctx)

	if err := h.run(ctx, id, req); err != nil {
		kind, classified := kindOf(err)
		if !classified {
			log.Printf("[%s] unclassified error: %v", id, err)
		}
		status, message := kind.Status()
		log.Printf("[%s] %s: %v", id, message, err)
		return respond(status, message), nil
	}

	return respond(http.StatusOK, MessageSuccess), nil
}

func (h *Handler) run(ctx context.Context, id string, req models.TripRequest) error {
	if h.deps.Credentials != nil {
		if _, err := h.deps.Credentials.Retrieve(ctx); err != nil {
			return &Error{Kind: KindCredential, Op: "resolve credentials", Err: err}
		}
	}

	secret, err := h.deps.Secrets.Get(ctx, h.deps.SecretName)
	if err != nil {
		return classifyPlatform("retrieve secret", err)
	}
	subscriptionKey, err := secret.Require(h.deps.SecretName, secrets.FieldSubscriptionKey)
	if err != nil {
		return classifyPlatform("retrieve secret", err)
	}

	data, err := h.deps.Fetcher.FetchTraffic(ctx, req.From, req.To, subscriptionKey)
	if err != nil {
		return &Error{Kind: KindFetch, Op: "fetch traffic data", Err: err}
	}

	record, err := traffic.BuildRecord(req.Email, data)
	if err != nil {
		return classifyDerivation("derive traffic details", err)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return &Error{Kind: KindService, Op: "encode record", Err: err}
	}
	sealed, err := h.deps.Sealer.Seal(ctx, payload)
	if err != nil {
		return classifyPlatform("seal record", err)
	}

	key, err := h.deps.Archive.Save(ctx, sealed)
	if err != nil {
		return classifyPlatform("save record", err)
	}
	log.Printf("[%s] Traffic data saved to %s", id, key)

	alert := notifier.Alert{From: req.From, To: req.To, Email: req.Email, Record: record}
	if err := h.deps.Publisher.Publish(ctx, alert); err != nil {
		return classifyPlatform("publish alert", err)
	}
	log.Printf("[%s] Traffic alert sent", id)

	return nil
}

func respond(status int, message string) models.Response {
	body, err := json.Marshal(message)
	if err != nil {
		body = []byte(fmt.Sprintf("%q", message))
	}
	return models.Response{StatusCode: status, Body: string(body)}
}

func invocationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return cuid.New()
}
