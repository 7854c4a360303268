package predictions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/requests"
	"patient-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const maxPredictorResponseBytes = 64 << 10

type httpPremiumPredictor struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewHTTPPremiumPredictor talks to a model server exposing POST /predict.
func NewHTTPPremiumPredictor(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.PremiumPredictor {
	return &httpPremiumPredictor{
		BaseUrl: baseUrl,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Log: logger,
	}
}

func (p *httpPremiumPredictor) Predict(ctx context.Context, features requests.PremiumFeatures) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := p.BaseUrl + constvars.PredictorPredictEndpoint

	requestBody, err := json.Marshal(features)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		p.Log.Error("httpPremiumPredictor.Predict error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPredictorURLKey, url),
			zap.Error(err),
		)
		return "", exceptions.ErrPredictorUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		p.Log.Error("httpPremiumPredictor.Predict unexpected status from predictor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", exceptions.ErrPredictorUnexpectedStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPredictorResponseBytes))
	if err == nil {
		err = validatePredictorResponse(body)
	}
	if err != nil {
		p.Log.Error("httpPremiumPredictor.Predict error decoding predictor response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPredictorDecodeResponse(err)
	}

	return gjson.GetBytes(body, constvars.PredictorLabelField).String(), nil
}

// validatePredictorResponse requires a JSON object carrying a non-empty string
// label. Any other fields the model server adds are ignored.
func validatePredictorResponse(body []byte) error {
	if !gjson.ValidBytes(body) {
		return errors.New("predictor response is not valid JSON")
	}
	label := gjson.GetBytes(body, constvars.PredictorLabelField)
	if label.Type != gjson.String || label.Str == "" {
		return fmt.Errorf("%s missing from predictor response", constvars.PredictorLabelField)
	}
	return nil
}
