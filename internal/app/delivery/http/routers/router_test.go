package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"patient-service/internal/app/config"
	"patient-service/internal/app/delivery/http/controllers"
	"patient-service/internal/app/delivery/http/middlewares"
	"patient-service/internal/app/services/core/patients"
	"patient-service/internal/app/services/core/predictions"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/requests"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPremiumPredictor struct {
	mock.Mock
}

func (m *MockPremiumPredictor) Predict(ctx context.Context, features requests.PremiumFeatures) (string, error) {
	args := m.Called(ctx, features)
	return args.String(0), args.Error(1)
}

type testResponse struct {
	StatusCode int             `json:"status_code"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []string        `json:"errors"`
}

func newTestRouter(t *testing.T, predictor *MockPremiumPredictor) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			Env:                         constvars.AppEnvDevelopment,
			Version:                     "v1.0",
			Tag:                         "test",
			MaxRequests:                 1000,
			RequestBodyLimitInMegabyte:  1,
			PredictMaxRequestsPerMinute: 100,
			PredictBlockTimeInSeconds:   60,
		},
		Store: config.AppStore{
			Driver:   constvars.StoreDriverFile,
			FilePath: filepath.Join(t.TempDir(), "patients.json"),
		},
	}

	patientRepository := patients.NewPatientFileRepository(internalConfig.Store.FilePath)
	patientUsecase := patients.NewPatientUsecase(patientRepository, nil, nil, nil, nil, internalConfig.Store, logger)
	predictionUsecase := predictions.NewPredictionUsecase(predictor, logger)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewHomeController(internalConfig),
		controllers.NewPatientController(logger, patientUsecase),
		controllers.NewPredictionController(logger, predictionUsecase),
	)
	return router
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response testResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response), "body should be JSON: %s", rr.Body.String())
	return rr, response
}

const createRavi = `{"id":"P001","name":"Ravi","city":"Delhi","age":35,"gender":"Male","height":1.75,"weight":72}`

func TestRouter_HomeRoutes(t *testing.T) {
	router := newTestRouter(t, new(MockPremiumPredictor))

	rr, response := doRequest(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Patient Management System API!", response.Message)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "a request id should be generated")

	rr, response = doRequest(t, router, http.MethodGet, "/about", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "A fully functional API to access patients data", response.Message)
}

func TestRouter_PatientLifecycle(t *testing.T) {
	router := newTestRouter(t, new(MockPremiumPredictor))

	t.Run("Create", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodPost, "/create", createRavi)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Patient with id P001 has been added successfully.", response.Message)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodPost, "/create", createRavi)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Patient already exists", response.Message)
		assert.False(t, response.Success)
	})

	t.Run("Create with wrong types", func(t *testing.T) {
		rr, _ := doRequest(t, router, http.MethodPost, "/create", `{"id":"P002","name":"A","city":"B","age":"ten","gender":"Male","height":1.7,"weight":60}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Create with fractional weight", func(t *testing.T) {
		rr, _ := doRequest(t, router, http.MethodPost, "/create", `{"id":"P002","name":"A","city":"B","age":30,"gender":"Male","height":1.7,"weight":72.5}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Create with missing fields lists them all", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodPost, "/create", `{"id":"P003","name":"A"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Len(t, response.Errors, 5)
	})

	t.Run("Get by id", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodGet, "/patient/P001", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		var patient map[string]interface{}
		require.NoError(t, json.Unmarshal(response.Data, &patient))
		assert.Equal(t, "P001", patient["id"])
		assert.Equal(t, 23.51, patient["bmi"])
		assert.Equal(t, constvars.VerdictNormal, patient["verdict"])
	})

	t.Run("Get unknown id", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodGet, "/patient/does-not-exist", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Patient Id not found", response.Message)
	})

	t.Run("View all is keyed by id", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodGet, "/view", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		var view map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(response.Data, &view))
		require.Contains(t, view, "P001")
		assert.NotContains(t, view["P001"], "id")
	})

	t.Run("Edit weight only", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodPut, "/edit/P001", `{"weight":95}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Patient successfully updated", response.Message)

		_, response = doRequest(t, router, http.MethodGet, "/patient/P001", "")
		var patient map[string]interface{}
		require.NoError(t, json.Unmarshal(response.Data, &patient))
		assert.Equal(t, "Ravi", patient["name"])
		assert.Equal(t, 1.75, patient["height"])
		assert.Equal(t, float64(95), patient["weight"])
		assert.Equal(t, constvars.VerdictObese, patient["verdict"])
	})

	t.Run("Edit with null field", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodPut, "/edit/P001", `{"city":null}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"city is required"}, response.Errors)
	})

	t.Run("Edit unknown id", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodPut, "/edit/P404", `{"weight":70}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Patient not found", response.Message)
	})
}

func TestRouter_Sort(t *testing.T) {
	router := newTestRouter(t, new(MockPremiumPredictor))
	doRequest(t, router, http.MethodPost, "/create", `{"id":"A","name":"A","city":"Pune","age":20,"gender":"Female","height":1.0,"weight":22}`)
	doRequest(t, router, http.MethodPost, "/create", `{"id":"B","name":"B","city":"Pune","age":21,"gender":"Male","height":1.0,"weight":18}`)

	t.Run("Descending bmi", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodGet, "/sort?sort_by=bmi&order=desc", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		var sorted []map[string]interface{}
		require.NoError(t, json.Unmarshal(response.Data, &sorted))
		require.Len(t, sorted, 2)
		assert.Equal(t, "A", sorted[0]["id"])
		assert.Equal(t, "B", sorted[1]["id"])
	})

	t.Run("Invalid field", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodGet, "/sort?sort_by=invalid", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid field, select from [height bmi weight]", response.Message)
	})

	t.Run("Invalid order", func(t *testing.T) {
		rr, response := doRequest(t, router, http.MethodGet, "/sort?sort_by=height&order=up", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid order, select from asc or desc", response.Message)
	})
}

func TestRouter_Predict(t *testing.T) {
	predictor := new(MockPremiumPredictor)
	router := newTestRouter(t, predictor)

	predictor.On("Predict", mock.Anything, mock.MatchedBy(func(features requests.PremiumFeatures) bool {
		return features.CityTier == constvars.CityTierOne && features.LifestyleRisk == constvars.LifestyleRiskHigh
	})).Return("High", nil).Once()

	rr, response := doRequest(t, router, http.MethodPost, "/predict",
		`{"age":40,"weight":100,"height":1.7,"income_lpa":20,"smoker":true,"city":"Mumbai","occupation":"business_owner"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(response.Data, &result))
	assert.Equal(t, "High", result["predicted_category"])
	predictor.AssertExpectations(t)

	rr, _ = doRequest(t, router, http.MethodPost, "/predict", `{"age":40}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
