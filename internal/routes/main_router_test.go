package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/customvalidator"
	"maintenance-system/pkg/utils"
)

// ApiTestSuite гоняет полный жизненный цикл через HTTP поверх memory-хранилища:
// без базы, без сети, каждый тест — со свежим состоянием.
type ApiTestSuite struct {
	suite.Suite
	Echo *echo.Echo
}

func (s *ApiTestSuite) SetupTest() {
	e := echo.New()

	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	InitRouter(e, store.NewMemoryStore(), zap.NewNop())
	s.Echo = e
}

func (s *ApiTestSuite) request(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Body    json.RawMessage `json:"body"`
	Message string          `json:"message"`
}

func (s *ApiTestSuite) decode(rec *httptest.ResponseRecorder, out interface{}) {
	var envelope apiEnvelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().True(envelope.Status, "ожидался успешный ответ, получено: %s", rec.Body.String())
	if out != nil {
		s.Require().NoError(json.Unmarshal(envelope.Body, out))
	}
}

func (s *ApiTestSuite) createEquipment(name string) entities.Equipment {
	rec := s.request(http.MethodPost, "/api/equipment", map[string]interface{}{
		"name":     name,
		"category": "Power",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var eq entities.Equipment
	s.decode(rec, &eq)
	return eq
}

func (s *ApiTestSuite) createRequest(subject, equipmentID string) entities.MaintenanceRequest {
	rec := s.request(http.MethodPost, "/api/requests", map[string]interface{}{
		"subject":     subject,
		"equipmentId": equipmentID,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var r entities.MaintenanceRequest
	s.decode(rec, &r)
	return r
}

func (s *ApiTestSuite) TestEquipmentCRUD() {
	eq := s.createEquipment("CNC Machine #1")
	s.NotEmpty(eq.ID)
	s.False(eq.IsScrap)

	rec := s.request(http.MethodGet, "/api/equipment/"+eq.ID, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPut, "/api/equipment/"+eq.ID, map[string]interface{}{"location": "Factory Floor A"})
	s.Equal(http.StatusOK, rec.Code)
	var updated entities.Equipment
	s.decode(rec, &updated)
	s.Equal("Factory Floor A", updated.Location)
	s.Equal("CNC Machine #1", updated.Name)

	rec = s.request(http.MethodDelete, "/api/equipment/"+eq.ID, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/equipment/"+eq.ID, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ApiTestSuite) TestCreateRequest_ValidationError() {
	rec := s.request(http.MethodPost, "/api/requests", map[string]interface{}{"subject": "No equipment"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/requests", map[string]interface{}{
		"subject":     "Bad stage",
		"equipmentId": "eq1",
		"stage":       "done",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ApiTestSuite) TestRequestLifecycleWithScrap() {
	eq := s.createEquipment("Forklift #3")
	r := s.createRequest("Beyond repair", eq.ID)
	s.Equal("new", r.Stage)

	rec := s.request(http.MethodPut, fmt.Sprintf("/api/requests/%s/stage", r.ID), map[string]string{"stage": "in-progress"})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/requests/%s/stage", r.ID), map[string]string{"stage": "scrap"})
	s.Equal(http.StatusOK, rec.Code)
	var scrapped entities.MaintenanceRequest
	s.decode(rec, &scrapped)
	s.Equal("scrap", scrapped.Stage)

	// Побочный эффект: оборудование помечено списанным
	rec = s.request(http.MethodGet, "/api/equipment/"+eq.ID, nil)
	s.Equal(http.StatusOK, rec.Code)
	var marked entities.Equipment
	s.decode(rec, &marked)
	s.True(marked.IsScrap)
	s.NotEmpty(marked.ScrapDate)

	// Неизвестная стадия отклоняется
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/requests/%s/stage", r.ID), map[string]string{"stage": "broken"})
	s.Equal(http.StatusBadRequest, rec.Code)

	// Дашборд видит списание: заявка в группе своей категории, оборудование критично
	rec = s.request(http.MethodGet, "/api/requests/analytics/dashboard", nil)
	s.Equal(http.StatusOK, rec.Code)
	var stats struct {
		CriticalEquipment int `json:"critical_equipment"`
		ByCategory        []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"by_category"`
	}
	s.decode(rec, &stats)
	s.Equal(1, stats.CriticalEquipment)
	s.Require().Len(stats.ByCategory, 1)
	s.Equal("Power", stats.ByCategory[0].Name)
	s.Equal(1, stats.ByCategory[0].Count)
}

func (s *ApiTestSuite) TestComments() {
	eq := s.createEquipment("Server Rack #2")
	r := s.createRequest("Quarterly maintenance", eq.ID)

	rec := s.request(http.MethodPost, fmt.Sprintf("/api/requests/%s/comments", r.ID), map[string]string{
		"author": "Emily Davis",
		"text":   "Replaced two fans",
	})
	s.Equal(http.StatusCreated, rec.Code)
	var updated entities.MaintenanceRequest
	s.decode(rec, &updated)
	s.Require().Len(updated.Comments, 1)
	s.Equal("Emily Davis", updated.Comments[0].Author)

	rec = s.request(http.MethodPost, fmt.Sprintf("/api/requests/%s/comments", r.ID), map[string]string{"text": ""})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ApiTestSuite) TestDashboard() {
	eq := s.createEquipment("Generator Backup")
	s.createRequest("Oil Leak", eq.ID)
	r2 := s.createRequest("Overheating", eq.ID)

	rec := s.request(http.MethodPut, fmt.Sprintf("/api/requests/%s/stage", r2.ID), map[string]string{"stage": "in-progress"})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/requests/analytics/dashboard", nil)
	s.Equal(http.StatusOK, rec.Code)

	var stats struct {
		TechnicianLoad int `json:"technician_load"`
		OpenRequests   int `json:"open_requests"`
		ByStage        struct {
			New        int `json:"new"`
			InProgress int `json:"in_progress"`
		} `json:"by_stage"`
	}
	s.decode(rec, &stats)
	s.Equal(2, stats.OpenRequests)
	s.Equal(50, stats.TechnicianLoad)
	s.Equal(1, stats.ByStage.New)
	s.Equal(1, stats.ByStage.InProgress)
}

func (s *ApiTestSuite) TestCalendar() {
	eq := s.createEquipment("Generator Backup")

	rec := s.request(http.MethodPost, "/api/requests", map[string]interface{}{
		"subject":       "Monthly Preventive Check",
		"equipmentId":   eq.ID,
		"type":          "preventive",
		"scheduledDate": "2030-05-01",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.request(http.MethodGet, "/api/requests/calendar?date=2030-05-01", nil)
	s.Equal(http.StatusOK, rec.Code)
	var matched []entities.MaintenanceRequest
	s.decode(rec, &matched)
	s.Require().Len(matched, 1)
	s.Equal("Monthly Preventive Check", matched[0].Subject)

	// Без параметра date — ошибка
	rec = s.request(http.MethodGet, "/api/requests/calendar", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodGet, "/api/requests/calendar?date=01.05.2030", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ApiTestSuite) TestReportRegister() {
	eq := s.createEquipment("CNC Machine #1")
	s.createRequest("Oil Leak Detected", eq.ID)

	rec := s.request(http.MethodGet, "/api/requests/report", nil)
	s.Equal(http.StatusOK, rec.Code)

	var rows []struct {
		Subject   string `json:"subject"`
		Equipment string `json:"equipment"`
		Category  string `json:"category"`
		Team      string `json:"team"`
	}
	s.decode(rec, &rows)
	s.Require().Len(rows, 1)
	s.Equal("Oil Leak Detected", rows[0].Subject)
	s.Equal("CNC Machine #1", rows[0].Equipment)
	s.Equal("Power", rows[0].Category)
	s.Equal("Unassigned", rows[0].Team)

	// XLSX-выгрузка отдает attachment
	rec = s.request(http.MethodGet, "/api/requests/report?format=xlsx", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Disposition"), "attachment")
}

func TestApiTestSuite(t *testing.T) {
	suite.Run(t, new(ApiTestSuite))
}
