//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/domain/user"
	"rental-contracts/internal/handler/api"
	reqdto "rental-contracts/internal/handler/dto/request"
	resdto "rental-contracts/internal/handler/dto/response"
	"rental-contracts/internal/handler/httperr"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/usecase/commands"
	"rental-contracts/internal/usecase/queries"
	"rental-contracts/tests/common/builder"
	"rental-contracts/tests/common/httptest"
	"rental-contracts/tests/common/testutil"
	commandsmock "rental-contracts/tests/mock/commands"
	queriesmock "rental-contracts/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContractHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockContractCommands
	mockQueries  *queriesmock.MockContractQueries
	handler      *api.ContractHandler
	actorID      uuid.UUID
}

func (s *ContractHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockContractCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockContractQueries(s.mockCtrl)
	s.handler = api.NewContractHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/contracts", authMiddleware, s.handler.Create)
	s.router.POST("/contracts/quote", authMiddleware, s.handler.Quote)
	s.router.GET("/contracts", authMiddleware, s.handler.List)
	s.router.GET("/contracts/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/contracts/:id", authMiddleware, s.handler.Update)
	s.router.PUT("/contracts/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.DELETE("/contracts/:id", authMiddleware, s.handler.Delete)
}

func (s *ContractHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContractHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContractHandlerTestSuite))
}

type testCaseContract struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func itemField(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items := m["items"].([]any)
		testutil.Field(key, value)(items[0].(map[string]any))
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ContractHandlerTestSuite) TestCreate() {
	url := "/contracts"

	b := builder.NewContractBuilder()
	reqBody := b.BuildCreateRequest()
	view := b.BuildView()
	created := &commands.CreateContractResult{Contract: view}

	bound := []testCaseContract{
		{name: "quantity boundary OK (1)", mutate: itemField("quantity", 1), expectCode: http.StatusCreated},
		{name: "quantity boundary invalid (0)", mutate: itemField("quantity", 0), expectCode: http.StatusBadRequest},
		{name: "daily rate zero is allowed", mutate: itemField("dailyRate", "0"), expectCode: http.StatusCreated},
		{name: "daily rate negative", mutate: itemField("dailyRate", "-1.00"), expectCode: http.StatusBadRequest},
		{name: "daily rate with cents is allowed", mutate: itemField("dailyRate", "0.01"), expectCode: http.StatusCreated},
		{name: "daily rate below a cent", mutate: itemField("dailyRate", "0.005"), expectCode: http.StatusBadRequest},
		{name: "daily rate boundary OK", mutate: itemField("dailyRate", "99999999.99"), expectCode: http.StatusCreated},
		{name: "daily rate too large", mutate: itemField("dailyRate", "100000000"), expectCode: http.StatusBadRequest},
		{name: "quantity boundary OK (100000)", mutate: itemField("quantity", 100000), expectCode: http.StatusCreated},
		{name: "quantity too large", mutate: itemField("quantity", 100001), expectCode: http.StatusBadRequest},
		{name: "notes length OK (2000 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
		{name: "notes length invalid (2001 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseContract{
		{name: "missing field: customerId", mutate: testutil.Field("customerId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: startDate", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: endDate", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: items", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: items[0].dailyRate", mutate: itemField("dailyRate", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseContract{
		{name: "empty items", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
		{name: "date in wrong format", mutate: testutil.Field("startDate", "10/03/2025"), expectCode: http.StatusBadRequest},
		{name: "impossible date", mutate: testutil.Field("endDate", "2025-02-30"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseContract{bound, missing, malformed}

	s.Run("success: returns 201 with Location", func() {
		want := b.BuildCreateInput()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Cond(func(in commands.CreateContractInput) bool {
			return in.CustomerID == want.CustomerID &&
				in.StartDate.Equal(want.StartDate) && in.EndDate.Equal(want.EndDate) &&
				len(in.Items) == 1 && in.Items[0].DailyRate.Equal(want.Items[0].DailyRate)
		}), s.actorID, (*string)(nil)).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ContractResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("CON-2025-0001", body.ContractNumber)
		s.Equal("480.00", body.TotalValue)
		s.Equal("2025-03-10", body.StartDate)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/contracts/" + view.ID.String()})
	})

	s.Run("success: replay returns 200 with marker header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actorID, gomock.Cond(func(k *string) bool {
			return k != nil && *k == "order-42"
		})).Return(&commands.CreateContractResult{Contract: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "  order-42 "})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 on blank or oversized Idempotency-Key", func() {
		for _, key := range []string{"   ", strings.Repeat("k", 256)} {
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
				map[string]string{"Idempotency-Key": key})
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range allValidationTestCases {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidation)
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		equipmentID, otherContract := uuid.New(), uuid.New()
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"customer not found", commands.ErrCustomerNotFound, http.StatusNotFound, httperr.CodeNotFound},
			{"equipment not found", errs.Mark(errors.New("no rows"), commands.ErrEquipmentNotFound), http.StatusNotFound, httperr.CodeNotFound},
			{"end before start", contract.ErrInvalidDateRange, http.StatusBadRequest, httperr.CodeInvalidDateRange},
			{"equipment busy", &contract.UnavailableError{EquipmentID: equipmentID, ConflictingContractID: otherContract}, http.StatusBadRequest, httperr.CodeEquipmentUnavailable},
			{"numbers exhausted", errs.Wrap(contract.ErrIdentifierExhausted, "next number"), http.StatusBadRequest, httperr.CodeIdentifierExhausted},
			{"key reused with other body", commands.ErrIdempotencyConflict, http.StatusConflict, httperr.CodeIdempotencyConflict},
			{"key still processing", commands.ErrIdempotencyInProgress, http.StatusConflict, httperr.CodeIdempotencyConflict},
			{"total too large", errs.Mark(contract.ErrAmountTooLarge, commands.ErrDomainValidation), http.StatusBadRequest, httperr.CodeValidation},
			{"unmarked total too large", contract.ErrAmountTooLarge, http.StatusBadRequest, httperr.CodeValidation},
			{"database error", errors.New("connection reset"), http.StatusInternalServerError, httperr.CodeInternal},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: unavailable equipment carries conflict detail", func() {
		equipmentID, otherContract := uuid.New(), uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &contract.UnavailableError{EquipmentID: equipmentID, ConflictingContractID: otherContract}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Contains(rec.Body.String(), equipmentID.String())
		s.Contains(rec.Body.String(), otherContract.String())
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *ContractHandlerTestSuite) TestQuote() {
	url := "/contracts/quote"
	eq := uuid.New()
	reqBody := map[string]any{
		"startDate": "2025-03-01",
		"endDate":   "2025-03-03",
		"items":     []any{map[string]any{"equipmentId": eq, "quantity": 2, "dailyRate": "80.00"}},
	}

	s.Run("success: returns totals", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Cond(func(in queries.QuoteInput) bool {
			return len(in.Items) == 1 && in.Items[0].EquipmentID == eq && in.Items[0].DailyRate.Equal(decimal.RequireFromString("80"))
		})).Return(&queries.ContractCalculation{
			TotalDays:  3,
			TotalValue: decimal.RequireFromString("480"),
			Items: []queries.CalculatedItem{{
				EquipmentID: eq, EquipmentName: "Excavator", Quantity: 2,
				DailyRate: decimal.RequireFromString("80"), Subtotal: decimal.RequireFromString("480"),
			}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ContractCalculationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.TotalDays)
		s.Equal("480.00", body.TotalValue)
		s.Require().Len(body.Items, 1)
		s.Equal("Excavator", body.Items[0].EquipmentName)
	})

	s.Run("error: 404 when equipment is unknown", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), queries.ErrEquipmentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Equipment not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ContractHandlerTestSuite) TestList() {
	s.Run("success: passes filters through", func() {
		customer := uuid.New()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Cond(func(f queries.ContractFilter) bool {
			return f.Status != nil && *f.Status == "approved" &&
				f.CustomerID != nil && *f.CustomerID == customer &&
				f.StartDateFrom != nil && f.Search == "acme" && f.Page == 2 && f.PageSize == 5
		})).Return(&queries.ContractPage{
			Items:      []*queries.ContractListItem{{ID: uuid.New(), Number: "CON-2025-0007", Status: "approved"}},
			Total:      6,
			Page:       2,
			PageSize:   5,
			TotalPages: 2,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/contracts?status=approved&customer_id="+customer.String()+"&start_date_from=2025-03-01&search=%20acme%20&page=2&page_size=5",
			nil, "bearer-token")

		var body resdto.ContractListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(6, body.Total)
		s.Equal(2, body.TotalPages)
		s.Require().Len(body.Items, 1)
		s.Equal("CON-2025-0007", body.Items[0].ContractNumber)
	})

	s.Run("success: defaults page and size", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Cond(func(f queries.ContractFilter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.Status == nil
		})).Return(&queries.ContractPage{Items: []*queries.ContractListItem{}, Page: 1, PageSize: 20}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/contracts", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on bad query parameters", func() {
		for _, q := range []string{"status=archived", "page=0", "page_size=101", "customer_id=nope", "start_date_to=2025-13-01"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/contracts?"+q, nil, "bearer-token")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ContractHandlerTestSuite) TestGet() {
	view := builder.NewContractBuilder().BuildView()

	s.Run("success: returns the contract", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/contracts/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ContractResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Number, body.ContractNumber)
		s.Len(body.Items, 1)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/contracts/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid contract id")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrContractNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/contracts/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ContractHandlerTestSuite) TestUpdate() {
	view := builder.NewContractBuilder().BuildView()
	url := "/contracts/" + view.ID.String()

	s.Run("success: only sent fields are forwarded", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Cond(func(in commands.UpdateContractInput) bool {
			return in.StartDate == nil && in.EndDate != nil && in.EndDate.Day() == 14 && in.Notes == nil
		}), s.actorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"endDate": "2025-03-14"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when contract is not editable", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.actorID).
			Return(nil, contract.ErrNotEditable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"notes": "x"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeNotEditable)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"startDate": "tomorrow"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *ContractHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewContractBuilder().BuildView()
	url := "/contracts/" + view.ID.String() + "/status"

	s.Run("success: forwards status and reason", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, gomock.Cond(func(in commands.UpdateStatusInput) bool {
			return in.Status == "cancelled" && in.CancellationReason != nil && *in.CancellationReason == "customer withdrew"
		}), s.actorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "cancelled", "cancellationReason": "customer withdrew"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("error: illegal transition lists allowed targets", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, gomock.Any(), s.actorID).
			Return(nil, &contract.IllegalTransitionError{From: contract.StatusFinished, To: contract.StatusActive}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "active"}, "bearer-token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeIllegalTransition)
		s.Contains(rec.Body.String(), `"from":"finished"`)
	})

	s.Run("error: 400 when cancellation reason is missing", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, gomock.Any(), s.actorID).
			Return(nil, errs.Mark(contract.ErrCancellationReasonRequired, commands.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, contract.ErrCancellationReasonRequired.Error())
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ContractHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/contracts/" + id.String()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 when contract is not a draft", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actorID).Return(contract.ErrNotDeletable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeNotDeletable)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actorID).Return(commands.ErrContractNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}
