package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "rental-contracts/internal/handler/dto/request"
	resdto "rental-contracts/internal/handler/dto/response"
	"rental-contracts/internal/handler/httperr"
	"rental-contracts/internal/handler/middleware"
	"rental-contracts/internal/usecase/commands"
	"rental-contracts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxIdempotencyKeyLength = 255

var errInvalidIdempotencyKey = errors.New("invalid idempotency key")

type ContractHandler struct {
	cmds commands.ContractCommands
	q    queries.ContractQueries
}

func NewContractHandler(cmds commands.ContractCommands, q queries.ContractQueries) *ContractHandler {
	return &ContractHandler{cmds: cmds, q: q}
}

// @Summary Create contract
// @Description Create a draft rental contract. Equipment must be free for the whole period.
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the original response for repeated requests"
// @Param request body reqdto.CreateContractRequest true "Contract to create"
// @Success 201 {object} resdto.ContractResponse
// @Success 200 {object} resdto.ContractResponse "Replayed by idempotency key"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithContractError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), in, actorID, idempotencyKey)
	if err != nil {
		abortWithContractError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	c.Header("Location", "/api/contracts/"+result.Contract.ID.String())
	c.JSON(status, resdto.FromContractView(result.Contract))
}

// @Summary Quote contract
// @Description Price a prospective contract without saving it
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteContractRequest true "Period and items to price"
// @Success 200 {object} resdto.ContractCalculationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/quote [post]
func (h *ContractHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithContractError(c, err)
		return
	}

	calc, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		abortWithContractError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractCalculation(calc))
}

// @Summary List contracts
// @Description List contracts, newest first
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(draft, pending_approval, approved, active, finished, cancelled)
// @Param customer_id query string false "Customer ID"
// @Param start_date_from query string false "Earliest start date (YYYY-MM-DD)"
// @Param start_date_to query string false "Latest start date (YYYY-MM-DD)"
// @Param search query string false "Matches contract number or customer name"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Items per page, 1-100 (default 20)"
// @Success 200 {object} resdto.ContractListResponse
// @Failure 400 {object} httperr.Response
// @Router /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	var query reqdto.ListContractsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		abortWithBindingError(c, err)
		return
	}

	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithContractError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractPage(page))
}

// @Summary Get contract
// @Description Get a contract with its items
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithContractError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractView(view))
}

// @Summary Update contract
// @Description Change dates or notes of a draft or pending contract. New dates are re-priced and re-checked for availability.
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Param request body reqdto.UpdateContractRequest true "Fields to change"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/{id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	var req reqdto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithContractError(c, err)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, in, actorID)
	if err != nil {
		abortWithContractError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractView(view))
}

// @Summary Change contract status
// @Description Move a contract through its lifecycle. Approving or activating re-checks equipment availability.
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Param request body reqdto.UpdateContractStatusRequest true "Target status"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/{id}/status [put]
func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	var req reqdto.UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		abortWithContractError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractView(view))
}

// @Summary Delete contract
// @Description Soft-delete a draft contract
// @Tags contracts
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id, actorID); err != nil {
		abortWithContractError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContractHandler) actor(c *gin.Context) (uuid.UUID, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserInContext, httperr.CodeUnauthorized, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return actorID, true
}

func contractID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid contract id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// getIdempotencyKey returns nil when the header is absent.
func getIdempotencyKey(c *gin.Context) (*string, error) {
	raw, present := c.Request.Header["Idempotency-Key"]
	if !present {
		return nil, nil
	}
	key := ""
	if len(raw) > 0 {
		key = strings.TrimSpace(raw[0])
	}
	if key == "" || len(key) > maxIdempotencyKeyLength {
		return nil, errInvalidIdempotencyKey
	}
	return &key, nil
}
