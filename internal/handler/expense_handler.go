package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expenso/internal/export"
	"expenso/internal/service"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ExpenseHandler handles expense CRUD, summary, and export endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var input service.SaveExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expense, err := h.expenseService.Save(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, expense)
}

// GetByID handles GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid expense id")
		return
	}

	expense, err := h.expenseService.Get(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, expense)
}

// List handles GET /api/v1/expenses?offset=&limit=
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	expenses, total, err := h.expenseService.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, expenses, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid expense id")
		return
	}

	var input service.UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, expense)
}

// deleteInput is the DTO for batch deletes.
type deleteInput struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// Delete handles POST /api/v1/expenses/delete
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var input deleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	deleted, err := h.expenseService.Delete(c.Request.Context(), userID, input.IDs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": deleted})
}

// Summary handles GET /api/v1/expenses/summary?month=YYYY-MM
func (h *ExpenseHandler) Summary(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	month := c.DefaultQuery("month", time.Now().Format("2006-01"))
	if !monthRe.MatchString(month) {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be YYYY-MM")
		return
	}

	summary, err := h.expenseService.MonthlySummary(c.Request.Context(), userID, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Months handles GET /api/v1/expenses/months
func (h *ExpenseHandler) Months(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	months, err := h.expenseService.Months(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, months)
}

// Export handles GET /api/v1/expenses/export?format=csv|xlsx
func (h *ExpenseHandler) Export(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "format must be csv or xlsx")
		return
	}

	expenses, err := h.expenseService.ListAll(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("expenses-%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if format == "xlsx" {
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := export.WriteXLSX(c.Writer, expenses); err != nil {
			HandleError(c, err)
		}
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteCSV(c.Writer, expenses); err != nil {
		HandleError(c, err)
	}
}
