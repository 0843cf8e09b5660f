package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/internal/application"
	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/domain/policy"
	"github.com/oksasatya/go-expense-tracker/internal/infrastructure/metrics"
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
	"github.com/oksasatya/go-expense-tracker/pkg/response"
	"github.com/oksasatya/go-expense-tracker/pkg/validation"
)

type ExpenseHandler struct {
	Expenses *application.ExpenseService
	Policy   policy.ExpensePolicy
	Clock    helpers.Clock
	Logger   logrus.FieldLogger
}

func NewExpenseHandler(expenses *application.ExpenseService, clock helpers.Clock, logger logrus.FieldLogger) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses, Clock: clock, Logger: logger}
}

type searchQuery struct {
	Q    string `form:"q" binding:"omitempty,max=255"`
	Size int    `form:"size" binding:"omitempty,min=1,max=50"`
}

// Store POST /api/expense
// The owner is always the authenticated user.
func (h *ExpenseHandler) Store(c *gin.Context) {
	var p validation.ExpensePayload
	if !bindJSON(c, &p) {
		return
	}
	now := h.Clock.Now()
	if err := validation.ValidateExpense(p, validation.Required, now).Err(); err != nil {
		fail(c, err)
		return
	}
	date, err := parseDate(p.Date.Value, now.Location())
	if err != nil {
		fail(c, err)
		return
	}

	e, err := h.Expenses.Create(c.Request.Context(), application.StoreExpenseDTO{
		UserID:      actingUser(c),
		Description: p.Description.Value,
		Price:       p.Price.Value,
		Date:        date,
	})
	if err != nil {
		fail(c, err)
		return
	}
	metrics.RecordExpenseCreated()
	response.Created(c, NewExpenseResource(e))
}

// Show GET /api/expense/:id
func (h *ExpenseHandler) Show(c *gin.Context) {
	e, ok := h.owned(c, h.Policy.View)
	if !ok {
		return
	}
	response.Success(c, 0, NewExpenseResource(e))
}

// Update PATCH|PUT /api/expense/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	var p validation.ExpensePayload
	if !bindJSON(c, &p) {
		return
	}
	mode, presence := updateMode(c)
	now := h.Clock.Now()
	if err := validation.ValidateExpense(p, presence, now).Err(); err != nil {
		fail(c, err)
		return
	}

	current, ok := h.owned(c, h.Policy.Update)
	if !ok {
		return
	}

	dto := application.UpdateExpenseDTO{
		ID:          current.ID,
		UserID:      actingUser(c),
		Description: p.Description.Ptr(),
		Price:       p.Price.Ptr(),
		Mode:        mode,
	}
	if p.Date.Filled() {
		date, err := parseDate(p.Date.Value, now.Location())
		if err != nil {
			fail(c, err)
			return
		}
		dto.Date = &date
	}

	e, err := h.Expenses.Update(c.Request.Context(), dto)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, 0, NewExpenseResource(e))
}

// Destroy DELETE /api/expense/:id
func (h *ExpenseHandler) Destroy(c *gin.Context) {
	e, ok := h.owned(c, h.Policy.Delete)
	if !ok {
		return
	}
	if _, err := h.Expenses.Destroy(c.Request.Context(), e.ID); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// Search GET /api/expense/search?q=&size=
func (h *ExpenseHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, apperror.Validation(validation.ToDetails(err)))
		return
	}
	items, err := h.Expenses.Search(c.Request.Context(), actingUser(c), q.Q, q.Size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, 0, NewExpenseCollection(items))
}

// owned loads the expense named by :id and applies the policy decision for the acting user.
func (h *ExpenseHandler) owned(c *gin.Context, decide func(actorID string, e *entity.Expense) error) (*entity.Expense, bool) {
	e, found, err := h.Expenses.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return nil, false
	}
	if !found {
		fail(c, apperror.ErrResourceNotFound)
		return nil, false
	}
	if err := decide(actingUser(c), e); err != nil {
		fail(c, err)
		return nil, false
	}
	return e, true
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := helpers.ParseDateTime(s, loc)
	if err != nil {
		return time.Time{}, apperror.Validation(map[string][]string{"date": {messages.DateInvalid()}})
	}
	return t, nil
}
