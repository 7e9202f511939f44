// Package api exposes the SMS parser and the ledger over HTTP.
package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
	"github.com/nimesh4992/Stack-sub000/internal/parser"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

const (
	defaultListLimit = 50
	maxBatchSize     = 500
)

// ParseRequest is the body of POST /api/parse.
type ParseRequest struct {
	ReceivedAt *time.Time `json:"receivedAt,omitempty"`
	Text       string     `json:"text"`
	Save       bool       `json:"save"`
}

// ParseResponse is returned for every parse attempt, successful or not.
type ParseResponse struct {
	Transaction *model.ParsedTransaction `json:"transaction,omitempty"`
	Reason      string                   `json:"reason,omitempty"`
	EntryID     string                   `json:"entryId,omitempty"`
	Success     bool                     `json:"success"`
	Duplicate   bool                     `json:"duplicate,omitempty"`
}

// BatchRequest is the body of POST /api/parse/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
}

// ClassifyRequest is the body of POST /api/classify.
type ClassifyRequest struct {
	Merchant string `json:"merchant"`
}

// BankInfo describes one pattern set in detection order.
type BankInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Tokens   []string `json:"tokens"`
	Fallback bool     `json:"fallback"`
}

// ErrorResponse is used for request errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	parser *parser.Parser
	ledger service.Ledger
	now    func() time.Time
}

// NewHandler creates handlers over p. ledger may be nil, in which case
// saving and the ledger endpoints are unavailable.
func NewHandler(p *parser.Parser, ledger service.Ledger) *Handler {
	return &Handler{
		parser: p,
		ledger: ledger,
		now:    time.Now,
	}
}

// NewApp builds a fiber app with every route registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "smsledger",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	h.RegisterRoutes(app)
	return app
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/health", h.handleHealth)
	api.Get("/banks", h.handleBanks)
	api.Post("/parse", h.handleParse)
	api.Post("/parse/batch", h.handleParseBatch)
	api.Post("/classify", h.handleClassify)
	api.Get("/entries", h.handleListEntries)
	api.Get("/entries/:id", h.handleGetEntry)
	api.Get("/totals", h.handleTotals)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		common.LogError(err, "Request failed", common.Fields{"path": c.Path()})
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"banks":    h.parser.Registry().Len(),
		"keywords": h.parser.Classifier().Len(),
		"ledger":   h.ledger != nil,
	})
}

func (h *Handler) handleBanks(c *fiber.Ctx) error {
	sets := h.parser.Registry().Sets()
	out := make([]BankInfo, 0, len(sets))
	for _, s := range sets {
		out = append(out, BankInfo{
			ID:       string(s.ID),
			Name:     s.Name,
			Tokens:   s.Tokens,
			Fallback: s.Fallback,
		})
	}
	return c.JSON(out)
}

func (h *Handler) handleParse(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Save && h.ledger == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "ledger not configured")
	}

	txn, err := h.parser.Diagnose(req.Text)
	if err != nil {
		return c.JSON(ParseResponse{Reason: common.ReasonCode(err)})
	}

	resp := ParseResponse{Success: true, Transaction: txn}
	if !req.Save {
		return c.JSON(resp)
	}

	receivedAt := h.now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}
	entry := model.NewLedgerEntry(req.Text, *txn, receivedAt, model.SourceSMS)

	err = h.ledger.SaveEntry(c.UserContext(), &entry)
	switch {
	case errors.Is(err, common.ErrDuplicateEntry):
		resp.Duplicate = true
	case err != nil:
		return err
	default:
		resp.EntryID = entry.ID
	}
	return c.JSON(resp)
}

func (h *Handler) handleParseBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Texts) > maxBatchSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "too many messages")
	}

	results := make([]ParseResponse, len(req.Texts))
	for i, text := range req.Texts {
		txn, err := h.parser.Diagnose(text)
		if err != nil {
			results[i] = ParseResponse{Reason: common.ReasonCode(err)}
			continue
		}
		results[i] = ParseResponse{Success: true, Transaction: txn}
	}
	return c.JSON(results)
}

func (h *Handler) handleClassify(c *fiber.Ctx) error {
	var req ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return c.JSON(h.parser.Classifier().Classify(req.Merchant))
}

func (h *Handler) handleListEntries(c *fiber.Ctx) error {
	if h.ledger == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "ledger not configured")
	}

	filter, err := entryFilter(c)
	if err != nil {
		return err
	}

	entries, err := h.ledger.ListEntries(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

func (h *Handler) handleGetEntry(c *fiber.Ctx) error {
	if h.ledger == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "ledger not configured")
	}

	entry, err := h.ledger.GetEntry(c.UserContext(), c.Params("id"))
	if errors.Is(err, common.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "entry not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(entry)
}

func (h *Handler) handleTotals(c *fiber.Ctx) error {
	if h.ledger == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "ledger not configured")
	}

	filter, err := entryFilter(c)
	if err != nil {
		return err
	}

	totals, err := h.ledger.CategoryTotals(c.UserContext(), filter)
	if err != nil {
		return err
	}

	out := make(map[string]string, len(totals))
	for id, amount := range totals {
		out[string(id)] = amount.StringFixed(2)
	}
	return c.JSON(out)
}

func entryFilter(c *fiber.Ctx) (service.EntryFilter, error) {
	filter := service.EntryFilter{
		BankID: strings.ToLower(c.Query("bank")),
		Limit:  c.QueryInt("limit", defaultListLimit),
	}
	if filter.Limit < 0 {
		return filter, fiber.NewError(fiber.StatusBadRequest, "limit must not be negative")
	}

	switch t := model.TransactionType(c.Query("type")); t {
	case "", model.TypeExpense, model.TypeIncome:
		filter.Type = t
	default:
		return filter, fiber.NewError(fiber.StatusBadRequest, "type must be expense or income")
	}

	if raw := c.Query("category"); raw != "" {
		id, err := model.ParseCategoryID(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		filter.Category = id
	}

	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "since must be YYYY-MM-DD")
		}
		filter.Since = &since
	}

	return filter, nil
}
