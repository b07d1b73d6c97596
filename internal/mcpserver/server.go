// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes trip planner tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lomkinju/qienn/internal/models"
	"github.com/lomkinju/qienn/internal/tripservice"
)

// Server wraps the MCP server with trip planner tools.
type Server struct {
	mcp *server.MCPServer
	svc *tripservice.Service
}

// New creates a new MCP server with all trip tools registered.
func New(svc *tripservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Qienn",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("trip_summary",
		mcp.WithDescription("Flights, accommodation, fixed costs, and the countdown to departure."),
	), s.tripSummary)

	s.mcp.AddTool(mcp.NewTool("list_itinerary",
		mcp.WithDescription("List day plans with their time-sorted items. Pass a day label to narrow to one day."),
		mcp.WithString("day", mcp.Description("Optional day label (e.g. D1)")),
	), s.listItinerary)

	s.mcp.AddTool(mcp.NewTool("add_itinerary_item",
		mcp.WithDescription("Add an item to a day plan. The item is sorted into the day by its time string."),
		mcp.WithString("day", mcp.Required(), mcp.Description("Day label (e.g. D1)")),
		mcp.WithString("time", mcp.Required(), mcp.Description("Time string, usually HH:MM")),
		mcp.WithString("activity", mcp.Required(), mcp.Description("Activity title")),
		mcp.WithString("detail", mcp.Description("Optional detail text")),
	), s.addItineraryItem)

	s.mcp.AddTool(mcp.NewTool("list_expenses",
		mcp.WithDescription("Expense report with JPY and TWD totals and a category breakdown. "+
			"Optional start/end dates (YYYY-MM-DD, inclusive) narrow the range."),
		mcp.WithString("start", mcp.Description("Start date YYYY-MM-DD")),
		mcp.WithString("end", mcp.Description("End date YYYY-MM-DD")),
	), s.listExpenses)

	s.mcp.AddTool(mcp.NewTool("add_expense",
		mcp.WithDescription("Record an expense in JPY. Category must be one of the known categories; "+
			"read the qienn://expense-categories resource for the list."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date YYYY-MM-DD")),
		mcp.WithString("item", mcp.Required(), mcp.Description("What was bought")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Expense category")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount in JPY, whole yen")),
		mcp.WithString("payer", mcp.Required(), mcp.Description("Who paid")),
	), s.addExpense)

	s.mcp.AddTool(mcp.NewTool("spin_wheel",
		mcp.WithDescription("Spin the food roulette wheel over the current food list and return the winner."),
	), s.spinWheel)

	s.mcp.AddTool(mcp.NewTool("save_trip",
		mcp.WithDescription("Persist the whole trip state to the snapshot slot."),
	), s.saveTrip)

	// Resource: the valid expense categories.
	s.mcp.AddResource(
		mcp.NewResource("qienn://expense-categories", "Expense Categories",
			mcp.WithResourceDescription("Valid categories for add_expense, in display order."),
			mcp.WithMIMEType("text/plain"),
		),
		s.readCategoriesResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) tripSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Summary(ctx), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listItinerary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if day := req.GetString("day", ""); day != "" {
		plan, ok := s.svc.Day(ctx, day)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown day: %s", day)), nil
		}
		out, _ := json.MarshalIndent(plan, "", "  ")
		return mcp.NewToolResultText(string(out)), nil
	}
	out, _ := json.MarshalIndent(s.svc.Days(ctx), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addItineraryItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	timeStr, err := req.RequireString("time")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	activity, err := req.RequireString("activity")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	added, ok := s.svc.AddItem(ctx, day, models.ItineraryItem{
		Time:     timeStr,
		Activity: activity,
		Detail:   req.GetString("detail", ""),
	})
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown day: %s", day)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("added to %s: %s %s (id %s)", day, added.Time, added.Activity, added.ID)), nil
}

func (s *Server) listExpenses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report := s.svc.Expenses(ctx, req.GetString("start", ""), req.GetString("end", ""))
	out, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addExpense(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	item, err := req.RequireString("item")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !models.ValidCategory(models.ExpenseCategory(category)) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", category)), nil
	}
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if amount < 1 {
		return mcp.NewToolResultError("amount must be at least 1 yen"), nil
	}
	payer, err := req.RequireString("payer")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec := s.svc.AddExpense(ctx, models.ExpenseRecord{
		Date:     date,
		Item:     item,
		Category: models.ExpenseCategory(category),
		Amount:   int64(amount),
		Payer:    payer,
	})
	return mcp.NewToolResultText(fmt.Sprintf("recorded: %s ¥%d (id %s)", rec.Item, rec.Amount, rec.ID)), nil
}

func (s *Server) spinWheel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.svc.Spin(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("the wheel says: %s", res.Winner)), nil
}

func (s *Server) saveTrip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.svc.Save(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("saved: %d days, %d expenses, %d foods",
		len(snap.Itinerary), len(snap.Expenses), len(snap.FoodList))), nil
}

func (s *Server) readCategoriesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "qienn://expense-categories",
			MIMEType: "text/plain",
			Text:     strings.Join(names, "\n"),
		},
	}, nil
}
