// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Talentscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Talentscope Evaluation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Compute headline numbers for an evaluation roster: headcount, mean score, mean growth and mean tenure."),
		mcp.WithString("file", mcp.Description("Path to the roster workbook (.xlsx)."), mcp.Required()),
	), h.handleGetSummary)

	// --- 2. Tool: get_org_breakdown ---
	s.AddTool(mcp.NewTool("get_org_breakdown",
		mcp.WithDescription("Break the roster down by rank, grade and tenure, including the competency/performance balance per rank."),
		mcp.WithString("file", mcp.Description("Path to the roster workbook (.xlsx)."), mcp.Required()),
	), h.handleGetOrgBreakdown)

	// --- 3. Tool: get_core_talent ---
	s.AddTool(mcp.NewTool("get_core_talent",
		mcp.WithDescription("Select the top decile of the roster by total score and compute the S/A talent density per department."),
		mcp.WithString("file", mcp.Description("Path to the roster workbook (.xlsx)."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of core talent rows returned.")),
	), h.handleGetCoreTalent)

	// --- 4. Tool: get_growth ---
	s.AddTool(mcp.NewTool("get_growth",
		mcp.WithDescription("Compute year-over-year score movement: top improvers, growth by department and shock drops. Requires prior-year scores in the roster."),
		mcp.WithString("file", mcp.Description("Path to the roster workbook (.xlsx)."), mcp.Required()),
	), h.handleGetGrowth)

	// --- 5. Tool: get_risk ---
	s.AddTool(mcp.NewTool("get_risk",
		mcp.WithDescription("Compute risk views: score dispersion by department, the competency/performance matrix and its potential-risk segment."),
		mcp.WithString("file", mcp.Description("Path to the roster workbook (.xlsx)."), mcp.Required()),
	), h.handleGetRisk)

	return s
}

// StartMCPServer starts the Talentscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
