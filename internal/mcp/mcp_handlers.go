package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minjaelee/talentscope/core"
	"github.com/minjaelee/talentscope/internal/contract"
	"github.com/minjaelee/talentscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// reportFor loads the requested roster and runs the pipeline. Every
// tool takes a mandatory file argument, validated before loading.
func (h *toolHandler) reportFor(request mcp.CallToolRequest) (*schema.Report, error) {
	cfg := h.baseCfg.Clone()
	path := request.GetString("file", "")
	if err := contract.ValidateInputPath(path); err != nil {
		return nil, err
	}
	cfg.InputPath = path
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	report, err := core.GetReport(cfg)
	if err != nil {
		return nil, err
	}
	// Tool results go over the wire, so row-level views honor the limit
	// here instead of in a renderer.
	if l := request.GetInt("limit", 0); l > 0 && len(report.CoreTalent.Rows) > l {
		report.CoreTalent.Rows = report.CoreTalent.Rows[:l]
	}
	return report, nil
}

func (h *toolHandler) handleGetSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.reportFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report.Summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetOrgBreakdown(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.reportFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	views := map[string]any{
		"rank_averages":   report.RankAverages,
		"grade_breakdown": report.GradeBreakdown,
		"tenure_curve":    report.TenureCurve,
		"rank_balance":    report.RankBalance,
	}
	jsonData, _ := json.MarshalIndent(views, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCoreTalent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.reportFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	views := map[string]any{
		"core_talent":    report.CoreTalent,
		"talent_density": report.TalentDensity,
	}
	jsonData, _ := json.MarshalIndent(views, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetGrowth(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.reportFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	if report.Growth == nil {
		return mcp.NewToolResultError("growth views unavailable: roster has no prior-year total score column"), nil
	}

	jsonData, _ := json.MarshalIndent(report.Growth, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRisk(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.reportFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	views := map[string]any{
		"dept_dispersion": report.DeptDispersion,
		"nine_box":        report.NineBox,
	}
	if report.Growth != nil {
		views["shock_drops"] = report.Growth.ShockDrops
	}
	jsonData, _ := json.MarshalIndent(views, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
