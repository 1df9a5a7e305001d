package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/iterlab"
	"github.com/aretw0/iterlab/internal/presentation/chart"
	"github.com/aretw0/iterlab/internal/presentation/table"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/registry"
	"github.com/aretw0/iterlab/pkg/schema"
	"github.com/aretw0/iterlab/pkg/solver"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// EquationsURI is the resource listing the registered equations.
const EquationsURI = "iterlab://equations"

// FalsePositionResponse is the structured result of the false_position tool.
type FalsePositionResponse struct {
	Result *domain.RootResult `json:"result" jsonschema_description:"Root, convergence status and iteration trace"`
	Table  string             `json:"table" jsonschema_description:"Markdown iteration table and solution summary"`
	Chart  string             `json:"chart,omitempty" jsonschema_description:"Mermaid xychart of the estimate per iteration"`
}

// JacobiResponse is the structured result of the jacobi tool.
type JacobiResponse struct {
	Result *domain.LinearResult `json:"result" jsonschema_description:"Solution vector, convergence status and iteration trace"`
	Exact  []float64            `json:"exact,omitempty" jsonschema_description:"Direct LU solution for comparison"`
	Table  string               `json:"table" jsonschema_description:"Markdown iteration table and solution summary"`
	Chart  string               `json:"chart,omitempty" jsonschema_description:"Mermaid xychart of every component per iteration"`
}

// Lab defines the solving core the MCP server exposes.
type Lab interface {
	FalsePosition(ctx context.Context, req domain.FalsePositionRequest) (*domain.RootResult, error)
	Jacobi(ctx context.Context, req domain.JacobiRequest) (*domain.LinearResult, error)
	Equations() []registry.Equation
}

// Server wraps a Lab and exposes it as an MCP Server.
type Server struct {
	lab       Lab
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. logger may be nil.
func NewServer(lab Lab, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		lab:       lab,
		logger:    logger,
		mcpServer: server.NewMCPServer("iterlab-mcp", strings.TrimSpace(iterlab.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: false_position
	falsiTool := mcp.NewTool("false_position",
		mcp.WithDescription("Find a root of a registered equation with the False Position (regula falsi) method. Returns every iteration."),
		mcp.WithString("equation", mcp.Description("Equation name from list_equations (default: cubic)")),
		mcp.WithNumber("a", mcp.Description("Left end of the starting bracket (default: the equation's bracket)")),
		mcp.WithNumber("b", mcp.Description("Right end of the starting bracket")),
		mcp.WithNumber("tolerance", mcp.Description("Stop when |f(c)| < tolerance (default 1e-6)")),
		mcp.WithNumber("max_iterations", mcp.Description("Iteration cap (default 100)")),
		mcp.WithBoolean("chart", mcp.Description("Include a Mermaid convergence chart")),
		mcp.WithOutputSchema[FalsePositionResponse](),
	)
	s.mcpServer.AddTool(falsiTool, mcp.NewStructuredToolHandler(s.handleFalsePosition))

	// TOOL: jacobi
	jacobiTool := mcp.NewTool("jacobi",
		mcp.WithDescription("Solve a square linear system Ax = b with the Jacobi method. Omit matrix and rhs for the sample 3x3 system."),
		mcp.WithArray("matrix",
			mcp.Description("Coefficient matrix as an array of rows"),
			mcp.Items(map[string]any{"type": "array", "items": map[string]any{"type": "number"}}),
		),
		mcp.WithArray("rhs",
			mcp.Description("Right-hand side vector"),
			mcp.Items(map[string]any{"type": "number"}),
		),
		mcp.WithNumber("tolerance", mcp.Description("Stop when the max change between iterates < tolerance (default 0.01)")),
		mcp.WithNumber("max_iterations", mcp.Description("Iteration cap (default 20)")),
		mcp.WithBoolean("chart", mcp.Description("Include a Mermaid convergence chart")),
		mcp.WithOutputSchema[JacobiResponse](),
	)
	s.mcpServer.AddTool(jacobiTool, mcp.NewStructuredToolHandler(s.handleJacobi))

	// TOOL: list_equations
	s.mcpServer.AddTool(mcp.NewTool("list_equations",
		mcp.WithDescription("List the equations available to false_position."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.lab.Equations())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleFalsePosition(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FalsePositionResponse, error) {
	withChart := popBool(args, "chart")

	var req domain.FalsePositionRequest
	if err := schema.Decode(args, &req); err != nil {
		return FalsePositionResponse{}, err
	}

	res, err := s.lab.FalsePosition(ctx, req)
	if err != nil {
		s.logger.Debug("MCP false_position failed", "err", err)
		return FalsePositionResponse{}, fmt.Errorf("false_position failed: %w", err)
	}

	resp := FalsePositionResponse{
		Result: res,
		Table:  table.FalsePosition(res) + "\n" + table.RootSummary(res),
	}
	if withChart {
		resp.Chart = chart.FalsePosition(res)
	}
	return resp, nil
}

func (s *Server) handleJacobi(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (JacobiResponse, error) {
	withChart := popBool(args, "chart")

	var req domain.JacobiRequest
	if err := schema.Decode(args, &req); err != nil {
		return JacobiResponse{}, err
	}

	res, err := s.lab.Jacobi(ctx, req)
	if err != nil {
		s.logger.Debug("MCP jacobi failed", "err", err)
		return JacobiResponse{}, fmt.Errorf("jacobi failed: %w", err)
	}

	norm := req.Normalize()
	exact, _ := solver.Direct(norm.Matrix, norm.RHS)

	resp := JacobiResponse{
		Result: res,
		Exact:  exact,
		Table:  table.Jacobi(res) + "\n" + table.LinearSummary(res, exact),
	}
	if withChart {
		resp.Chart = chart.Jacobi(res)
	}
	return resp, nil
}

func (s *Server) registerResources() {
	// EXPOSE: iterlab://equations
	s.mcpServer.AddResource(mcp.NewResource(EquationsURI, "Registered Equations",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.lab.Equations())
		if err != nil {
			return nil, fmt.Errorf("failed to encode equations: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      EquationsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

// popBool removes a presentation flag that is not part of the solve request.
func popBool(args map[string]interface{}, key string) bool {
	v, ok := args[key]
	if !ok {
		return false
	}
	delete(args, key)
	b, _ := v.(bool)
	return b
}
