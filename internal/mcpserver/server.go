// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the arrow compiler for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrowspec"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compile"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/overlay"
)

// Server wraps the MCP server with the compiler tools.
type Server struct {
	mcp *server.MCPServer
}

// New creates a new MCP server with all tools registered.
func New() *Server {
	s := &Server{}

	s.mcp = server.NewMCPServer(
		"sudoku-maker-arrow-generator",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("compile_arrows",
		mcp.WithDescription("Compile arrow specification JSON into cosmetic-overlay documents. "+
			"Input MUST follow the arrow notation format; read it first via the "+
			"get_notation_guide tool or the arrows://notation resource."),
		mcp.WithString("specifications", mcp.Required(),
			mcp.Description("JSON array of {type, colour, grid} specification objects")),
	), s.compileArrows)

	s.mcp.AddTool(mcp.NewTool("get_notation_guide",
		mcp.WithDescription("Returns the arrow notation guide: labels, small and bent "+
			"arrow forms, permitted bends, and the output layout."),
	), s.getNotationGuide)

	// Resource: the notation guide.
	s.mcp.AddResource(
		mcp.NewResource("arrows://notation", "Arrow Notation Guide",
			mcp.WithResourceDescription("Arrow specification format accepted by compile_arrows."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNotationResource,
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

// compiledFile is one overlay document in a compile_arrows response.
type compiledFile struct {
	Colour   string           `json:"colour"`
	Name     string           `json:"name"`
	Document overlay.Document `json:"document"`
}

func (s *Server) compileArrows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("specifications")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	specs, err := arrowspec.Decode([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := compile.Compile(specs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files := overlay.Files(res)
	payload := make([]compiledFile, 0, len(files))
	for _, f := range files {
		payload = append(payload, compiledFile{Colour: f.Colour, Name: f.Name, Document: f.Doc})
	}
	out, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getNotationGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(NotationGuide), nil
}

func (s *Server) readNotationResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "arrows://notation",
			MIMEType: "text/markdown",
			Text:     NotationGuide,
		},
	}, nil
}
